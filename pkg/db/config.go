package db

import (
	"fmt"
	"os"
)

// GetMySQLDSN: 환경 변수에서 DSN 가져오기
func GetMySQLDSN() string {
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		return dsn
	}

	host := getEnv("MYSQL_HOST", "bandhan-mysql")
	user := getEnv("MYSQL_ROOT_USER", "root")
	password := getEnv("MYSQL_ROOT_PASSWORD", "sample")
	database := getEnv("MYSQL_DATABASE", "bandhan")

	return fmt.Sprintf("%s:%s@tcp(%s:3306)/%s?parseTime=true&loc=UTC", user, password, host, database)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
