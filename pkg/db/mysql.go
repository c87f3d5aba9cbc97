package db

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormConfig: 유니크 제약 위반을 gorm.ErrDuplicatedKey로 받기 위해 TranslateError 사용
func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
}

// ConnectMySQL: MySQL 연결을 설정하고 반환
func ConnectMySQL() (*gorm.DB, error) {
	dsn := GetMySQLDSN()

	db, err := gorm.Open(mysql.Open(dsn), GormConfig())
	if err != nil {
		log.Printf("❌ MySQL 연결 실패: %v", err)
		return nil, err
	}

	log.Println("✅ MySQL 연결 성공!")
	return db, nil
}
