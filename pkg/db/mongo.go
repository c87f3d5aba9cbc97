package db

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ConnectMongo() (*mongo.Client, error) {
	host := getEnv("MONGO_HOST", "bandhan-mongo")
	mongoURL := fmt.Sprintf("mongodb://%s:27017", host)

	clientOptions := options.Client().ApplyURI(mongoURL)
	if username := os.Getenv("MONGO_INITDB_ROOT_USERNAME"); username != "" {
		clientOptions.SetAuth(options.Credential{
			Username: username,
			Password: os.Getenv("MONGO_INITDB_ROOT_PASSWORD"),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Println("Error connecting to MongoDB:", err)
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Println("Error pinging MongoDB:", err)
		return nil, err
	}

	log.Println("Connected to MongoDB!")
	return client, nil
}
