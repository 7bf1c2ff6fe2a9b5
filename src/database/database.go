package database

import (
	"context"
	"log"
	"os"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error
)

const dbName = "EventEaseDB"

// IsMongoConfigured รายงานว่ามีการตั้งค่า MONGO_URI หรือไม่
// When it is unset the app runs in demo mode on the in-memory store.
func IsMongoConfigured() bool {
	return os.Getenv("MONGO_URI") != ""
}

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB() (*mongo.Database, error) {
	mongoURI := os.Getenv("MONGO_URI")

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			return
		}

		// ตรวจสอบการเชื่อมต่อ
		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			return
		}

		log.Println("✅ MongoDB connected successfully")
	})

	if connectErr != nil {
		return nil, connectErr
	}
	return client.Database(dbName), nil
}
