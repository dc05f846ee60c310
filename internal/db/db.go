package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hvrSSB04/ssb-backend/internal/config"
)

// NewDB connects to MongoDB. A store that cannot be reached at startup is
// fatal; nothing downstream can work without it.
func NewDB(cfg *config.Config) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}

	database := client.Database(cfg.MongoDB)

	if err := ensureIndexes(ctx, database); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}

	return database
}

func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	// The unique email index is what makes duplicate registration
	// exactly-once; the pre-insert existence check is only a fast path.
	_, err := database.Collection("barbers").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return err
	}

	_, err = database.Collection("appointments").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "barber", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	})
	return err
}
