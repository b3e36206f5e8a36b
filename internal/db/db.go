package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gmkornilov/crazymoves-backend/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 5 * time.Second

var disconnect = func(ctx context.Context, client *mongo.Client) error {
	return client.Disconnect(ctx)
}

type PuzzleDbClient struct {
	client           *mongo.Client
	PuzzleCollection *mongo.Collection
}

func (r *PuzzleDbClient) Close() error {
	return r.client.Disconnect(context.TODO())
}

func NewDbClient(cfg *config.Configuration) (*PuzzleDbClient, error) {
	clientOpts := options.Client().ApplyURI(cfg.Database.Address)

	ctx, cancel := context.WithTimeout(context.TODO(), connectTimeout)
	defer cancel()

	dbClient := &PuzzleDbClient{}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, err
	}
	dbClient.client = client

	err = client.Ping(ctx, nil)
	if err != nil {
		if derr := disconnect(context.TODO(), client); derr != nil {
			log.Printf("Failed to disconnect from %s: %v\n", cfg.Database.Address, derr)
		}
		return nil, err
	}

	dbClient.PuzzleCollection = client.Database(cfg.Database.DatabaseName).Collection(cfg.Database.Collection)
	if dbClient.PuzzleCollection == nil {
		return nil, fmt.Errorf("can't resolve collection %s", cfg.Database.DatabaseName+"."+cfg.Database.Collection)
	}
	return dbClient, nil
}
