package db

import (
	"context"
	"errors"
	"testing"

	"github.com/gmkornilov/crazymoves-backend/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewDbClientDisconnectsOnPingFailure(t *testing.T) {
	var disconnected *mongo.Client
	orig := disconnect
	disconnect = func(ctx context.Context, client *mongo.Client) error {
		disconnected = client
		return orig(ctx, client)
	}
	t.Cleanup(func() {
		disconnect = orig
	})

	var cfg config.Configuration
	cfg.Database.Address = "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200"
	cfg.Database.DatabaseName = "crazymoves"
	cfg.Database.Collection = "puzzles"

	client, err := NewDbClient(&cfg)
	if err == nil {
		client.Close()
		t.Fatal("expected ping to fail against a closed port")
	}
	if disconnected == nil {
		t.Fatal("client was not disconnected after failed ping")
	}
	if err := disconnected.Disconnect(context.TODO()); !errors.Is(err, mongo.ErrClientDisconnected) {
		t.Errorf("expected client to be disconnected already, got %v", err)
	}
}
