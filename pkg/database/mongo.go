package database

import (
	"context"
	"fmt"
	"time"

	"agro-marketplace/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store holds both document databases. Commerce keeps users and banners,
// AI keeps crops, images and notifications.
type Store struct {
	Commerce *mongo.Database
	AI       *mongo.Database

	commerceClient *mongo.Client
	aiClient       *mongo.Client
}

// InitDB connects to both stores and pings them
func InitDB(config utils.DatabaseConfig) (*Store, error) {
	timeout := config.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	commerceClient, err := connect(config.CommerceURI, timeout)
	if err != nil {
		return nil, fmt.Errorf("commerce store: %w", err)
	}

	aiClient := commerceClient
	if config.AIURI != config.CommerceURI {
		aiClient, err = connect(config.AIURI, timeout)
		if err != nil {
			disconnect(commerceClient)
			return nil, fmt.Errorf("ai store: %w", err)
		}
	}

	return &Store{
		Commerce:       commerceClient.Database(config.CommerceName),
		AI:             aiClient.Database(config.AIName),
		commerceClient: commerceClient,
		aiClient:       aiClient,
	}, nil
}

func connect(uri string, timeout time.Duration) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		disconnect(client)
		return nil, fmt.Errorf("ping failed: %w", err)
	}

	return client, nil
}

func disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the application relies on.
// users.email is unique so concurrent registrations cannot both succeed.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.Commerce.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	if err != nil {
		return fmt.Errorf("create users.email index: %w", err)
	}
	return nil
}

// Ping checks both stores
func (s *Store) Ping(ctx context.Context) error {
	if err := s.commerceClient.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("commerce store: %w", err)
	}
	if s.aiClient != s.commerceClient {
		if err := s.aiClient.Ping(ctx, readpref.Primary()); err != nil {
			return fmt.Errorf("ai store: %w", err)
		}
	}
	return nil
}

// Close disconnects both clients
func (s *Store) Close(ctx context.Context) error {
	if err := s.commerceClient.Disconnect(ctx); err != nil {
		return err
	}
	if s.aiClient != s.commerceClient {
		return s.aiClient.Disconnect(ctx)
	}
	return nil
}
