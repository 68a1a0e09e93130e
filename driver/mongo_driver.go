package driver

import (
	"context"
	"errors"
	"time"

	"book-catalog/config"
	"book-catalog/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrRecordNotFound is returned when no record exists for the requested id,
// including syntactically invalid ids.
var ErrRecordNotFound = errors.New("record not found")

// MongoDriver is the record store client. It owns the connection and the
// books collection handle.
type MongoDriver struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoDriver connects to MongoDB and verifies the connection with a ping.
func NewMongoDriver(ctx context.Context, cfg config.MongoConfig) (*MongoDriver, error) {
	clientOpts := options.Client().ApplyURI(cfg.URI)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, &DriverError{Op: "NewMongoDriver", Err: "connect: " + err.Error()}
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, &DriverError{Op: "NewMongoDriver", Err: "ping: " + err.Error()}
	}

	logger.Logger.Info("MongoDB connected successfully", "database", cfg.Database)

	return &MongoDriver{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Close disconnects the underlying client.
func (d *MongoDriver) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// CreateBook inserts a new record. The id and both timestamps are assigned
// here; the stored record is returned.
func (d *MongoDriver) CreateBook(ctx context.Context, fields BookFields) (*BookRecord, error) {
	now := time.Now().UTC()
	record := &BookRecord{
		ID:            primitive.NewObjectID(),
		Title:         fields.Title,
		Author:        fields.Author,
		Category:      fields.Category,
		PublishedDate: fields.PublishedDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := d.collection.InsertOne(ctx, record); err != nil {
		return nil, &DriverError{Op: "CreateBook", Err: err.Error()}
	}

	return record, nil
}

// DeleteBookByID removes the record and returns its prior value. Unknown and
// malformed ids both yield ErrRecordNotFound.
func (d *MongoDriver) DeleteBookByID(ctx context.Context, id string) (*BookRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrRecordNotFound
	}

	var record BookRecord
	err = d.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, &DriverError{Op: "DeleteBookByID", Err: err.Error()}
	}

	return &record, nil
}
