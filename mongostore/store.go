package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/sessiongate/sessiongate"
)

// ErrMongoNotReady is returned when MongoDB does not answer a ping within
// the configured retry budget.
var ErrMongoNotReady = errors.New("mongodb did not become ready within the given time period")

// userDocument mirrors the stored record shape. Field names are an external
// contract with other consumers of the collection.
type userDocument struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	Email    string        `bson:"email"`
	Password string        `bson:"password"`
}

func (d userDocument) record() *sessiongate.UserRecord {
	return &sessiongate.UserRecord{
		ID:           d.ID.Hex(),
		Identifier:   d.Email,
		SecretDigest: d.Password,
	}
}

// Store implements [sessiongate.UserStore] over a MongoDB collection.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// New wraps an existing collection. The caller keeps ownership of the
// underlying client; Close and Ping are no-ops on a Store built this way
// without one.
func New(coll *mongo.Collection) *Store {
	return &Store{
		coll: coll,
	}
}

// Connect establishes a MongoDB client with retry, verifies connectivity,
// and returns a [Store] over the configured collection.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.ConnectionURL == "" {
		return nil, errors.New("empty mongodb connection URL")
	}

	opts := options.Client().
		ApplyURI(cfg.ConnectionURL).
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}

	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var pingErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				_ = client.Disconnect(context.Background())
				return nil, ctx.Err()
			case <-time.After(cfg.RetryInterval):
			}
		}

		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		pingErr = client.Ping(pingCtx, readpref.Primary())
		cancel()
		if pingErr == nil {
			return &Store{
				client: client,
				coll:   client.Database(cfg.Database).Collection(cfg.Collection),
			}, nil
		}
	}

	_ = client.Disconnect(context.Background())
	return nil, fmt.Errorf("%w: %v", ErrMongoNotReady, pingErr)
}

// EnsureIndexes installs the unique index on the identifier field. Safe to
// call on every startup; MongoDB treats an existing identical index as a
// no-op.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create unique email index: %w", err)
	}
	return nil
}

// FindByIdentifier looks a record up by its login identifier.
func (s *Store) FindByIdentifier(ctx context.Context, identifier string) (*sessiongate.UserRecord, error) {
	return s.findOne(ctx, bson.M{"email": identifier})
}

// FindByIdentifierAndDigest looks a record up by identifier and stored
// secret digest in a single query, so a mismatch on either field is
// indistinguishable from an absent user.
func (s *Store) FindByIdentifierAndDigest(ctx context.Context, identifier, digest string) (*sessiongate.UserRecord, error) {
	return s.findOne(ctx, bson.M{"email": identifier, "password": digest})
}

// FindByID looks a record up by its hex ObjectID. A string that is not a
// valid ObjectID cannot name any record and reports
// [sessiongate.ErrUserNotFound].
func (s *Store) FindByID(ctx context.Context, id string) (*sessiongate.UserRecord, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, sessiongate.ErrUserNotFound
	}
	return s.findOne(ctx, bson.M{"_id": oid})
}

// Insert stores a new record and returns its generated hex ObjectID. A
// unique-index violation reports [sessiongate.ErrDuplicateIdentifier].
func (s *Store) Insert(ctx context.Context, identifier, digest string) (string, error) {
	res, err := s.coll.InsertOne(ctx, bson.M{
		"email":    identifier,
		"password": digest,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", sessiongate.ErrDuplicateIdentifier
		}
		return "", fmt.Errorf("insert user: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Ping verifies connectivity for operational health reporting. Stores built
// with [New] have no client of their own and always report healthy.
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping: %w", err)
	}
	return nil
}

// Close disconnects the client owned by [Connect]. No-op for stores built
// with [New].
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (s *Store) findOne(ctx context.Context, filter bson.M) (*sessiongate.UserRecord, error) {
	var doc userDocument
	err := s.coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, sessiongate.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.record(), nil
}
