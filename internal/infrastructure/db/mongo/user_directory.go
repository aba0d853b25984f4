package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storefront/storefront-api/internal/core/domain"
)

const usersCollection = "users"

// UserDirectory is the Mongo-backed known-users directory. Lookup is by
// exact email match.
type UserDirectory struct {
	coll *mongo.Collection
}

func NewUserDirectory(db *mongo.Database) *UserDirectory {
	return &UserDirectory{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID           string `bson:"_id"`
	Email        string `bson:"email"`
	Name         string `bson:"name"`
	Role         string `bson:"role"`
	PasswordHash string `bson:"password_hash,omitempty"`
}

func (d *UserDirectory) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDoc
	if err := d.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:           doc.ID,
		Email:        doc.Email,
		Name:         doc.Name,
		Role:         domain.ParseRole(doc.Role),
		PasswordHash: doc.PasswordHash,
	}, nil
}

// Create inserts a directory entry, assigning an id when absent.
func (d *UserDirectory) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := userDoc{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Role:         string(user.Role),
		PasswordHash: user.PasswordHash,
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	if _, err := d.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = doc.ID
	return &created, nil
}

// Seed upserts the given users by email so repeated startups converge on
// the same directory contents.
func (d *UserDirectory) Seed(ctx context.Context, users []domain.User) error {
	for _, u := range users {
		doc := userDoc{
			ID:           u.ID,
			Email:        u.Email,
			Name:         u.Name,
			Role:         string(u.Role),
			PasswordHash: u.PasswordHash,
		}
		if doc.ID == "" {
			doc.ID = uuid.NewString()
		}

		filter := bson.M{"email": u.Email}
		update := bson.M{"$setOnInsert": doc}
		if _, err := d.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	return nil
}
