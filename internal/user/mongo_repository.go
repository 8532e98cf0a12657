package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// mongoUser is the stored document shape of the users collection
type mongoUser struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	Name       string        `bson:"name"`
	Email      string        `bson:"email"`
	PhotoURL   string        `bson:"photoURL,omitempty"`
	Password   string        `bson:"password,omitempty"`
	FromGoogle bool          `bson:"fromGoogle,omitempty"`
}

// MongoRepository stores users in a MongoDB collection
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

// GetByEmail retrieves a user by email
func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var doc mongoUser
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &User{
		ID:           doc.ID.Hex(),
		Email:        doc.Email,
		Name:         doc.Name,
		PhotoURL:     doc.PhotoURL,
		PasswordHash: doc.Password,
		FromGoogle:   doc.FromGoogle,
	}, nil
}

// Create inserts a new user document
func (r *MongoRepository) Create(ctx context.Context, u *User) error {
	doc := mongoUser{
		Name:       u.Name,
		Email:      u.Email,
		PhotoURL:   u.PhotoURL,
		Password:   u.PasswordHash,
		FromGoogle: u.FromGoogle,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		u.ID = id.Hex()
	}

	return nil
}
