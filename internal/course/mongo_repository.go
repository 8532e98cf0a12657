package course

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type mongoCourse struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Title       string        `bson:"title"`
	Description string        `bson:"description"`
	Category    string        `bson:"category"`
	Price       float64       `bson:"price"`
	Instructor  string        `bson:"instructor"`
	Image       string        `bson:"image"`
	CreatedAt   time.Time     `bson:"createdAt"`
}

func (d mongoCourse) toModel() Course {
	return Course{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Price:       d.Price,
		Instructor:  d.Instructor,
		Image:       d.Image,
		CreatedAt:   d.CreatedAt,
	}
}

// MongoRepository stores courses in a MongoDB collection
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

// List returns all courses, optionally filtered by exact category
func (r *MongoRepository) List(ctx context.Context, category string) ([]Course, error) {
	cursor, err := r.coll.Find(ctx, listFilter(category))
	if err != nil {
		return nil, fmt.Errorf("failed to find courses: %w", err)
	}

	var docs []mongoCourse
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}

	courses := make([]Course, 0, len(docs))
	for _, d := range docs {
		courses = append(courses, d.toModel())
	}

	return courses, nil
}

// Create inserts a new course document
func (r *MongoRepository) Create(ctx context.Context, c *Course) error {
	doc := mongoCourse{
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Price:       c.Price,
		Instructor:  c.Instructor,
		Image:       c.Image,
		CreatedAt:   c.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert course: %w", err)
	}

	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		c.ID = id.Hex()
	}

	return nil
}

// Update sets the patched attributes on the course with the given id
func (r *MongoRepository) Update(ctx context.Context, id string, patch Patch) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	set := setDocument(patch)
	if len(set) == 0 {
		return nil
	}

	_, err = r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	return nil
}

// Delete removes the course with the given id
func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	if _, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	return nil
}

func listFilter(category string) bson.D {
	if category == "" {
		return bson.D{}
	}
	return bson.D{{Key: FieldCategory, Value: category}}
}

// setDocument builds a $set body with a stable key order
func setDocument(patch Patch) bson.D {
	fields := patch.Fields()
	set := bson.D{}
	for _, name := range fieldOrder {
		if v, ok := fields[name]; ok {
			set = append(set, bson.E{Key: name, Value: v})
		}
	}
	return set
}
