package customer

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("customer not found")

// Repository defines persistence operations for customer accounts
type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id int) (*Customer, error)
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, id int, u *Update) (*Customer, error)
	Delete(ctx context.Context, id int) error
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates a repository for the given collection and
// ensures the unique index on the business "id" field.
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	_, _ = col.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoRepository{col: col}
}

func (r *MongoRepository) List(ctx context.Context) ([]Customer, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Customer{}
	for cur.Next(ctx) {
		var c Customer
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur.Err()
}

func (r *MongoRepository) GetByID(ctx context.Context, id int) (*Customer, error) {
	var c Customer
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a new document. A duplicate "id" violates the unique index
// and the raw driver error is returned unclassified.
func (r *MongoRepository) Create(ctx context.Context, c *Customer) error {
	if c.OID.IsZero() {
		c.OID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, c)
	return err
}

// Update applies the present fields of u with $set and returns the post-update
// document. An empty update reads the document back unchanged.
func (r *MongoRepository) Update(ctx context.Context, id int, u *Update) (*Customer, error) {
	set := u.setFields()
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c Customer
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id int) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (u *Update) setFields() bson.M {
	set := bson.M{}
	if u.ID != nil {
		set["id"] = *u.ID
	}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.FirstName != nil {
		set["firstName"] = *u.FirstName
	}
	if u.DateOfBirth != nil {
		set["dateOfBirth"] = *u.DateOfBirth
	}
	if u.Address != nil {
		set["address"] = *u.Address
	}
	if u.PhoneNumber != nil {
		set["phoneNumber"] = *u.PhoneNumber
	}
	if u.Points != nil {
		set["points"] = *u.Points
	}
	return set
}
