package game

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("game not found")

// Repository defines persistence operations for games
type Repository interface {
	List(ctx context.Context) ([]Game, error)
	GetByID(ctx context.Context, id int) (*Game, error)
	Create(ctx context.Context, g *Game) error
	Update(ctx context.Context, id int, u *Update) (*Game, error)
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

func (r *MongoRepository) List(ctx context.Context) ([]Game, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Game{}
	for cur.Next(ctx) {
		var g Game
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, cur.Err()
}

func (r *MongoRepository) GetByID(ctx context.Context, id int) (*Game, error) {
	var g Game
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&g); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

// Create inserts a new document. A duplicate "id" violates the unique index
// and the raw driver error is returned unclassified.
func (r *MongoRepository) Create(ctx context.Context, g *Game) error {
	if g.OID.IsZero() {
		g.OID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, g)
	return err
}

// Update applies the present fields of u with $set and returns the post-update
// document. An empty update reads the document back unchanged.
func (r *MongoRepository) Update(ctx context.Context, id int, u *Update) (*Game, error) {
	set := u.setFields()
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var g Game
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&g); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
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
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Editor != nil {
		set["editor"] = *u.Editor
	}
	if u.Platforms != nil {
		set["platforms"] = *u.Platforms
	}
	if u.Quantity != nil {
		set["quantity"] = *u.Quantity
	}
	return set
}
