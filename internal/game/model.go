package game

import "go.mongodb.org/mongo-driver/bson/primitive"

// Game is one video game document in the games collection. The business
// identifier is the client-supplied numeric "id"; the store-internal _id is
// kept alongside it and exposed in responses.
type Game struct {
	OID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ID        int                `bson:"id" json:"id" form:"id"`
	Title     string             `bson:"title" json:"title" form:"title"`
	Editor    string             `bson:"editor" json:"editor" form:"editor"`
	Platforms []string           `bson:"platforms" json:"platforms" form:"platforms"`
	Quantity  int                `bson:"quantity" json:"quantity" form:"quantity"`
}

// Update carries a partial game body. Nil fields are left untouched; present
// fields replace the stored value (shallow merge, never a full overwrite).
type Update struct {
	ID        *int      `json:"id" form:"id"`
	Title     *string   `json:"title" form:"title"`
	Editor    *string   `json:"editor" form:"editor"`
	Platforms *[]string `json:"platforms" form:"platforms"`
	Quantity  *int      `json:"quantity" form:"quantity"`
}
