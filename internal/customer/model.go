package customer

import "go.mongodb.org/mongo-driver/bson/primitive"

// Customer is one customer account document. The date of birth is carried as
// the string the client sent; the service never parses or reformats it.
type Customer struct {
	OID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ID          int                `bson:"id" json:"id" form:"id"`
	Name        string             `bson:"name" json:"name" form:"name"`
	FirstName   string             `bson:"firstName" json:"firstName" form:"firstName"`
	DateOfBirth string             `bson:"dateOfBirth" json:"dateOfBirth" form:"dateOfBirth"`
	Address     string             `bson:"address" json:"address" form:"address"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber" form:"phoneNumber"`
	Points      int                `bson:"points" json:"points" form:"points"`
}

// Update carries a partial customer body. Nil fields are left untouched;
// present fields replace the stored value (shallow merge).
type Update struct {
	ID          *int    `json:"id" form:"id"`
	Name        *string `json:"name" form:"name"`
	FirstName   *string `json:"firstName" form:"firstName"`
	DateOfBirth *string `json:"dateOfBirth" form:"dateOfBirth"`
	Address     *string `json:"address" form:"address"`
	PhoneNumber *string `json:"phoneNumber" form:"phoneNumber"`
	Points      *int    `json:"points" form:"points"`
}
