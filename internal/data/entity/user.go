package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User shares the users collection with the other marketplace services,
// which key documents by ObjectId.
type User struct {
	ID           primitive.ObjectID `bson:"_id"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	Name         string             `bson:"name"`
	Phone        string             `bson:"phone"`
	Address      string             `bson:"address"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}
