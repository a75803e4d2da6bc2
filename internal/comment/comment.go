package comment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a movie-scoped document of the mflix comments collection.
type Comment struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	MovieID primitive.ObjectID `bson:"movie_id" json:"movie_id"`
	Text    string             `bson:"text" json:"text"`
	Date    time.Time          `bson:"date" json:"date"`
}

type Input struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Text  string `json:"text" validate:"required"`
}
