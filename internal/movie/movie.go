package movie

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie mirrors a document of the mflix movies collection. The same shape is
// accepted as input on create/update, validated by the tags below.
type Movie struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title            string             `bson:"title" json:"title" validate:"required"`
	Plot             string             `bson:"plot" json:"plot" validate:"required"`
	Genres           []string           `bson:"genres" json:"genres" validate:"required"`
	Runtime          int                `bson:"runtime" json:"runtime" validate:"required"`
	Cast             []string           `bson:"cast" json:"cast" validate:"required"`
	Poster           string             `bson:"poster" json:"poster" validate:"required"`
	Fullplot         string             `bson:"fullplot" json:"fullplot" validate:"required"`
	Languages        []string           `bson:"languages" json:"languages" validate:"required"`
	Released         time.Time          `bson:"released" json:"released" validate:"required"`
	Directors        []string           `bson:"directors" json:"directors" validate:"required"`
	Rated            string             `bson:"rated" json:"rated" validate:"required"`
	Awards           *Awards            `bson:"awards,omitempty" json:"awards,omitempty"`
	Lastupdated      string             `bson:"lastupdated,omitempty" json:"lastupdated,omitempty"`
	Year             int                `bson:"year" json:"year" validate:"required"`
	IMDB             IMDB               `bson:"imdb" json:"imdb" validate:"required"`
	Countries        []string           `bson:"countries" json:"countries" validate:"required"`
	Type             string             `bson:"type" json:"type" validate:"required"`
	Tomatoes         *Tomatoes          `bson:"tomatoes,omitempty" json:"tomatoes,omitempty"`
	NumMflixComments int                `bson:"num_mflix_comments,omitempty" json:"num_mflix_comments,omitempty"`
	Writers          []string           `bson:"writers,omitempty" json:"writers,omitempty"`
}

type Awards struct {
	Wins        int    `bson:"wins" json:"wins"`
	Nominations int    `bson:"nominations" json:"nominations"`
	Text        string `bson:"text" json:"text"`
}

type IMDB struct {
	Rating float64 `bson:"rating" json:"rating"`
	Votes  int     `bson:"votes" json:"votes"`
	ID     int     `bson:"id" json:"id"`
}

type Tomatoes struct {
	Viewer      TomatoesRating `bson:"viewer" json:"viewer"`
	Fresh       int            `bson:"fresh" json:"fresh"`
	Critic      TomatoesRating `bson:"critic" json:"critic"`
	Rotten      int            `bson:"rotten" json:"rotten"`
	LastUpdated string         `bson:"lastUpdated" json:"lastUpdated"`
}

type TomatoesRating struct {
	Rating     float64 `bson:"rating" json:"rating"`
	NumReviews int     `bson:"numReviews" json:"numReviews"`
	Meter      int     `bson:"meter" json:"meter"`
}
