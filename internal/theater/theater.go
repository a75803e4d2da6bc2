package theater

import "go.mongodb.org/mongo-driver/bson/primitive"

// Theater mirrors a document of the mflix theaters collection. theaterId is
// a sequential number allocated on create, separate from the ObjectID.
type Theater struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TheaterID int                `bson:"theaterId" json:"theaterId"`
	Location  Location           `bson:"location" json:"location"`
}

type Location struct {
	Address Address `bson:"address" json:"address" validate:"required"`
	Geo     Geo     `bson:"geo" json:"geo" validate:"required"`
}

type Address struct {
	Street1 string `bson:"street1" json:"street1" validate:"required"`
	City    string `bson:"city" json:"city" validate:"required"`
	State   string `bson:"state" json:"state" validate:"required"`
	Zipcode string `bson:"zipcode" json:"zipcode" validate:"required"`
}

type Geo struct {
	Type        string    `bson:"type" json:"type" validate:"required,eq=Point"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates" validate:"required,len=2"`
}

type Input struct {
	Location Location `json:"location" validate:"required"`
}
