package theater

//go:generate mockgen -destination=../mocks/mock_theater_repository.go -package=mocks -mock_names=Repository=MockTheaterRepository github.com/Pierrechami/movies/internal/theater Repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Pierrechami/movies/pkg/constant"
)

type Repository interface {
	List(ctx context.Context) ([]Theater, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Theater, error)
	NextTheaterID(ctx context.Context) (int, error)
	Insert(ctx context.Context, t *Theater) (*Theater, error)
	Update(ctx context.Context, id primitive.ObjectID, location Location) (*Theater, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type mongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{col: db.Collection(constant.TheatersCollection)}
}

func (r *mongoRepository) List(ctx context.Context) ([]Theater, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list theaters: %w", err)
	}

	theaters := []Theater{}
	if err := cursor.All(ctx, &theaters); err != nil {
		return nil, fmt.Errorf("failed to decode theaters: %w", err)
	}

	return theaters, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*Theater, error) {
	var t Theater
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get theater: %w", err)
	}

	return &t, nil
}

// NextTheaterID allocates max(theaterId)+1, starting at 1 on an empty
// collection. Concurrent creates can race on the same value; the original
// system accepts that.
func (r *mongoRepository) NextTheaterID(ctx context.Context) (int, error) {
	var last Theater
	err := r.col.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "theaterId", Value: -1}})).Decode(&last)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to find last theater: %w", err)
	}

	return last.TheaterID + 1, nil
}

func (r *mongoRepository) Insert(ctx context.Context, t *Theater) (*Theater, error) {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}

	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to insert theater: %w", err)
	}

	return t, nil
}

func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, location Location) (*Theater, error) {
	var updated Theater
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"location": location}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update theater: %w", err)
	}

	return &updated, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete theater: %w", err)
	}

	return res.DeletedCount > 0, nil
}
