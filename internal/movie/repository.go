package movie

//go:generate mockgen -destination=../mocks/mock_movie_repository.go -package=mocks -mock_names=Repository=MockMovieRepository github.com/Pierrechami/movies/internal/movie Repository

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
	List(ctx context.Context, limit int64) ([]Movie, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Movie, error)
	Insert(ctx context.Context, m *Movie) (*Movie, error)
	Update(ctx context.Context, id primitive.ObjectID, m *Movie) (*Movie, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type mongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{col: db.Collection(constant.MoviesCollection)}
}

func (r *mongoRepository) List(ctx context.Context, limit int64) ([]Movie, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	movies := []Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}

	return movies, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*Movie, error) {
	var m Movie
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	return &m, nil
}

func (r *mongoRepository) Insert(ctx context.Context, m *Movie) (*Movie, error) {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}

	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to insert movie: %w", err)
	}

	return m, nil
}

func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, m *Movie) (*Movie, error) {
	m.ID = primitive.NilObjectID

	var updated Movie
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": m},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	return &updated, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete movie: %w", err)
	}

	return res.DeletedCount > 0, nil
}
