package comment

//go:generate mockgen -destination=../mocks/mock_comment_repository.go -package=mocks -mock_names=Repository=MockCommentRepository github.com/Pierrechami/movies/internal/comment Repository

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

// Repository operations are always scoped by the owning movie: a comment id
// alone never matches across movies.
type Repository interface {
	ListByMovie(ctx context.Context, movieID primitive.ObjectID) ([]Comment, error)
	Get(ctx context.Context, movieID, commentID primitive.ObjectID) (*Comment, error)
	Insert(ctx context.Context, c *Comment) (*Comment, error)
	Update(ctx context.Context, movieID, commentID primitive.ObjectID, input Input) (*Comment, error)
	Delete(ctx context.Context, movieID, commentID primitive.ObjectID) (bool, error)
}

type mongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{col: db.Collection(constant.CommentsCollection)}
}

func (r *mongoRepository) ListByMovie(ctx context.Context, movieID primitive.ObjectID) ([]Comment, error) {
	cursor, err := r.col.Find(ctx, bson.M{"movie_id": movieID})
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := []Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}

	return comments, nil
}

func (r *mongoRepository) Get(ctx context.Context, movieID, commentID primitive.ObjectID) (*Comment, error) {
	var c Comment
	err := r.col.FindOne(ctx, bson.M{"_id": commentID, "movie_id": movieID}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &c, nil
}

func (r *mongoRepository) Insert(ctx context.Context, c *Comment) (*Comment, error) {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return c, nil
}

func (r *mongoRepository) Update(ctx context.Context, movieID, commentID primitive.ObjectID, input Input) (*Comment, error) {
	var updated Comment
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": commentID, "movie_id": movieID},
		bson.M{"$set": bson.M{"name": input.Name, "email": input.Email, "text": input.Text}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return &updated, nil
}

func (r *mongoRepository) Delete(ctx context.Context, movieID, commentID primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": commentID, "movie_id": movieID})
	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}

	return res.DeletedCount > 0, nil
}
