package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Pierrechami/movies/internal/auth/domain"
	"github.com/Pierrechami/movies/pkg/constant"
)

// Repository persists users and sessions in the mflix database.
type Repository struct {
	users    *mongo.Collection
	sessions *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		users:    db.Collection(constant.UsersCollection),
		sessions: db.Collection(constant.SessionsCollection),
	}
}

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"created_at,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty"`
}

type sessionDocument struct {
	UserID       string    `bson:"user_id"`
	RefreshToken string    `bson:"jwt"`
	CreatedAt    time.Time `bson:"createdAt,omitempty"`
	UpdatedAt    time.Time `bson:"updatedAt,omitempty"`
}

// GetByEmail matches the stored email byte for byte; no normalization.
// It returns (nil, nil) when no user exists.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDocument
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &domain.User{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) error {
	id, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	_, err = r.users.InsertOne(ctx, userDocument{
		ID:        id,
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
	return err
}

// Upsert writes the single session slot for the user, replacing any refresh
// token held there. Concurrent logins race here; last write wins.
func (r *Repository) Upsert(ctx context.Context, userID, refreshToken string) error {
	now := time.Now()

	_, err := r.sessions.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$set":         bson.M{"jwt": refreshToken, "updatedAt": now},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// GetByToken looks a session up by the refresh token value itself. It
// returns (nil, nil) when no session holds the token.
func (r *Repository) GetByToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	var doc sessionDocument
	err := r.sessions.FindOne(ctx, bson.M{"jwt": refreshToken}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session by token: %w", err)
	}

	return &domain.Session{
		UserID:       doc.UserID,
		RefreshToken: doc.RefreshToken,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

// DeleteByUserID is idempotent: deleting an absent session is not an error.
func (r *Repository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.sessions.DeleteOne(ctx, bson.M{"user_id": userID})
	return err
}
