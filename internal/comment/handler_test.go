package comment_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pierrechami/movies/internal/comment"
	"github.com/Pierrechami/movies/internal/mocks"
)

func newApp(t *testing.T) (*fiber.App, *mocks.MockCommentRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockCommentRepository(ctrl)
	h := comment.NewHandler(repo)

	app := fiber.New()
	app.Get("/api/movies/:idMovie/comments", h.List)
	app.Post("/api/movies/:idMovie/comments", h.Create)
	app.Get("/api/movies/:idMovie/comments/:idComment", h.Get)
	app.Put("/api/movies/:idMovie/comments/:idComment", h.Update)
	app.Delete("/api/movies/:idMovie/comments/:idComment", h.Delete)

	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload any) (int, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reqBody)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	return resp.StatusCode, decoded
}

func TestListComments(t *testing.T) {
	t.Run("invalid movie id", func(t *testing.T) {
		app, _ := newApp(t)

		status, _ := doJSON(t, app, "GET", "/api/movies/nope/comments", nil)

		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("scoped by movie", func(t *testing.T) {
		app, repo := newApp(t)
		movieID := primitive.NewObjectID()
		repo.EXPECT().ListByMovie(gomock.Any(), movieID).Return([]comment.Comment{
			{ID: primitive.NewObjectID(), Name: "A", Email: "a@x.com", MovieID: movieID, Text: "great", Date: time.Now()},
		}, nil)

		status, body := doJSON(t, app, "GET", "/api/movies/"+movieID.Hex()+"/comments", nil)

		assert.Equal(t, fiber.StatusOK, status)

		data, ok := body["data"].([]any)
		require.True(t, ok)
		assert.Len(t, data, 1)
	})
}

func TestCreateComment(t *testing.T) {
	t.Run("added with server-side date", func(t *testing.T) {
		app, repo := newApp(t)
		movieID := primitive.NewObjectID()

		var inserted *comment.Comment
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, c *comment.Comment) (*comment.Comment, error) {
				inserted = c
				c.ID = primitive.NewObjectID()
				return c, nil
			})

		status, body := doJSON(t, app, "POST", "/api/movies/"+movieID.Hex()+"/comments",
			comment.Input{Name: "A", Email: "a@x.com", Text: "great"})

		assert.Equal(t, fiber.StatusCreated, status)
		assert.Equal(t, "Comment added", body["message"])
		require.NotNil(t, inserted)
		assert.Equal(t, movieID, inserted.MovieID)
		assert.False(t, inserted.Date.IsZero())
	})

	t.Run("invalid input", func(t *testing.T) {
		app, _ := newApp(t)
		movieID := primitive.NewObjectID()

		status, body := doJSON(t, app, "POST", "/api/movies/"+movieID.Hex()+"/comments",
			comment.Input{Name: "A", Email: "not-an-email", Text: ""})

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.NotNil(t, body["error"])
	})
}

func TestGetComment(t *testing.T) {
	t.Run("either id malformed", func(t *testing.T) {
		app, _ := newApp(t)
		movieID := primitive.NewObjectID()

		status, body := doJSON(t, app, "GET", "/api/movies/"+movieID.Hex()+"/comments/nope", nil)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Invalid movie ID or comment ID", body["message"])
	})

	t.Run("not found", func(t *testing.T) {
		app, repo := newApp(t)
		movieID := primitive.NewObjectID()
		commentID := primitive.NewObjectID()
		repo.EXPECT().Get(gomock.Any(), movieID, commentID).Return(nil, nil)

		status, _ := doJSON(t, app, "GET", "/api/movies/"+movieID.Hex()+"/comments/"+commentID.Hex(), nil)

		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestDeleteComment(t *testing.T) {
	app, repo := newApp(t)
	movieID := primitive.NewObjectID()
	commentID := primitive.NewObjectID()
	repo.EXPECT().Delete(gomock.Any(), movieID, commentID).Return(true, nil)

	status, body := doJSON(t, app, "DELETE", "/api/movies/"+movieID.Hex()+"/comments/"+commentID.Hex(), nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Comment deleted", body["message"])
}
