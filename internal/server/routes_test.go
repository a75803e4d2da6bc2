package server_test

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pierrechami/movies/internal/auth/handler"
	"github.com/Pierrechami/movies/internal/auth/service"
	"github.com/Pierrechami/movies/internal/comment"
	"github.com/Pierrechami/movies/internal/mocks"
	"github.com/Pierrechami/movies/internal/movie"
	"github.com/Pierrechami/movies/internal/server"
	"github.com/Pierrechami/movies/internal/theater"
)

// TestRegisterRoutes verifies that every route is mounted. The handlers are
// expected to answer something other than 404 even on empty requests.
func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	authService := service.NewAuthService(
		mocks.NewMockUserRepository(ctrl),
		mocks.NewMockSessionRepository(ctrl),
		mocks.NewMockTokenGenerator(ctrl),
		log,
	)
	authHandler := handler.NewAuthHandler(authService)

	movieRepo := mocks.NewMockMovieRepository(ctrl)
	movieRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]movie.Movie{}, nil).AnyTimes()

	theaterRepo := mocks.NewMockTheaterRepository(ctrl)
	theaterRepo.EXPECT().List(gomock.Any()).Return([]theater.Theater{}, nil).AnyTimes()

	commentRepo := mocks.NewMockCommentRepository(ctrl)

	app := fiber.New()
	server.RegisterRoutes(app,
		authHandler,
		movie.NewHandler(movieRepo),
		theater.NewHandler(theaterRepo),
		comment.NewHandler(commentRepo),
	)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/auth/register"},
		{http.MethodPost, "/auth/login"},
		{http.MethodPost, "/auth/logout"},
		{http.MethodPost, "/auth/refresh-token"},
		{http.MethodGet, "/api/movies"},
		{http.MethodPost, "/api/movies"},
		{http.MethodGet, "/api/movies/abc"},
		{http.MethodPut, "/api/movies/abc"},
		{http.MethodDelete, "/api/movies/abc"},
		{http.MethodGet, "/api/movies/abc/comments"},
		{http.MethodPost, "/api/movies/abc/comments"},
		{http.MethodGet, "/api/movies/abc/comments/def"},
		{http.MethodPut, "/api/movies/abc/comments/def"},
		{http.MethodDelete, "/api/movies/abc/comments/def"},
		{http.MethodGet, "/api/theaters"},
		{http.MethodPost, "/api/theaters"},
		{http.MethodGet, "/api/theaters/abc"},
		{http.MethodPut, "/api/theaters/abc"},
		{http.MethodDelete, "/api/theaters/abc"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			// A 404 would mean the route is not mounted; the handlers
			// themselves answer 400 on these bare requests.
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}
