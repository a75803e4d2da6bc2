package theater_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pierrechami/movies/internal/mocks"
	"github.com/Pierrechami/movies/internal/theater"
)

func newApp(t *testing.T) (*fiber.App, *mocks.MockTheaterRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockTheaterRepository(ctrl)
	h := theater.NewHandler(repo)

	app := fiber.New()
	app.Get("/api/theaters", h.List)
	app.Post("/api/theaters", h.Create)
	app.Get("/api/theaters/:idTheater", h.Get)
	app.Put("/api/theaters/:idTheater", h.Update)
	app.Delete("/api/theaters/:idTheater", h.Delete)

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

func validInput() theater.Input {
	return theater.Input{
		Location: theater.Location{
			Address: theater.Address{Street1: "340 W Market", City: "Bloomington", State: "MN", Zipcode: "55425"},
			Geo:     theater.Geo{Type: "Point", Coordinates: []float64{-93.24565, 44.85466}},
		},
	}
}

func TestCreateTheater(t *testing.T) {
	t.Run("allocates next sequential id", func(t *testing.T) {
		app, repo := newApp(t)
		repo.EXPECT().NextTheaterID(gomock.Any()).Return(1004, nil)

		var inserted *theater.Theater
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, th *theater.Theater) (*theater.Theater, error) {
				inserted = th
				th.ID = primitive.NewObjectID()
				return th, nil
			})

		status, body := doJSON(t, app, "POST", "/api/theaters", validInput())

		assert.Equal(t, fiber.StatusCreated, status)
		assert.Equal(t, "Theater added", body["message"])
		require.NotNil(t, inserted)
		assert.Equal(t, 1004, inserted.TheaterID)
	})

	t.Run("rejects non-point geo", func(t *testing.T) {
		app, _ := newApp(t)
		input := validInput()
		input.Location.Geo.Type = "Polygon"

		status, body := doJSON(t, app, "POST", "/api/theaters", input)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.NotNil(t, body["error"])
	})

	t.Run("rejects wrong coordinate count", func(t *testing.T) {
		app, _ := newApp(t)
		input := validInput()
		input.Location.Geo.Coordinates = []float64{-93.24565}

		status, _ := doJSON(t, app, "POST", "/api/theaters", input)

		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestGetTheater(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		app, _ := newApp(t)

		status, _ := doJSON(t, app, "GET", "/api/theaters/nope", nil)

		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("not found", func(t *testing.T) {
		app, repo := newApp(t)
		id := primitive.NewObjectID()
		repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

		status, _ := doJSON(t, app, "GET", "/api/theaters/"+id.Hex(), nil)

		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestListTheaters(t *testing.T) {
	app, repo := newApp(t)
	repo.EXPECT().List(gomock.Any()).Return([]theater.Theater{
		{ID: primitive.NewObjectID(), TheaterID: 1000, Location: validInput().Location},
	}, nil)

	status, body := doJSON(t, app, "GET", "/api/theaters", nil)

	assert.Equal(t, fiber.StatusOK, status)

	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 1)
}

func TestDeleteTheater(t *testing.T) {
	app, repo := newApp(t)
	id := primitive.NewObjectID()
	repo.EXPECT().Delete(gomock.Any(), id).Return(false, nil)

	status, body := doJSON(t, app, "DELETE", "/api/theaters/"+id.Hex(), nil)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Theater not found for deletion", body["message"])
}
