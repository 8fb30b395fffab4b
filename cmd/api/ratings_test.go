package main

import (
	"net/http"
	"testing"
	"time"

	"spotreviews/internal/ratelimiter"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRatingRoundTrip(t *testing.T) {
	ta := newTestApp(t)

	rr := ta.do(t, http.MethodPost, "/rating/9001/user/9002", map[string]any{"rating": 4})
	require.Equal(t, http.StatusCreated, rr.Code)

	created := decodeBody(t, rr)
	ratingID, err := uuid.Parse(created["id"].(string))
	require.NoError(t, err)
	assert.EqualValues(t, 4, created["rating"])
	assert.EqualValues(t, 9001, created["spotId"])
	assert.NotEmpty(t, created["postDate"])
	assert.NotEmpty(t, created["created_at"])
	assert.Nil(t, created["updated_at"])

	rr = ta.do(t, http.MethodGet, "/rating/"+ratingID.String(), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	fetched := decodeBody(t, rr)
	data := fetched["data"].(map[string]any)
	assert.EqualValues(t, 4, data["rating"])
	assert.Equal(t, "/rating/"+ratingID.String(), fetched["links"].(map[string]any)["self"])
}

func TestCreateRatingOutOfRange(t *testing.T) {
	ta := newTestApp(t)

	for _, value := range []int{0, 6, -1} {
		rr := ta.do(t, http.MethodPost, "/rating/1/user/2", map[string]any{"rating": value})
		assert.Equal(t, http.StatusBadRequest, rr.Code, "rating %d must be rejected", value)
	}

	// Nothing reached the store.
	assert.Empty(t, ta.ratings.rows)
}

func TestUpdateRatingOutOfRange(t *testing.T) {
	ta := newTestApp(t)

	rr := ta.do(t, http.MethodPost, "/rating/1/user/2", map[string]any{"rating": 3})
	require.Equal(t, http.StatusCreated, rr.Code)
	ratingID := decodeBody(t, rr)["id"].(string)

	for _, value := range []int{0, 6} {
		rr = ta.do(t, http.MethodPatch, "/rating/"+ratingID, map[string]any{"rating": value})
		assert.Equal(t, http.StatusBadRequest, rr.Code, "rating %d must be rejected", value)
	}

	require.Len(t, ta.ratings.rows, 1)
	assert.Equal(t, 3, ta.ratings.rows[0].Rating)
}

func TestUpdateRatingMissingField(t *testing.T) {
	ta := newTestApp(t)

	rr := ta.do(t, http.MethodPost, "/rating/1/user/2", map[string]any{"rating": 2})
	require.Equal(t, http.StatusCreated, rr.Code)
	ratingID := decodeBody(t, rr)["id"].(string)

	rr = ta.do(t, http.MethodPatch, "/rating/"+ratingID, map[string]any{})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 2, ta.ratings.rows[0].Rating)
}

func TestRatingUnknownID(t *testing.T) {
	ta := newTestApp(t)
	unknown := uuid.New().String()

	rr := ta.do(t, http.MethodGet, "/rating/"+unknown, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = ta.do(t, http.MethodPatch, "/rating/"+unknown, map[string]any{"rating": 5})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = ta.do(t, http.MethodDelete, "/rating/"+unknown, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSpotAverageEmpty(t *testing.T) {
	ta := newTestApp(t)

	rr := ta.do(t, http.MethodGet, "/ratings/42/average", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.EqualValues(t, 42, body["spotId"])
	assert.EqualValues(t, 0.0, body["average_rating"])
	assert.EqualValues(t, 0, body["rating_count"])
}

func TestSpotAverage(t *testing.T) {
	ta := newTestApp(t)

	ta.do(t, http.MethodPost, "/rating/42/user/1", map[string]any{"rating": 4})
	ta.do(t, http.MethodPost, "/rating/42/user/2", map[string]any{"rating": 5})
	ta.do(t, http.MethodPost, "/rating/43/user/1", map[string]any{"rating": 1})

	rr := ta.do(t, http.MethodGet, "/ratings/42/average", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.EqualValues(t, 4.5, body["average_rating"])
	assert.EqualValues(t, 2, body["rating_count"])
}

func TestRatingLifecycle(t *testing.T) {
	ta := newTestApp(t)

	rr := ta.do(t, http.MethodPost, "/rating/55/user/7", map[string]any{"rating": 4})
	require.Equal(t, http.StatusCreated, rr.Code)
	ratingID := decodeBody(t, rr)["id"].(string)
	_, err := uuid.Parse(ratingID)
	require.NoError(t, err)

	rr = ta.do(t, http.MethodPatch, "/rating/"+ratingID, map[string]any{"rating": 5})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.EqualValues(t, 5, decodeBody(t, rr)["rating"])

	rr = ta.do(t, http.MethodDelete, "/rating/"+ratingID, nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ta.do(t, http.MethodGet, "/ratings/55", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	for _, raw := range decodeBody(t, rr)["ratings"].([]any) {
		assert.NotEqual(t, ratingID, raw.(map[string]any)["id"])
	}
}

func TestListSpotRatingsEmpty(t *testing.T) {
	ta := newTestApp(t)

	rr := ta.do(t, http.MethodGet, "/ratings/99", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decodeBody(t, rr)["ratings"].([]any))
}

func TestRateLimiterMiddleware(t *testing.T) {
	ta := newTestApp(t)
	ta.app.config.rateLimiter.Enabled = true
	ta.app.rateLimiter = ratelimiter.NewFixedWindowLimiter(5, time.Hour)

	for i := 0; i < 5; i++ {
		rr := ta.do(t, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := ta.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
}
