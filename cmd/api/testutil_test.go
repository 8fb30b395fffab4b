package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spotreviews/internal/ratelimiter"
	"spotreviews/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockReviewStore keeps rows in memory, newest first, mirroring the
// ORDER BY created_at DESC of the real store.
type mockReviewStore struct {
	rows []*store.Review
}

func (m *mockReviewStore) Create(_ context.Context, review *store.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	now := time.Now().UTC()
	if review.PostDate.IsZero() {
		review.PostDate = now
	}
	review.CreatedAt = now
	review.UpdatedAt = nil

	stored := *review
	m.rows = append([]*store.Review{&stored}, m.rows...)
	return nil
}

func (m *mockReviewStore) find(reviewID uuid.UUID) *store.Review {
	for _, row := range m.rows {
		if row.ID == reviewID {
			return row
		}
	}
	return nil
}

func (m *mockReviewStore) GetByID(_ context.Context, reviewID uuid.UUID) (*store.Review, error) {
	row := m.find(reviewID)
	if row == nil {
		return nil, store.ErrNotFound
	}
	copied := *row
	return &copied, nil
}

func (m *mockReviewStore) GetBySpot(_ context.Context, spotID int64) ([]store.Review, error) {
	reviews := []store.Review{}
	for _, row := range m.rows {
		if row.SpotID == spotID {
			reviews = append(reviews, *row)
		}
	}
	return reviews, nil
}

func (m *mockReviewStore) UpdateText(_ context.Context, reviewID uuid.UUID, text string) (*store.Review, error) {
	row := m.find(reviewID)
	if row == nil {
		return nil, store.ErrNotFound
	}
	now := time.Now().UTC()
	row.Review = text
	row.UpdatedAt = &now
	copied := *row
	return &copied, nil
}

func (m *mockReviewStore) Delete(_ context.Context, reviewID uuid.UUID) error {
	for i, row := range m.rows {
		if row.ID == reviewID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type mockRatingStore struct {
	rows []*store.Rating
}

func (m *mockRatingStore) Create(_ context.Context, rating *store.Rating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	now := time.Now().UTC()
	if rating.PostDate.IsZero() {
		rating.PostDate = now
	}
	rating.CreatedAt = now
	rating.UpdatedAt = nil

	stored := *rating
	m.rows = append([]*store.Rating{&stored}, m.rows...)
	return nil
}

func (m *mockRatingStore) find(ratingID uuid.UUID) *store.Rating {
	for _, row := range m.rows {
		if row.ID == ratingID {
			return row
		}
	}
	return nil
}

func (m *mockRatingStore) GetByID(_ context.Context, ratingID uuid.UUID) (*store.Rating, error) {
	row := m.find(ratingID)
	if row == nil {
		return nil, store.ErrNotFound
	}
	copied := *row
	return &copied, nil
}

func (m *mockRatingStore) GetBySpot(_ context.Context, spotID int64) ([]store.Rating, error) {
	ratings := []store.Rating{}
	for _, row := range m.rows {
		if row.SpotID == spotID {
			ratings = append(ratings, *row)
		}
	}
	return ratings, nil
}

func (m *mockRatingStore) UpdateValue(_ context.Context, ratingID uuid.UUID, value int) (*store.Rating, error) {
	row := m.find(ratingID)
	if row == nil {
		return nil, store.ErrNotFound
	}
	now := time.Now().UTC()
	row.Rating = value
	row.UpdatedAt = &now
	copied := *row
	return &copied, nil
}

func (m *mockRatingStore) Delete(_ context.Context, ratingID uuid.UUID) error {
	for i, row := range m.rows {
		if row.ID == ratingID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *mockRatingStore) GetSpotAverage(_ context.Context, spotID int64) (store.SpotAverage, error) {
	avg := store.SpotAverage{SpotID: spotID}
	sum := 0
	for _, row := range m.rows {
		if row.SpotID == spotID {
			sum += row.Rating
			avg.RatingCount++
		}
	}
	if avg.RatingCount > 0 {
		avg.AverageRating = math.Round(float64(sum)/float64(avg.RatingCount)*10) / 10
	}
	return avg, nil
}

type testApp struct {
	app     *application
	handler http.Handler
	reviews *mockReviewStore
	ratings *mockRatingStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	reviews := &mockReviewStore{}
	ratings := &mockRatingStore{}

	cfg := config{
		addr: ":8000",
		env:  "test",
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: 100,
			TimeFrame:            time.Second,
			Enabled:              false,
		},
	}

	app := &application{
		config: cfg,
		logger: zap.NewNop().Sugar(),
		store: store.Storage{
			Reviews: reviews,
			Ratings: ratings,
		},
		rateLimiter: ratelimiter.NewFixedWindowLimiter(
			cfg.rateLimiter.RequestsPerTimeFrame,
			cfg.rateLimiter.TimeFrame,
		),
	}

	return &testApp{
		app:     app,
		handler: app.mount(),
		reviews: reviews,
		ratings: ratings,
	}
}

func (ta *testApp) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	ta.handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
	return decoded
}
