package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Rating struct {
	ID        uuid.UUID  `json:"id"`
	SpotID    int64      `json:"spotId"`
	UserID    int64      `json:"userId"`
	Rating    int        `json:"rating"` // 1-5
	PostDate  time.Time  `json:"postDate"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// SpotAverage is the derived view over all ratings of one spot. It is never
// persisted; a spot without ratings averages to 0.0 with a zero count.
type SpotAverage struct {
	SpotID        int64   `json:"spotId"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int     `json:"rating_count"`
}

type RatingStore struct {
	db *pgxpool.Pool
}

const selectRatingQuery = `
        SELECT id, spot_id, user_id, rating, post_date, created_at, updated_at
        FROM ratings`

func scanRating(row pgx.Row) (*Rating, error) {
	var rating Rating
	err := row.Scan(
		&rating.ID,
		&rating.SpotID,
		&rating.UserID,
		&rating.Rating,
		&rating.PostDate,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Create inserts the rating and re-reads it in the same transaction so the
// caller sees server-computed defaults (post_date, created_at).
func (s *RatingStore) Create(ctx context.Context, rating *Rating) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}

	var postDate *time.Time
	if !rating.PostDate.IsZero() {
		postDate = &rating.PostDate
	}

	return withTx(ctx, s.db, func(tx pgx.Tx) error {
		query := `
	        INSERT INTO ratings (id, spot_id, user_id, rating, post_date)
	        VALUES ($1, $2, $3, $4, COALESCE($5, now()))
	    `
		if _, err := tx.Exec(ctx, query,
			rating.ID,
			rating.SpotID,
			rating.UserID,
			rating.Rating,
			postDate,
		); err != nil {
			return fmt.Errorf("insert rating: %w", err)
		}

		row, err := scanRating(tx.QueryRow(ctx, selectRatingQuery+` WHERE id = $1`, rating.ID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("rating %s vanished after insert", rating.ID)
			}
			return err
		}
		*rating = *row
		return nil
	})
}

func (s *RatingStore) GetByID(ctx context.Context, ratingID uuid.UUID) (*Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rating, err := scanRating(s.db.QueryRow(ctx, selectRatingQuery+` WHERE id = $1`, ratingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rating, nil
}

func (s *RatingStore) GetBySpot(ctx context.Context, spotID int64) ([]Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, selectRatingQuery+` WHERE spot_id = $1 ORDER BY created_at DESC`, spotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := []Rating{}
	for rows.Next() {
		var rating Rating
		if err := rows.Scan(
			&rating.ID,
			&rating.SpotID,
			&rating.UserID,
			&rating.Rating,
			&rating.PostDate,
			&rating.CreatedAt,
			&rating.UpdatedAt,
		); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

// UpdateValue sets the rating value and refreshes updated_at, then re-reads
// the row in the same transaction. Returns ErrNotFound when no row matches.
func (s *RatingStore) UpdateValue(ctx context.Context, ratingID uuid.UUID, value int) (*Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var rating *Rating
	err := withTx(ctx, s.db, func(tx pgx.Tx) error {
		query := `
	        UPDATE ratings
	        SET rating = $1, updated_at = now()
	        WHERE id = $2
	    `
		tag, err := tx.Exec(ctx, query, value, ratingID)
		if err != nil {
			return fmt.Errorf("update rating: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}

		rating, err = scanRating(tx.QueryRow(ctx, selectRatingQuery+` WHERE id = $1`, ratingID))
		return err
	})
	if err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *RatingStore) Delete(ctx context.Context, ratingID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := s.db.Exec(ctx, `DELETE FROM ratings WHERE id = $1`, ratingID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSpotAverage computes the average and count in one read. COALESCE turns
// the empty-spot NULL aggregate into 0 so the zero case is a valid result.
func (s *RatingStore) GetSpotAverage(ctx context.Context, spotID int64) (SpotAverage, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        SELECT
            COALESCE(AVG(rating), 0) AS average_rating,
            COUNT(rating) AS rating_count
        FROM ratings
        WHERE spot_id = $1
    `
	avg := SpotAverage{SpotID: spotID}
	if err := s.db.QueryRow(ctx, query, spotID).Scan(&avg.AverageRating, &avg.RatingCount); err != nil {
		return SpotAverage{SpotID: spotID}, err
	}

	avg.AverageRating = math.Round(avg.AverageRating*10) / 10
	return avg, nil
}
