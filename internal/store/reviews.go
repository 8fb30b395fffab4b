package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Review struct {
	ID        uuid.UUID  `json:"id"`
	SpotID    int64      `json:"spotId"`
	UserID    int64      `json:"userId"`
	Review    string     `json:"review"`
	PostDate  time.Time  `json:"postDate"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ReviewStore struct {
	db *pgxpool.Pool
}

// Create inserts the review and re-reads it in the same transaction so the
// caller sees server-computed defaults (post_date, created_at).
func (s *ReviewStore) Create(ctx context.Context, review *Review) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}

	var postDate *time.Time
	if !review.PostDate.IsZero() {
		postDate = &review.PostDate
	}

	return withTx(ctx, s.db, func(tx pgx.Tx) error {
		query := `
	        INSERT INTO reviews (id, spot_id, user_id, review, post_date)
	        VALUES ($1, $2, $3, $4, COALESCE($5, now()))
	    `
		if _, err := tx.Exec(ctx, query,
			review.ID,
			review.SpotID,
			review.UserID,
			review.Review,
			postDate,
		); err != nil {
			return fmt.Errorf("insert review: %w", err)
		}

		row, err := scanReview(tx.QueryRow(ctx, selectReviewQuery+` WHERE id = $1`, review.ID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("review %s vanished after insert", review.ID)
			}
			return err
		}
		*review = *row
		return nil
	})
}

const selectReviewQuery = `
        SELECT id, spot_id, user_id, review, post_date, created_at, updated_at
        FROM reviews`

func scanReview(row pgx.Row) (*Review, error) {
	var review Review
	err := row.Scan(
		&review.ID,
		&review.SpotID,
		&review.UserID,
		&review.Review,
		&review.PostDate,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewStore) GetByID(ctx context.Context, reviewID uuid.UUID) (*Review, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	review, err := scanReview(s.db.QueryRow(ctx, selectReviewQuery+` WHERE id = $1`, reviewID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *ReviewStore) GetBySpot(ctx context.Context, spotID int64) ([]Review, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, selectReviewQuery+` WHERE spot_id = $1 ORDER BY created_at DESC`, spotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		var review Review
		if err := rows.Scan(
			&review.ID,
			&review.SpotID,
			&review.UserID,
			&review.Review,
			&review.PostDate,
			&review.CreatedAt,
			&review.UpdatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// UpdateText sets the review body and refreshes updated_at, then re-reads the
// row in the same transaction. Returns ErrNotFound when no row matches.
func (s *ReviewStore) UpdateText(ctx context.Context, reviewID uuid.UUID, text string) (*Review, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var review *Review
	err := withTx(ctx, s.db, func(tx pgx.Tx) error {
		query := `
	        UPDATE reviews
	        SET review = $1, updated_at = now()
	        WHERE id = $2
	    `
		tag, err := tx.Exec(ctx, query, text, reviewID)
		if err != nil {
			return fmt.Errorf("update review: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}

		review, err = scanReview(tx.QueryRow(ctx, selectReviewQuery+` WHERE id = $1`, reviewID))
		return err
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewStore) Delete(ctx context.Context, reviewID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := s.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
