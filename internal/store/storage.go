package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("resource not found")
	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Reviews interface {
		Create(context.Context, *Review) error
		GetByID(context.Context, uuid.UUID) (*Review, error)
		GetBySpot(context.Context, int64) ([]Review, error)
		UpdateText(context.Context, uuid.UUID, string) (*Review, error)
		Delete(context.Context, uuid.UUID) error
	}
	Ratings interface {
		Create(context.Context, *Rating) error
		GetByID(context.Context, uuid.UUID) (*Rating, error)
		GetBySpot(context.Context, int64) ([]Rating, error)
		UpdateValue(context.Context, uuid.UUID, int) (*Rating, error)
		Delete(context.Context, uuid.UUID) error
		GetSpotAverage(context.Context, int64) (SpotAverage, error)
	}
}

func NewStorage(db *pgxpool.Pool) Storage {
	return Storage{
		Reviews: &ReviewStore{db},
		Ratings: &RatingStore{db},
	}
}
