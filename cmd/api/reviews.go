package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"spotreviews/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type createReviewPayload struct {
	ID       *uuid.UUID `json:"id"`
	Review   string     `json:"review" validate:"required,max=2000"`
	PostDate *time.Time `json:"postDate"`
}

type updateReviewPayload struct {
	Review *string `json:"review"`
}

func spotAndUserParams(r *http.Request) (int64, int64, error) {
	spotID, err := strconv.ParseInt(chi.URLParam(r, "spotID"), 10, 64)
	if err != nil {
		return 0, 0, errors.New("invalid spot ID")
	}
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		return 0, 0, errors.New("invalid user ID")
	}
	return spotID, userID, nil
}

// createReviewHandler godoc
//
//	@Summary		Create a review
//	@Description	Registers a new review for a study spot. The id is generated server-side when absent from the body.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			spotID	path		int					true	"Spot ID"
//	@Param			userID	path		int					true	"Author user ID"
//	@Param			review	body		createReviewPayload	true	"Review payload"
//	@Success		201		{object}	store.Review
//	@Failure		400		{object}	error	"Bad Request"
//	@Failure		500		{object}	error	"Internal Server Error"
//	@Router			/review/{spotID}/user/{userID} [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	spotID, userID, err := spotAndUserParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload createReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review := &store.Review{
		SpotID: spotID,
		UserID: userID,
		Review: payload.Review,
	}
	if payload.ID != nil {
		review.ID = *payload.ID
	}
	if payload.PostDate != nil {
		review.PostDate = *payload.PostDate
	}

	if err := app.store.Reviews.Create(r.Context(), review); err != nil {
		app.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

// getReviewHandler godoc
//
//	@Summary		Get a review by ID
//	@Tags			reviews
//	@Produce		json
//	@Param			reviewID	path		string	true	"Review ID"
//	@Success		200			{object}	store.Review
//	@Failure		404			{object}	error	"Not Found"
//	@Router			/review/{reviewID} [get]
func (app *application) getReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := uuid.Parse(chi.URLParam(r, "reviewID"))
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review ID"))
		return
	}

	review, err := app.store.Reviews.GetByID(r.Context(), reviewID)
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	app.linkedResponse(w, http.StatusOK, review, "/review/"+review.ID.String())
}

// updateReviewHandler godoc
//
//	@Summary		Update the text of a review
//	@Description	Partial update; the review text is the sole mutable field and must be present.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			reviewID	path		string				true	"Review ID"
//	@Param			review		body		updateReviewPayload	true	"Update payload"
//	@Success		200			{object}	store.Review
//	@Failure		400			{object}	error	"Bad Request"
//	@Failure		404			{object}	error	"Not Found"
//	@Router			/review/{reviewID} [patch]
func (app *application) updateReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := uuid.Parse(chi.URLParam(r, "reviewID"))
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review ID"))
		return
	}

	var payload updateReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	// A no-op update is rejected rather than silently accepted.
	if payload.Review == nil {
		app.badRequestResponse(w, r, errors.New("review is required"))
		return
	}

	review, err := app.store.Reviews.UpdateText(r.Context(), reviewID, *payload.Review)
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, review)
}

// deleteReviewHandler godoc
//
//	@Summary		Delete a review
//	@Description	Deleting an id that no longer exists is an error, not a silent success.
//	@Tags			reviews
//	@Param			reviewID	path	string	true	"Review ID"
//	@Success		204			"No Content"
//	@Failure		404			{object}	error	"Not Found"
//	@Router			/review/{reviewID} [delete]
func (app *application) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := uuid.Parse(chi.URLParam(r, "reviewID"))
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review ID"))
		return
	}

	if err := app.store.Reviews.Delete(r.Context(), reviewID); err != nil {
		app.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getSpotReviewsHandler godoc
//
//	@Summary		List all reviews for a spot
//	@Description	A spot with no reviews yields an empty list, never a 404.
//	@Tags			reviews
//	@Produce		json
//	@Param			spotID	path		int	true	"Spot ID"
//	@Success		200		{object}	map[string][]store.Review
//	@Router			/reviews/{spotID} [get]
func (app *application) getSpotReviewsHandler(w http.ResponseWriter, r *http.Request) {
	spotID, err := strconv.ParseInt(chi.URLParam(r, "spotID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid spot ID"))
		return
	}

	reviews, err := app.store.Reviews.GetBySpot(r.Context(), spotID)
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]store.Review{"reviews": reviews})
}
