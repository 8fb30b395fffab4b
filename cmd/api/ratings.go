package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"spotreviews/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type createRatingPayload struct {
	ID       *uuid.UUID `json:"id"`
	Rating   int        `json:"rating" validate:"required,min=1,max=5"`
	PostDate *time.Time `json:"postDate"`
}

type updateRatingPayload struct {
	Rating *int `json:"rating"`
}

// createRatingHandler godoc
//
//	@Summary		Create a rating
//	@Description	Registers a new 1-5 rating for a study spot. The id is generated server-side when absent from the body.
//	@Tags			ratings
//	@Accept			json
//	@Produce		json
//	@Param			spotID	path		int					true	"Spot ID"
//	@Param			userID	path		int					true	"Author user ID"
//	@Param			rating	body		createRatingPayload	true	"Rating payload"
//	@Success		201		{object}	store.Rating
//	@Failure		400		{object}	error	"Bad Request"
//	@Failure		500		{object}	error	"Internal Server Error"
//	@Router			/rating/{spotID}/user/{userID} [post]
func (app *application) createRatingHandler(w http.ResponseWriter, r *http.Request) {
	spotID, userID, err := spotAndUserParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload createRatingPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	rating := &store.Rating{
		SpotID: spotID,
		UserID: userID,
		Rating: payload.Rating,
	}
	if payload.ID != nil {
		rating.ID = *payload.ID
	}
	if payload.PostDate != nil {
		rating.PostDate = *payload.PostDate
	}

	if err := app.store.Ratings.Create(r.Context(), rating); err != nil {
		app.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, rating)
}

// getRatingHandler godoc
//
//	@Summary		Get a rating by ID
//	@Tags			ratings
//	@Produce		json
//	@Param			ratingID	path		string	true	"Rating ID"
//	@Success		200			{object}	store.Rating
//	@Failure		404			{object}	error	"Not Found"
//	@Router			/rating/{ratingID} [get]
func (app *application) getRatingHandler(w http.ResponseWriter, r *http.Request) {
	ratingID, err := uuid.Parse(chi.URLParam(r, "ratingID"))
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid rating ID"))
		return
	}

	rating, err := app.store.Ratings.GetByID(r.Context(), ratingID)
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	app.linkedResponse(w, http.StatusOK, rating, "/rating/"+rating.ID.String())
}

// updateRatingHandler godoc
//
//	@Summary		Update the value of a rating
//	@Description	Partial update; the rating value is the sole mutable field and must be present and within 1-5.
//	@Tags			ratings
//	@Accept			json
//	@Produce		json
//	@Param			ratingID	path		string				true	"Rating ID"
//	@Param			rating		body		updateRatingPayload	true	"Update payload"
//	@Success		200			{object}	store.Rating
//	@Failure		400			{object}	error	"Bad Request"
//	@Failure		404			{object}	error	"Not Found"
//	@Router			/rating/{ratingID} [patch]
func (app *application) updateRatingHandler(w http.ResponseWriter, r *http.Request) {
	ratingID, err := uuid.Parse(chi.URLParam(r, "ratingID"))
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid rating ID"))
		return
	}

	var payload updateRatingPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	// A no-op update is rejected rather than silently accepted.
	if payload.Rating == nil {
		app.badRequestResponse(w, r, errors.New("rating is required"))
		return
	}
	if *payload.Rating < 1 || *payload.Rating > 5 {
		app.badRequestResponse(w, r, fmt.Errorf("rating must be between 1 and 5"))
		return
	}

	rating, err := app.store.Ratings.UpdateValue(r.Context(), ratingID, *payload.Rating)
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rating)
}

// deleteRatingHandler godoc
//
//	@Summary		Delete a rating
//	@Description	Deleting an id that no longer exists is an error, not a silent success.
//	@Tags			ratings
//	@Param			ratingID	path	string	true	"Rating ID"
//	@Success		204			"No Content"
//	@Failure		404			{object}	error	"Not Found"
//	@Router			/rating/{ratingID} [delete]
func (app *application) deleteRatingHandler(w http.ResponseWriter, r *http.Request) {
	ratingID, err := uuid.Parse(chi.URLParam(r, "ratingID"))
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid rating ID"))
		return
	}

	if err := app.store.Ratings.Delete(r.Context(), ratingID); err != nil {
		app.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getSpotRatingsHandler godoc
//
//	@Summary		List all ratings for a spot
//	@Description	A spot with no ratings yields an empty list, never a 404.
//	@Tags			ratings
//	@Produce		json
//	@Param			spotID	path		int	true	"Spot ID"
//	@Success		200		{object}	map[string][]store.Rating
//	@Router			/ratings/{spotID} [get]
func (app *application) getSpotRatingsHandler(w http.ResponseWriter, r *http.Request) {
	spotID, err := strconv.ParseInt(chi.URLParam(r, "spotID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid spot ID"))
		return
	}

	ratings, err := app.store.Ratings.GetBySpot(r.Context(), spotID)
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]store.Rating{"ratings": ratings})
}

// getSpotAverageHandler godoc
//
//	@Summary		Average rating for a spot
//	@Description	Mean of all ratings rounded to one decimal, with the row count. A spot with no ratings yields 0.0 and a zero count.
//	@Tags			ratings
//	@Produce		json
//	@Param			spotID	path		int	true	"Spot ID"
//	@Success		200		{object}	store.SpotAverage
//	@Router			/ratings/{spotID}/average [get]
func (app *application) getSpotAverageHandler(w http.ResponseWriter, r *http.Request) {
	spotID, err := strconv.ParseInt(chi.URLParam(r, "spotID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid spot ID"))
		return
	}

	average, err := app.store.Ratings.GetSpotAverage(r.Context(), spotID)
	if err != nil {
		app.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, average)
}
