package main

import (
	"errors"
	"net/http"

	"safespot/internal/domain/reviews"
	"safespot/internal/params"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type createReviewPayload struct {
	AuthorName     string   `json:"author_name" validate:"required,max=100"`
	Rating         int      `json:"rating" validate:"required,min=1,max=5"`
	SafetyScore    int      `json:"safety_score" validate:"required,min=1,max=5"`
	ReviewText     string   `json:"review_text" validate:"required,max=2000"`
	VisitTime      string   `json:"visit_time" validate:"max=50"`
	WouldRecommend bool     `json:"would_recommend"`
	Tags           []string `json:"tags" validate:"max=10,dive,required,max=40"`
}

type helpfulResponse struct {
	HelpfulCount int `json:"helpful_count"`
}

// getPlaceReviewsHandler godoc
//
//	@Summary		List the reviews of a place
//	@Description	Reviews newest first, each with its tags.
//	@Tags			reviews
//	@Produce		json
//	@Param			placeID	path		string	true	"Place ID"
//	@Success		200		{array}		reviews.ReviewWithTags
//	@Failure		400		{object}	error
//	@Failure		500		{object}	error
//	@Router			/places/{placeID}/reviews [get]
func (app *application) getPlaceReviewsHandler(w http.ResponseWriter, r *http.Request) {
	placeID, err := uuid.Parse(chi.URLParam(r, "placeID"))
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid place ID"))
		return
	}

	app.writeReviews(w, r, &placeID)
}

// listReviewsHandler godoc
//
//	@Summary		List reviews
//	@Description	Reviews newest first, optionally of one place only.
//	@Tags			reviews
//	@Produce		json
//	@Param			place_id	query		string	false	"Place ID"
//	@Success		200			{array}		reviews.ReviewWithTags
//	@Failure		400			{object}	error
//	@Failure		500			{object}	error
//	@Router			/reviews [get]
func (app *application) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	placeID, err := params.OptionalUUID(r.URL.Query(), "place_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.writeReviews(w, r, placeID)
}

func (app *application) writeReviews(w http.ResponseWriter, r *http.Request, placeID *uuid.UUID) {
	list, err := app.reviews.ListReviews(r.Context(), placeID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createReviewHandler godoc
//
//	@Summary		Review a place
//	@Description	Stores a review and its tags as one unit. A bearer token, when sent, links the review to the author's account.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			placeID	path		string				true	"Place ID"
//	@Param			review	body		createReviewPayload	true	"Review"
//	@Success		201		{object}	reviews.ReviewWithTags
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		404		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/places/{placeID}/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	placeID, err := uuid.Parse(chi.URLParam(r, "placeID"))
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid place ID"))
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

	review := &reviews.Review{
		PlaceID:        &placeID,
		UserID:         getUserIDFromContext(r),
		AuthorName:     payload.AuthorName,
		Rating:         payload.Rating,
		SafetyScore:    payload.SafetyScore,
		ReviewText:     payload.ReviewText,
		VisitTime:      payload.VisitTime,
		WouldRecommend: payload.WouldRecommend,
	}

	created, err := app.reviews.CreateReview(r.Context(), review, payload.Tags)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrUnknownPlace):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, reviews.ErrTagsNotSaved):
			app.writeFailedResponse(w, r, "the review was not saved because its tags could not be stored", err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, created); err != nil {
		app.internalServerError(w, r, err)
	}
}

// markReviewHelpfulHandler godoc
//
//	@Summary		Mark a review helpful
//	@Description	Adds one to the review's helpful counter and returns the new value.
//	@Tags			reviews
//	@Produce		json
//	@Param			reviewID	path		string	true	"Review ID"
//	@Success		200			{object}	helpfulResponse
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Router			/reviews/{reviewID}/helpful [post]
func (app *application) markReviewHelpfulHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := uuid.Parse(chi.URLParam(r, "reviewID"))
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review ID"))
		return
	}

	count, err := app.reviews.IncrementHelpful(r.Context(), reviewID)
	if err != nil {
		if errors.Is(err, reviews.ErrReviewNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, helpfulResponse{HelpfulCount: count}); err != nil {
		app.internalServerError(w, r, err)
	}
}
