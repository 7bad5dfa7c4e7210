package main

import (
	"errors"
	"net/http"

	"safespot/internal/domain/places"
	"safespot/internal/geo"
	"safespot/internal/params"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// listCategoriesHandler godoc
//
//	@Summary		List place categories
//	@Description	Categories a place can belong to. "all" disables the category filter of the place list.
//	@Tags			places
//	@Produce		json
//	@Success		200	{array}	places.Category
//	@Router			/categories [get]
func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, places.Categories); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listPlacesHandler godoc
//
//	@Summary		List places with review statistics
//	@Description	Places newest first, optionally filtered by category and by a case-insensitive search on name or location. Each place carries at most 3 tags.
//	@Tags			places
//	@Produce		json
//	@Param			category	query		string	false	"Category id, or all"
//	@Param			search		query		string	false	"Substring of name or location"
//	@Success		200			{array}		places.PlaceWithStats
//	@Failure		400			{object}	error
//	@Failure		500			{object}	error
//	@Router			/places [get]
func (app *application) listPlacesHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := params.ParsePlaceFilter(r.URL.Query())
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	list, err := app.places.ListPlaces(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getPlaceHandler godoc
//
//	@Summary		Get one place
//	@Description	A place with statistics over all its reviews, every distinct tag and its images.
//	@Tags			places
//	@Produce		json
//	@Param			placeID	path		string	true	"Place ID"
//	@Success		200		{object}	places.PlaceWithStats
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Failure		500		{object}	error
//	@Router			/places/{placeID} [get]
func (app *application) getPlaceHandler(w http.ResponseWriter, r *http.Request) {
	placeID, err := uuid.Parse(chi.URLParam(r, "placeID"))
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid place ID"))
		return
	}

	place, err := app.places.GetPlace(r.Context(), placeID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if place == nil {
		app.notFoundResponse(w, r, places.ErrPlaceNotFound)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, place); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CreatePlacePayload struct {
	Name        string    `json:"name" validate:"required,max=100"`
	Category    string    `json:"category" validate:"required,oneof=cafe restaurant park library gym hotel transport shopping entertainment other"`
	Location    string    `json:"location" validate:"required,max=255"`
	Description string    `json:"description" validate:"max=1000"`
	Hours       string    `json:"hours" validate:"max=100"`
	ImageURL    string    `json:"image_url" validate:"omitempty,url,max=500"`
	Coordinates []float64 `json:"coordinates,omitempty" validate:"omitempty,latlng"` // [lat, lng]
}

// createPlaceHandler godoc
//
//	@Summary		Add a place
//	@Description	Stores a new place. Coordinates are optional and given as [lat, lng].
//	@Tags			places
//	@Accept			json
//	@Produce		json
//	@Param			place	body		CreatePlacePayload	true	"Place details"
//	@Success		201		{object}	places.Place
//	@Failure		400		{object}	error
//	@Failure		500		{object}	error
//	@Router			/places [post]
func (app *application) createPlaceHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreatePlacePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	in := places.NewPlace{
		Name:        payload.Name,
		Category:    payload.Category,
		Location:    payload.Location,
		Description: payload.Description,
		Hours:       payload.Hours,
		ImageURL:    payload.ImageURL,
	}
	if len(payload.Coordinates) == 2 {
		in.Coordinates = &geo.Point{Lat: payload.Coordinates[0], Lng: payload.Coordinates[1]}
	}

	place, err := app.places.CreatePlace(r.Context(), in)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, place); err != nil {
		app.internalServerError(w, r, err)
	}
}
