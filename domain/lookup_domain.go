package domain

import (
	"errors"
)

var (
	MessageSuccessAddLookup    = "entry added successfully"
	MessageSuccessUpdateLookup = "entry updated successfully"
	MessageSuccessGetLookups   = "reference data retrieved successfully"

	MessageFailedAddLookup    = "failed to add entry"
	MessageFailedUpdateLookup = "failed to update entry"
	MessageFailedGetLookups   = "failed to retrieve reference data"

	ErrCategoryNotFound    = errors.New("category not found")
	ErrCourseNotFound      = errors.New("course not found")
	ErrCuisineNotFound     = errors.New("cuisine not found")
	ErrCountryNotFound     = errors.New("country not found")
	ErrAuthorNotFound      = errors.New("author not found")
	ErrMeasurementNotFound = errors.New("measurement not found")
	ErrLookupNameTaken     = errors.New("name already exists")
)

type (
	AddLookupRequest struct {
		Name string `json:"name" validate:"required,max=150"`
	}

	UpdateLookupRequest struct {
		Name string `json:"name" validate:"required,max=150"`
	}

	AddAuthorRequest struct {
		Name      string `json:"name" validate:"required,max=150"`
		CountryID string `json:"country_id" validate:"required,uuid"`
	}

	UpdateAuthorRequest struct {
		Name      string `json:"name" validate:"required,max=150"`
		CountryID string `json:"country_id" validate:"required,uuid"`
	}

	LookupResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	AuthorResponse struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Country string `json:"country,omitempty"`
	}

	// StaticDataResponse is the manage-static-data view: every lookup list
	// in one payload.
	StaticDataResponse struct {
		Categories   []LookupResponse `json:"categories"`
		Courses      []LookupResponse `json:"courses"`
		Cuisines     []LookupResponse `json:"cuisines"`
		Countries    []LookupResponse `json:"countries"`
		Authors      []AuthorResponse `json:"authors"`
		Measurements []LookupResponse `json:"measurements"`
	}
)
