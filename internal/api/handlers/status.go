package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"recipebox/domain"
)

// statusForErr maps a service error to an HTTP status. Only errors the
// client caused map below 500; anything unrecognized is a server fault.
func statusForErr(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrSavedRecipeNotFound),
		errors.Is(err, domain.ErrQuantityNotFound),
		errors.Is(err, domain.ErrMethodNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrCourseNotFound),
		errors.Is(err, domain.ErrCuisineNotFound),
		errors.Is(err, domain.ErrCountryNotFound),
		errors.Is(err, domain.ErrAuthorNotFound),
		errors.Is(err, domain.ErrMeasurementNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotRecipeOwner),
		errors.Is(err, domain.ErrNotSavedRecipeOwner):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrRecipeNameTaken),
		errors.Is(err, domain.ErrRecipeAlreadySaved),
		errors.Is(err, domain.ErrLookupNameTaken):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrEmailNotRegistered),
		errors.Is(err, domain.ErrPasswordNotMatch),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
