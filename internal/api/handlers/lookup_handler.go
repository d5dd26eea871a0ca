package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"recipebox/domain"
	"recipebox/internal/api/presenters"
	"recipebox/pkg/lookup"
)

type (
	LookupHandler interface {
		GetStaticData(c *fiber.Ctx) error
		AddCategory(c *fiber.Ctx) error
		UpdateCategory(c *fiber.Ctx) error
		AddCourse(c *fiber.Ctx) error
		UpdateCourse(c *fiber.Ctx) error
		AddCuisine(c *fiber.Ctx) error
		UpdateCuisine(c *fiber.Ctx) error
		AddCountry(c *fiber.Ctx) error
		UpdateCountry(c *fiber.Ctx) error
		AddMeasurement(c *fiber.Ctx) error
		UpdateMeasurement(c *fiber.Ctx) error
		AddAuthor(c *fiber.Ctx) error
		UpdateAuthor(c *fiber.Ctx) error
	}

	lookupHandler struct {
		lookupService lookup.LookupService
		validator     *validator.Validate
	}
)

func NewLookupHandler(lookupService lookup.LookupService, validator *validator.Validate) LookupHandler {
	return &lookupHandler{
		lookupService: lookupService,
		validator:     validator,
	}
}

func (h *lookupHandler) GetStaticData(c *fiber.Ctx) error {
	res, err := h.lookupService.GetStaticData(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedGetLookups, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLookups)
}

// addLookup and updateLookup carry the shared body-parse/validate/respond
// shape for the five name-only lookup tables.
func (h *lookupHandler) addLookup(c *fiber.Ctx, add func(context.Context, domain.AddLookupRequest) (domain.LookupResponse, error)) error {
	req := new(domain.AddLookupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddLookup, err)
	}

	res, err := add(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedAddLookup, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddLookup)
}

func (h *lookupHandler) updateLookup(c *fiber.Ctx, update func(context.Context, string, domain.UpdateLookupRequest) error) error {
	id := c.Params("id")
	req := new(domain.UpdateLookupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateLookup, err)
	}

	if err := update(c.Context(), id, *req); err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedUpdateLookup, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateLookup)
}

func (h *lookupHandler) AddCategory(c *fiber.Ctx) error {
	return h.addLookup(c, h.lookupService.AddCategory)
}

func (h *lookupHandler) UpdateCategory(c *fiber.Ctx) error {
	return h.updateLookup(c, h.lookupService.UpdateCategory)
}

func (h *lookupHandler) AddCourse(c *fiber.Ctx) error {
	return h.addLookup(c, h.lookupService.AddCourse)
}

func (h *lookupHandler) UpdateCourse(c *fiber.Ctx) error {
	return h.updateLookup(c, h.lookupService.UpdateCourse)
}

func (h *lookupHandler) AddCuisine(c *fiber.Ctx) error {
	return h.addLookup(c, h.lookupService.AddCuisine)
}

func (h *lookupHandler) UpdateCuisine(c *fiber.Ctx) error {
	return h.updateLookup(c, h.lookupService.UpdateCuisine)
}

func (h *lookupHandler) AddCountry(c *fiber.Ctx) error {
	return h.addLookup(c, h.lookupService.AddCountry)
}

func (h *lookupHandler) UpdateCountry(c *fiber.Ctx) error {
	return h.updateLookup(c, h.lookupService.UpdateCountry)
}

func (h *lookupHandler) AddMeasurement(c *fiber.Ctx) error {
	return h.addLookup(c, h.lookupService.AddMeasurement)
}

func (h *lookupHandler) UpdateMeasurement(c *fiber.Ctx) error {
	return h.updateLookup(c, h.lookupService.UpdateMeasurement)
}

func (h *lookupHandler) AddAuthor(c *fiber.Ctx) error {
	req := new(domain.AddAuthorRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddLookup, err)
	}

	res, err := h.lookupService.AddAuthor(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedAddLookup, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddLookup)
}

func (h *lookupHandler) UpdateAuthor(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(domain.UpdateAuthorRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateLookup, err)
	}

	if err := h.lookupService.UpdateAuthor(c.Context(), id, *req); err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedUpdateLookup, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateLookup)
}
