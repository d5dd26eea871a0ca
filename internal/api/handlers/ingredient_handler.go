package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"recipebox/domain"
	"recipebox/internal/api/presenters"
	"recipebox/pkg/ingredient"
)

type (
	IngredientHandler interface {
		AddQuantity(c *fiber.Ctx) error
		UpdateQuantity(c *fiber.Ctx) error
		DeleteQuantity(c *fiber.Ctx) error
		AddMethod(c *fiber.Ctx) error
		UpdateMethod(c *fiber.Ctx) error
		DeleteMethod(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func (h *ingredientHandler) AddQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")
	req := new(domain.AddQuantityRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddQuantity, err)
	}

	res, err := h.ingredientService.AddQuantity(c.Context(), *req, recipeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedAddQuantity, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddQuantity)
}

func (h *ingredientHandler) UpdateQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	quantityID := c.Params("id")
	req := new(domain.UpdateQuantityRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateQuantity, err)
	}

	res, err := h.ingredientService.UpdateQuantity(c.Context(), *req, quantityID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedUpdateQuantity, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateQuantity)
}

func (h *ingredientHandler) DeleteQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	quantityID := c.Params("id")

	if err := h.ingredientService.DeleteQuantity(c.Context(), quantityID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedDeleteQuantity, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteQuantity)
}

func (h *ingredientHandler) AddMethod(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")
	req := new(domain.AddMethodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMethod, err)
	}

	res, err := h.ingredientService.AddMethod(c.Context(), *req, recipeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedAddMethod, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMethod)
}

func (h *ingredientHandler) UpdateMethod(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	methodID := c.Params("id")
	req := new(domain.UpdateMethodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMethod, err)
	}

	res, err := h.ingredientService.UpdateMethod(c.Context(), *req, methodID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedUpdateMethod, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMethod)
}

func (h *ingredientHandler) DeleteMethod(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	methodID := c.Params("id")

	if err := h.ingredientService.DeleteMethod(c.Context(), methodID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedDeleteMethod, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMethod)
}
