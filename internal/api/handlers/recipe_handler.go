package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"recipebox/domain"
	"recipebox/internal/api/presenters"
	"recipebox/pkg/recipe"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		SearchRecipes(c *fiber.Ctx) error
		SearchRecipesByIngredient(c *fiber.Ctx) error
		ExportRecipes(c *fiber.Ctx) error
		GetMyRecipes(c *fiber.Ctx) error
		GetSavedRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		SaveRecipe(c *fiber.Ctx) error
		UnsaveRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func pageParam(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func paginated(items any, page int, total int64) fiber.Map {
	totalPages := int((total + domain.RecipeListPageSize - 1) / domain.RecipeListPageSize)
	return fiber.Map{
		"items":       items,
		"page":        page,
		"limit":       domain.RecipeListPageSize,
		"total":       total,
		"total_pages": totalPages,
		"has_next":    page < totalPages,
		"has_prev":    page > 1,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	query := domain.RecipeListQuery{
		CategoryID: c.Query("category_id"),
		CourseID:   c.Query("course_id"),
		CuisineID:  c.Query("cuisine_id"),
		AuthorID:   c.Query("author_id"),
		Page:       pageParam(c),
	}

	res, total, err := h.recipeService.GetRecipes(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, paginated(res, query.Page, total), fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) SearchRecipes(c *fiber.Ctx) error {
	page := pageParam(c)

	res, total, err := h.recipeService.SearchByName(c.Context(), c.Query("name"), page)
	if err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, paginated(res, page, total), fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) SearchRecipesByIngredient(c *fiber.Ctx) error {
	page := pageParam(c)

	res, total, err := h.recipeService.SearchByIngredient(c.Context(), c.Query("ingredient"), page)
	if err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, paginated(res, page, total), fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) ExportRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.ExportRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedExportRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExportRecipes)
}

func (h *recipeHandler) GetMyRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page := pageParam(c)

	res, total, err := h.recipeService.GetMyRecipes(c.Context(), userID, page)
	if err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, paginated(res, page, total), fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetSavedRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page := pageParam(c)

	res, total, err := h.recipeService.GetSavedRecipes(c.Context(), userID, page)
	if err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, paginated(res, page, total), fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	if err := h.recipeService.UpdateRecipe(c.Context(), recipeID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.recipeService.DeleteRecipe(c.Context(), recipeID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) SaveRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.recipeService.SaveRecipe(c.Context(), recipeID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessSaveRecipe)
}

func (h *recipeHandler) UnsaveRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	savedID := c.Params("id")

	if err := h.recipeService.UnsaveRecipe(c.Context(), savedID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForErr(err), domain.MessageFailedUnsaveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnsaveRecipe)
}
