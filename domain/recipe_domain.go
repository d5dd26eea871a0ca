package domain

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
)

var (
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessGetRecipes      = "recipes retrieved successfully"
	MessageSuccessGetRecipeDetail = "recipe detail retrieved successfully"
	MessageSuccessExportRecipes   = "recipes exported successfully"
	MessageSuccessSaveRecipe      = "recipe added to saved recipes"
	MessageSuccessUnsaveRecipe    = "recipe removed from saved recipes"
	MessageRecipeAlreadySaved     = "recipe already added to saved recipes"

	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedGetRecipes      = "failed to retrieve recipes"
	MessageFailedGetRecipeDetail = "failed to retrieve recipe detail"
	MessageFailedExportRecipes   = "failed to export recipes"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedUnsaveRecipe    = "failed to remove saved recipe"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrRecipeNameTaken     = errors.New("recipe name already taken")
	ErrRecipeAlreadySaved  = errors.New("recipe already saved")
	ErrSavedRecipeNotFound = errors.New("saved recipe not found")
	ErrNotSavedRecipeOwner = errors.New("you are not the owner of this saved recipe")
)

// RecipeListPageSize is the fixed page size for every recipe listing.
const RecipeListPageSize = 10

type (
	CreateRecipeRequest struct {
		Name            string                `json:"name" form:"name" validate:"required,max=150"`
		Description     string                `json:"description" form:"description" validate:"required"`
		PrepTimeMinutes int                   `json:"prep_time_minutes" form:"prep_time_minutes" validate:"min=0"`
		CookTimeMinutes int                   `json:"cook_time_minutes" form:"cook_time_minutes" validate:"min=0"`
		Servings        int                   `json:"servings" form:"servings" validate:"required,min=1"`
		CategoryID      string                `json:"category_id" form:"category_id" validate:"required,uuid"`
		CourseID        string                `json:"course_id" form:"course_id" validate:"required,uuid"`
		CuisineID       string                `json:"cuisine_id" form:"cuisine_id" validate:"required,uuid"`
		AuthorID        string                `json:"author_id" form:"author_id" validate:"required,uuid"`
		Image           *multipart.FileHeader `json:"-" form:"image" validate:"omitempty"`
	}

	UpdateRecipeRequest struct {
		Name            string                `json:"name" form:"name" validate:"required,max=150"`
		Description     string                `json:"description" form:"description" validate:"required"`
		PrepTimeMinutes int                   `json:"prep_time_minutes" form:"prep_time_minutes" validate:"min=0"`
		CookTimeMinutes int                   `json:"cook_time_minutes" form:"cook_time_minutes" validate:"min=0"`
		Servings        int                   `json:"servings" form:"servings" validate:"required,min=1"`
		CategoryID      string                `json:"category_id" form:"category_id" validate:"required,uuid"`
		CourseID        string                `json:"course_id" form:"course_id" validate:"required,uuid"`
		CuisineID       string                `json:"cuisine_id" form:"cuisine_id" validate:"required,uuid"`
		AuthorID        string                `json:"author_id" form:"author_id" validate:"required,uuid"`
		Image           *multipart.FileHeader `json:"-" form:"image" validate:"omitempty"`
	}

	// RecipeListQuery is the raw listing input as it arrives from the
	// request: unparsed filter ids and a 1-based page.
	RecipeListQuery struct {
		CategoryID string
		CourseID   string
		CuisineID  string
		AuthorID   string
		Page       int
	}

	// RecipeFilter carries the resolved AND-combined listing filters. A nil
	// field means the filter was absent or did not map to an existing row
	// and contributes no predicate.
	RecipeFilter struct {
		CategoryID *uuid.UUID
		CourseID   *uuid.UUID
		CuisineID  *uuid.UUID
		AuthorID   *uuid.UUID
	}

	RecipeResponse struct {
		ID              string    `json:"id"`
		UserID          string    `json:"user_id,omitempty"`
		Name            string    `json:"name"`
		Description     string    `json:"description"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		CookTimeMinutes int       `json:"cook_time_minutes"`
		Servings        int       `json:"servings"`
		ImageURL        string    `json:"image_url,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
	}

	QuantityLineResponse struct {
		ID          string  `json:"id"`
		Amount      float64 `json:"amount"`
		Ingredient  string  `json:"ingredient"`
		Measurement string  `json:"measurement"`
	}

	MethodStepResponse struct {
		ID          string `json:"id"`
		Description string `json:"description"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Category   string                 `json:"category"`
		Course     string                 `json:"course"`
		Cuisine    string                 `json:"cuisine"`
		Author     string                 `json:"author"`
		Quantities []QuantityLineResponse `json:"quantities"`
		Methods    []MethodStepResponse   `json:"methods"`
	}

	RecipeExportRow struct {
		RecipeName        string `json:"recipe_name"`
		RecipeDescription string `json:"recipe_description"`
		Category          string `json:"category"`
		Cuisine           string `json:"cuisine"`
		Course            string `json:"course"`
		Author            string `json:"author"`
	}

	SavedRecipeResponse struct {
		ID     string         `json:"id"`
		Recipe RecipeResponse `json:"recipe"`
	}
)
