package recipe

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipeDetail(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]*entities.Recipe, int64, error)
		GetRecipesByUser(ctx context.Context, userID string, page, limit int) ([]*entities.Recipe, int64, error)
		SearchRecipesByName(ctx context.Context, name string, page, limit int) ([]*entities.Recipe, int64, error)
		SearchRecipesByIngredient(ctx context.Context, ingredient string, page, limit int) ([]*entities.Recipe, int64, error)
		GetRecipesForExport(ctx context.Context) ([]*entities.Recipe, error)
		GetQuantityLines(ctx context.Context, recipeID string) ([]*entities.Quantity, error)
		GetMethodSteps(ctx context.Context, recipeID string) ([]*entities.Method, error)

		CreateSavedRecipe(ctx context.Context, saved *entities.SavedRecipe) error
		GetSavedRecipeByUserAndRecipe(ctx context.Context, userID, recipeID string) (*entities.SavedRecipe, error)
		GetSavedRecipeByID(ctx context.Context, id string) (*entities.SavedRecipe, error)
		DeleteSavedRecipe(ctx context.Context, id string) error
		GetSavedRecipes(ctx context.Context, userID string, page, limit int) ([]*entities.SavedRecipe, int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

// DeleteRecipe removes the recipe together with its quantity lines, method
// steps and saved-recipe rows in one transaction.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Quantity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Method{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.SavedRecipe{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeDetail(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Course").
		Preload("Cuisine").
		Preload("Author").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	filtered := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&entities.Recipe{})
		if filter.CategoryID != nil {
			query = query.Where("category_id = ?", *filter.CategoryID)
		}
		if filter.CourseID != nil {
			query = query.Where("course_id = ?", *filter.CourseID)
		}
		if filter.CuisineID != nil {
			query = query.Where("cuisine_id = ?", *filter.CuisineID)
		}
		if filter.AuthorID != nil {
			query = query.Where("author_id = ?", *filter.AuthorID)
		}
		return query
	}

	if err := filtered().Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := filtered().
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) SearchRecipesByName(ctx context.Context, name string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit
	pattern := "%" + strings.ToLower(name) + "%"

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("LOWER(name) LIKE ?", pattern).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// SearchRecipesByIngredient joins through quantities. Both the list and the
// count are distinct matching recipes, so a recipe using the ingredient in
// several lines shows up once.
func (r *recipeRepository) SearchRecipesByIngredient(ctx context.Context, ingredient string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit
	pattern := "%" + strings.ToLower(ingredient) + "%"

	joined := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&entities.Recipe{}).
			Joins("JOIN quantities ON quantities.recipe_id = recipes.id").
			Joins("JOIN ingredients ON ingredients.id = quantities.ingredient_id").
			Where("LOWER(ingredients.name) LIKE ?", pattern)
	}

	if err := joined().Distinct("recipes.id").Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := joined().
		Distinct("recipes.*").
		Order("recipes.created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipesForExport(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Course").
		Preload("Cuisine").
		Preload("Author").
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetQuantityLines(ctx context.Context, recipeID string) ([]*entities.Quantity, error) {
	var quantities []*entities.Quantity
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Preload("Measurement").
		Where("recipe_id = ?", recipeID).
		Order("created_at asc").
		Find(&quantities).Error; err != nil {
		return nil, err
	}
	return quantities, nil
}

func (r *recipeRepository) GetMethodSteps(ctx context.Context, recipeID string) ([]*entities.Method, error) {
	var methods []*entities.Method
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at asc").
		Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *recipeRepository) CreateSavedRecipe(ctx context.Context, saved *entities.SavedRecipe) error {
	return r.db.WithContext(ctx).Create(saved).Error
}

func (r *recipeRepository) GetSavedRecipeByUserAndRecipe(ctx context.Context, userID, recipeID string) (*entities.SavedRecipe, error) {
	var saved entities.SavedRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *recipeRepository) GetSavedRecipeByID(ctx context.Context, id string) (*entities.SavedRecipe, error) {
	var saved entities.SavedRecipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *recipeRepository) DeleteSavedRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.SavedRecipe{}).Error
}

func (r *recipeRepository) GetSavedRecipes(ctx context.Context, userID string, page, limit int) ([]*entities.SavedRecipe, int64, error) {
	var saved []*entities.SavedRecipe
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.SavedRecipe{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&saved).Error; err != nil {
		return nil, 0, err
	}

	return saved, count, nil
}
