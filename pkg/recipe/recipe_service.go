package recipe

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
	"recipebox/internal/utils/storage"
	"recipebox/pkg/lookup"
)

const recipeImageDir = "recipes"

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) error
		DeleteRecipe(ctx context.Context, id string, userID string) error
		GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetailResponse, error)
		GetRecipes(ctx context.Context, query domain.RecipeListQuery) ([]domain.RecipeResponse, int64, error)
		GetMyRecipes(ctx context.Context, userID string, page int) ([]domain.RecipeResponse, int64, error)
		SearchByName(ctx context.Context, name string, page int) ([]domain.RecipeResponse, int64, error)
		SearchByIngredient(ctx context.Context, ingredient string, page int) ([]domain.RecipeResponse, int64, error)
		ExportRecipes(ctx context.Context) ([]domain.RecipeExportRow, error)
		SaveRecipe(ctx context.Context, recipeID string, userID string) error
		UnsaveRecipe(ctx context.Context, savedID string, userID string) error
		GetSavedRecipes(ctx context.Context, userID string, page int) ([]domain.SavedRecipeResponse, int64, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		lookupRepository lookup.LookupRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, lookupRepository lookup.LookupRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		lookupRepository: lookupRepository,
		s3:               s3,
	}
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:              recipe.ID.String(),
		Name:            recipe.Name,
		Description:     recipe.Description,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
		Servings:        recipe.Servings,
		ImageURL:        recipe.ImageURL,
		CreatedAt:       recipe.CreatedAt,
	}
	if recipe.UserID != nil {
		res.UserID = recipe.UserID.String()
	}
	return res
}

func toRecipeResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	responses := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, toRecipeResponse(recipe))
	}
	return responses
}

func (s *recipeService) resolveLookups(ctx context.Context, categoryID, courseID, cuisineID, authorID string) (uuid.UUID, uuid.UUID, uuid.UUID, uuid.UUID, error) {
	var zero uuid.UUID

	category, err := s.lookupRepository.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return zero, zero, zero, zero, domain.ErrCategoryNotFound
	}
	course, err := s.lookupRepository.GetCourseByID(ctx, courseID)
	if err != nil {
		return zero, zero, zero, zero, domain.ErrCourseNotFound
	}
	cuisine, err := s.lookupRepository.GetCuisineByID(ctx, cuisineID)
	if err != nil {
		return zero, zero, zero, zero, domain.ErrCuisineNotFound
	}
	author, err := s.lookupRepository.GetAuthorByID(ctx, authorID)
	if err != nil {
		return zero, zero, zero, zero, domain.ErrAuthorNotFound
	}

	return category.ID, course.ID, cuisine.ID, author.ID, nil
}

// uploadImage pushes the file to object storage. A failed upload degrades
// to "no image": the recipe mutation still goes through.
func (s *recipeService) uploadImage(recipe *entities.Recipe, image *multipart.FileHeader) {
	fileName := fmt.Sprintf("recipe-%s", recipe.ID.String())

	var objectKey string
	var err error
	if recipe.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if existingKey != "" {
			objectKey, err = s.s3.UpdateFile(existingKey, image, storage.AllowImage...)
		} else {
			objectKey, err = s.s3.UploadFile(fileName, image, recipeImageDir, storage.AllowImage...)
		}
	} else {
		objectKey, err = s.s3.UploadFile(fileName, image, recipeImageDir, storage.AllowImage...)
	}
	if err != nil {
		log.Printf("recipe image upload failed: %v", err)
		return
	}

	recipe.ImageFilename = image.Filename
	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	categoryID, courseID, cuisineID, authorID, err := s.resolveLookups(ctx, req.CategoryID, req.CourseID, req.CuisineID, req.AuthorID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:              uuid.New(),
		UserID:          &userUUID,
		Name:            req.Name,
		Description:     req.Description,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		CategoryID:      categoryID,
		CourseID:        courseID,
		CuisineID:       cuisineID,
		AuthorID:        authorID,
	}

	if req.Image != nil {
		s.uploadImage(recipe, req.Image)
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeResponse{}, domain.ErrRecipeNameTaken
		}
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if err := domain.AssertOwner(recipe.UserID, userID); err != nil {
		return err
	}

	categoryID, courseID, cuisineID, authorID, err := s.resolveLookups(ctx, req.CategoryID, req.CourseID, req.CuisineID, req.AuthorID)
	if err != nil {
		return err
	}

	recipe.Name = req.Name
	recipe.Description = req.Description
	recipe.PrepTimeMinutes = req.PrepTimeMinutes
	recipe.CookTimeMinutes = req.CookTimeMinutes
	recipe.Servings = req.Servings
	recipe.CategoryID = categoryID
	recipe.CourseID = courseID
	recipe.CuisineID = cuisineID
	recipe.AuthorID = authorID

	// Without a new file the stored filename/URL stay as they are.
	if req.Image != nil {
		s.uploadImage(recipe, req.Image)
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrRecipeNameTaken
		}
		return err
	}
	return nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if err := domain.AssertOwner(recipe.UserID, userID); err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		return err
	}

	if recipe.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}
	return nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	quantities, err := s.recipeRepository.GetQuantityLines(ctx, id)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	methods, err := s.recipeRepository.GetMethodSteps(ctx, id)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	detail := domain.RecipeDetailResponse{
		RecipeResponse: toRecipeResponse(recipe),
		Quantities:     make([]domain.QuantityLineResponse, 0, len(quantities)),
		Methods:        make([]domain.MethodStepResponse, 0, len(methods)),
	}
	if recipe.Category != nil {
		detail.Category = recipe.Category.Name
	}
	if recipe.Course != nil {
		detail.Course = recipe.Course.Name
	}
	if recipe.Cuisine != nil {
		detail.Cuisine = recipe.Cuisine.Name
	}
	if recipe.Author != nil {
		detail.Author = recipe.Author.Name
	}

	for _, q := range quantities {
		line := domain.QuantityLineResponse{
			ID:     q.ID.String(),
			Amount: q.Amount,
		}
		if q.Ingredient != nil {
			line.Ingredient = q.Ingredient.Name
		}
		if q.Measurement != nil {
			line.Measurement = q.Measurement.Name
		}
		detail.Quantities = append(detail.Quantities, line)
	}
	for _, m := range methods {
		detail.Methods = append(detail.Methods, domain.MethodStepResponse{
			ID:          m.ID.String(),
			Description: m.Description,
		})
	}

	return detail, nil
}

// resolveFilter turns a raw id into a predicate. Ids that are empty,
// malformed, or mapped to no row contribute nothing.
func resolveFilter(id string, exists func(string) bool) *uuid.UUID {
	if id == "" {
		return nil
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	if !exists(id) {
		return nil
	}
	return &parsed
}

func (s *recipeService) GetRecipes(ctx context.Context, query domain.RecipeListQuery) ([]domain.RecipeResponse, int64, error) {
	filter := domain.RecipeFilter{
		CategoryID: resolveFilter(query.CategoryID, func(id string) bool {
			_, err := s.lookupRepository.GetCategoryByID(ctx, id)
			return err == nil
		}),
		CourseID: resolveFilter(query.CourseID, func(id string) bool {
			_, err := s.lookupRepository.GetCourseByID(ctx, id)
			return err == nil
		}),
		CuisineID: resolveFilter(query.CuisineID, func(id string) bool {
			_, err := s.lookupRepository.GetCuisineByID(ctx, id)
			return err == nil
		}),
		AuthorID: resolveFilter(query.AuthorID, func(id string) bool {
			_, err := s.lookupRepository.GetAuthorByID(ctx, id)
			return err == nil
		}),
	}

	recipes, count, err := s.recipeRepository.GetRecipes(ctx, filter, query.Page, domain.RecipeListPageSize)
	if err != nil {
		return nil, 0, err
	}
	return toRecipeResponses(recipes), count, nil
}

func (s *recipeService) GetMyRecipes(ctx context.Context, userID string, page int) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipesByUser(ctx, userID, page, domain.RecipeListPageSize)
	if err != nil {
		return nil, 0, err
	}
	return toRecipeResponses(recipes), count, nil
}

func (s *recipeService) SearchByName(ctx context.Context, name string, page int) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.SearchRecipesByName(ctx, name, page, domain.RecipeListPageSize)
	if err != nil {
		return nil, 0, err
	}
	return toRecipeResponses(recipes), count, nil
}

func (s *recipeService) SearchByIngredient(ctx context.Context, ingredient string, page int) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.SearchRecipesByIngredient(ctx, ingredient, page, domain.RecipeListPageSize)
	if err != nil {
		return nil, 0, err
	}
	return toRecipeResponses(recipes), count, nil
}

func (s *recipeService) ExportRecipes(ctx context.Context) ([]domain.RecipeExportRow, error) {
	recipes, err := s.recipeRepository.GetRecipesForExport(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.RecipeExportRow, 0, len(recipes))
	for _, recipe := range recipes {
		row := domain.RecipeExportRow{
			RecipeName:        recipe.Name,
			RecipeDescription: recipe.Description,
		}
		if recipe.Category != nil {
			row.Category = recipe.Category.Name
		}
		if recipe.Cuisine != nil {
			row.Cuisine = recipe.Cuisine.Name
		}
		if recipe.Course != nil {
			row.Course = recipe.Course.Name
		}
		if recipe.Author != nil {
			row.Author = recipe.Author.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *recipeService) SaveRecipe(ctx context.Context, recipeID string, userID string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if _, err := s.recipeRepository.GetSavedRecipeByUserAndRecipe(ctx, userID, recipeID); err == nil {
		return domain.ErrRecipeAlreadySaved
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	saved := &entities.SavedRecipe{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: recipeUUID,
	}
	if err := s.recipeRepository.CreateSavedRecipe(ctx, saved); err != nil {
		// The unique index backs up the pre-check under concurrent saves.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrRecipeAlreadySaved
		}
		return err
	}
	return nil
}

func (s *recipeService) UnsaveRecipe(ctx context.Context, savedID string, userID string) error {
	saved, err := s.recipeRepository.GetSavedRecipeByID(ctx, savedID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSavedRecipeNotFound
		}
		return err
	}

	if saved.UserID.String() != userID {
		return domain.ErrNotSavedRecipeOwner
	}

	return s.recipeRepository.DeleteSavedRecipe(ctx, savedID)
}

func (s *recipeService) GetSavedRecipes(ctx context.Context, userID string, page int) ([]domain.SavedRecipeResponse, int64, error) {
	saved, count, err := s.recipeRepository.GetSavedRecipes(ctx, userID, page, domain.RecipeListPageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.SavedRecipeResponse, 0, len(saved))
	for _, row := range saved {
		res := domain.SavedRecipeResponse{ID: row.ID.String()}
		if row.Recipe != nil {
			res.Recipe = toRecipeResponse(row.Recipe)
		}
		responses = append(responses, res)
	}
	return responses, count, nil
}
