package ingredient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
)

type (
	IngredientService interface {
		AddQuantity(ctx context.Context, req domain.AddQuantityRequest, recipeID, userID string) (domain.QuantityLineResponse, error)
		UpdateQuantity(ctx context.Context, req domain.UpdateQuantityRequest, quantityID, userID string) (domain.QuantityLineResponse, error)
		DeleteQuantity(ctx context.Context, quantityID, userID string) error

		AddMethod(ctx context.Context, req domain.AddMethodRequest, recipeID, userID string) (domain.MethodStepResponse, error)
		UpdateMethod(ctx context.Context, req domain.UpdateMethodRequest, methodID, userID string) (domain.MethodStepResponse, error)
		DeleteMethod(ctx context.Context, methodID, userID string) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

// ownedRecipe loads the recipe and verifies the caller owns it. Every
// quantity and method mutation goes through here because those rows carry
// no owner of their own.
func (s *ingredientService) ownedRecipe(ctx context.Context, recipeID, userID string) (*entities.Recipe, error) {
	recipe, err := s.ingredientRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if err := domain.AssertOwner(recipe.UserID, userID); err != nil {
		return nil, err
	}
	return recipe, nil
}

func toQuantityLineResponse(quantity *entities.Quantity) domain.QuantityLineResponse {
	res := domain.QuantityLineResponse{
		ID:     quantity.ID.String(),
		Amount: quantity.Amount,
	}
	if quantity.Ingredient != nil {
		res.Ingredient = quantity.Ingredient.Name
	}
	if quantity.Measurement != nil {
		res.Measurement = quantity.Measurement.Name
	}
	return res
}

func (s *ingredientService) AddQuantity(ctx context.Context, req domain.AddQuantityRequest, recipeID, userID string) (domain.QuantityLineResponse, error) {
	recipe, err := s.ownedRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.QuantityLineResponse{}, err
	}

	measurementID, err := uuid.Parse(req.MeasurementID)
	if err != nil {
		return domain.QuantityLineResponse{}, domain.ErrParseUUID
	}
	if _, err := s.ingredientRepository.GetMeasurementByID(ctx, measurementID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QuantityLineResponse{}, domain.ErrMeasurementNotFound
		}
		return domain.QuantityLineResponse{}, err
	}

	quantity := entities.Quantity{
		ID:            uuid.New(),
		Amount:        req.Amount,
		RecipeID:      recipe.ID,
		MeasurementID: measurementID,
	}
	if err := s.ingredientRepository.CreateQuantity(ctx, &quantity, req.Ingredient); err != nil {
		return domain.QuantityLineResponse{}, err
	}

	created, err := s.ingredientRepository.GetQuantityByID(ctx, quantity.ID.String())
	if err != nil {
		return domain.QuantityLineResponse{}, err
	}
	return toQuantityLineResponse(created), nil
}

func (s *ingredientService) UpdateQuantity(ctx context.Context, req domain.UpdateQuantityRequest, quantityID, userID string) (domain.QuantityLineResponse, error) {
	quantity, err := s.ingredientRepository.GetQuantityByID(ctx, quantityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QuantityLineResponse{}, domain.ErrQuantityNotFound
		}
		return domain.QuantityLineResponse{}, err
	}
	if _, err := s.ownedRecipe(ctx, quantity.RecipeID.String(), userID); err != nil {
		return domain.QuantityLineResponse{}, err
	}

	measurementID, err := uuid.Parse(req.MeasurementID)
	if err != nil {
		return domain.QuantityLineResponse{}, domain.ErrParseUUID
	}
	if _, err := s.ingredientRepository.GetMeasurementByID(ctx, measurementID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QuantityLineResponse{}, domain.ErrMeasurementNotFound
		}
		return domain.QuantityLineResponse{}, err
	}

	quantity.Amount = req.Amount
	quantity.MeasurementID = measurementID
	quantity.Measurement = nil
	if err := s.ingredientRepository.UpdateQuantity(ctx, quantity, req.Ingredient); err != nil {
		return domain.QuantityLineResponse{}, err
	}

	updated, err := s.ingredientRepository.GetQuantityByID(ctx, quantity.ID.String())
	if err != nil {
		return domain.QuantityLineResponse{}, err
	}
	return toQuantityLineResponse(updated), nil
}

func (s *ingredientService) DeleteQuantity(ctx context.Context, quantityID, userID string) error {
	quantity, err := s.ingredientRepository.GetQuantityByID(ctx, quantityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrQuantityNotFound
		}
		return err
	}
	if _, err := s.ownedRecipe(ctx, quantity.RecipeID.String(), userID); err != nil {
		return err
	}
	return s.ingredientRepository.DeleteQuantity(ctx, quantityID)
}

func (s *ingredientService) AddMethod(ctx context.Context, req domain.AddMethodRequest, recipeID, userID string) (domain.MethodStepResponse, error) {
	recipe, err := s.ownedRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.MethodStepResponse{}, err
	}

	method := entities.Method{
		ID:          uuid.New(),
		RecipeID:    recipe.ID,
		Description: req.Description,
	}
	if err := s.ingredientRepository.CreateMethod(ctx, &method); err != nil {
		return domain.MethodStepResponse{}, err
	}
	return domain.MethodStepResponse{ID: method.ID.String(), Description: method.Description}, nil
}

func (s *ingredientService) UpdateMethod(ctx context.Context, req domain.UpdateMethodRequest, methodID, userID string) (domain.MethodStepResponse, error) {
	method, err := s.ingredientRepository.GetMethodByID(ctx, methodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MethodStepResponse{}, domain.ErrMethodNotFound
		}
		return domain.MethodStepResponse{}, err
	}
	if _, err := s.ownedRecipe(ctx, method.RecipeID.String(), userID); err != nil {
		return domain.MethodStepResponse{}, err
	}

	method.Description = req.Description
	if err := s.ingredientRepository.UpdateMethod(ctx, method); err != nil {
		return domain.MethodStepResponse{}, err
	}
	return domain.MethodStepResponse{ID: method.ID.String(), Description: method.Description}, nil
}

func (s *ingredientService) DeleteMethod(ctx context.Context, methodID, userID string) error {
	method, err := s.ingredientRepository.GetMethodByID(ctx, methodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMethodNotFound
		}
		return err
	}
	if _, err := s.ownedRecipe(ctx, method.RecipeID.String(), userID); err != nil {
		return err
	}
	return s.ingredientRepository.DeleteMethod(ctx, methodID)
}
