package ingredient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipebox/entities"
)

type (
	IngredientRepository interface {
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)

		CreateQuantity(ctx context.Context, quantity *entities.Quantity, ingredientName string) error
		UpdateQuantity(ctx context.Context, quantity *entities.Quantity, ingredientName string) error
		DeleteQuantity(ctx context.Context, id string) error
		GetQuantityByID(ctx context.Context, id string) (*entities.Quantity, error)
		GetMeasurementByID(ctx context.Context, id string) (*entities.Measurement, error)

		CreateMethod(ctx context.Context, method *entities.Method) error
		UpdateMethod(ctx context.Context, method *entities.Method) error
		DeleteMethod(ctx context.Context, id string) error
		GetMethodByID(ctx context.Context, id string) (*entities.Method, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// findOrCreateIngredient reuses an ingredient matching the exact name and
// creates one otherwise. No case or whitespace normalization: "Flour" and
// "flour" stay separate rows.
func findOrCreateIngredient(tx *gorm.DB, name string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	err := tx.Where("name = ?", name).First(&ingredient).Error
	if err == nil {
		return &ingredient, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ingredient = entities.Ingredient{ID: uuid.New(), Name: name}
	if err := tx.Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// CreateQuantity runs the ingredient dedup and the quantity insert in one
// transaction so a failed insert never leaves an orphan ingredient.
func (r *ingredientRepository) CreateQuantity(ctx context.Context, quantity *entities.Quantity, ingredientName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ingredient, err := findOrCreateIngredient(tx, ingredientName)
		if err != nil {
			return err
		}
		quantity.IngredientID = ingredient.ID
		return tx.Create(quantity).Error
	})
}

func (r *ingredientRepository) UpdateQuantity(ctx context.Context, quantity *entities.Quantity, ingredientName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ingredient, err := findOrCreateIngredient(tx, ingredientName)
		if err != nil {
			return err
		}
		quantity.IngredientID = ingredient.ID
		quantity.Ingredient = nil
		return tx.Save(quantity).Error
	})
}

func (r *ingredientRepository) DeleteQuantity(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Quantity{}).Error
}

func (r *ingredientRepository) GetQuantityByID(ctx context.Context, id string) (*entities.Quantity, error) {
	var quantity entities.Quantity
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Preload("Measurement").
		Where("id = ?", id).
		First(&quantity).Error; err != nil {
		return nil, err
	}
	return &quantity, nil
}

func (r *ingredientRepository) GetMeasurementByID(ctx context.Context, id string) (*entities.Measurement, error) {
	var measurement entities.Measurement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&measurement).Error; err != nil {
		return nil, err
	}
	return &measurement, nil
}

func (r *ingredientRepository) CreateMethod(ctx context.Context, method *entities.Method) error {
	return r.db.WithContext(ctx).Create(method).Error
}

func (r *ingredientRepository) UpdateMethod(ctx context.Context, method *entities.Method) error {
	return r.db.WithContext(ctx).Save(method).Error
}

func (r *ingredientRepository) DeleteMethod(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Method{}).Error
}

func (r *ingredientRepository) GetMethodByID(ctx context.Context, id string) (*entities.Method, error) {
	var method entities.Method
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&method).Error; err != nil {
		return nil, err
	}
	return &method, nil
}
