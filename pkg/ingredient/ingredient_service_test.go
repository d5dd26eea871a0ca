package ingredient

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:ingredient_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.Course{},
		&entities.Cuisine{},
		&entities.Country{},
		&entities.Measurement{},
		&entities.Author{},
		&entities.Recipe{},
		&entities.Ingredient{},
		&entities.Quantity{},
		&entities.Method{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type fixture struct {
	recipeID      string
	ownerID       string
	measurementID string
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	owner := uuid.New()
	category := entities.Category{ID: uuid.New(), Name: "Baking"}
	course := entities.Course{ID: uuid.New(), Name: "Dessert"}
	cuisine := entities.Cuisine{ID: uuid.New(), Name: "French"}
	country := entities.Country{ID: uuid.New(), Name: "France"}
	author := entities.Author{ID: uuid.New(), Name: "Julia", CountryID: country.ID}
	measurement := entities.Measurement{ID: uuid.New(), Name: "cups"}
	recipe := entities.Recipe{
		ID:          uuid.New(),
		UserID:      &owner,
		Name:        "Clafoutis",
		Description: "bake it",
		Servings:    6,
		CategoryID:  category.ID,
		CourseID:    course.ID,
		CuisineID:   cuisine.ID,
		AuthorID:    author.ID,
	}

	for _, row := range []any{&category, &course, &cuisine, &country, &author, &measurement, &recipe} {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed fixture: %v", err)
		}
	}

	return fixture{
		recipeID:      recipe.ID.String(),
		ownerID:       owner.String(),
		measurementID: measurement.ID.String(),
	}
}

func newTestService(t *testing.T) (IngredientService, *gorm.DB, fixture) {
	t.Helper()
	db := newTestDB(t)
	f := seedFixture(t, db)
	return NewIngredientService(NewIngredientRepository(db)), db, f
}

func TestAddQuantityReusesIngredientByExactName(t *testing.T) {
	service, db, f := newTestService(t)
	ctx := context.Background()

	first, err := service.AddQuantity(ctx, domain.AddQuantityRequest{
		Amount:        2,
		Ingredient:    "Flour",
		MeasurementID: f.measurementID,
	}, f.recipeID, f.ownerID)
	if err != nil {
		t.Fatalf("add quantity: %v", err)
	}
	if first.Ingredient != "Flour" || first.Measurement != "cups" || first.Amount != 2 {
		t.Fatalf("unexpected quantity line: %+v", first)
	}

	if _, err := service.AddQuantity(ctx, domain.AddQuantityRequest{
		Amount:        1,
		Ingredient:    "Flour",
		MeasurementID: f.measurementID,
	}, f.recipeID, f.ownerID); err != nil {
		t.Fatalf("add second quantity: %v", err)
	}

	// a different casing is a different ingredient
	if _, err := service.AddQuantity(ctx, domain.AddQuantityRequest{
		Amount:        1,
		Ingredient:    "flour",
		MeasurementID: f.measurementID,
	}, f.recipeID, f.ownerID); err != nil {
		t.Fatalf("add third quantity: %v", err)
	}

	var count int64
	if err := db.Model(&entities.Ingredient{}).Where("name = ?", "Flour").Count(&count).Error; err != nil {
		t.Fatalf("count ingredients: %v", err)
	}
	if count != 1 {
		t.Fatalf("exact name should be reused, got %d rows", count)
	}
	if err := db.Model(&entities.Ingredient{}).Count(&count).Error; err != nil {
		t.Fatalf("count ingredients: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 ingredients (Flour, flour), got %d", count)
	}
}

func TestQuantityMutationsRequireRecipeOwner(t *testing.T) {
	service, _, f := newTestService(t)
	ctx := context.Background()
	stranger := uuid.NewString()

	req := domain.AddQuantityRequest{Amount: 1, Ingredient: "sugar", MeasurementID: f.measurementID}

	if _, err := service.AddQuantity(ctx, req, f.recipeID, stranger); !errors.Is(err, domain.ErrNotRecipeOwner) {
		t.Fatalf("expected ErrNotRecipeOwner, got %v", err)
	}
	if _, err := service.AddQuantity(ctx, req, uuid.NewString(), f.ownerID); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}

	line, err := service.AddQuantity(ctx, req, f.recipeID, f.ownerID)
	if err != nil {
		t.Fatalf("add quantity: %v", err)
	}

	update := domain.UpdateQuantityRequest{Amount: 3, Ingredient: "sugar", MeasurementID: f.measurementID}
	if _, err := service.UpdateQuantity(ctx, update, line.ID, stranger); !errors.Is(err, domain.ErrNotRecipeOwner) {
		t.Fatalf("expected ErrNotRecipeOwner on update, got %v", err)
	}
	if err := service.DeleteQuantity(ctx, line.ID, stranger); !errors.Is(err, domain.ErrNotRecipeOwner) {
		t.Fatalf("expected ErrNotRecipeOwner on delete, got %v", err)
	}

	updated, err := service.UpdateQuantity(ctx, update, line.ID, f.ownerID)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if updated.Amount != 3 {
		t.Fatalf("amount not updated: %+v", updated)
	}

	if err := service.DeleteQuantity(ctx, line.ID, f.ownerID); err != nil {
		t.Fatalf("delete quantity: %v", err)
	}
	if err := service.DeleteQuantity(ctx, line.ID, f.ownerID); !errors.Is(err, domain.ErrQuantityNotFound) {
		t.Fatalf("expected ErrQuantityNotFound, got %v", err)
	}
}

func TestUpdateQuantityCanRenameIngredient(t *testing.T) {
	service, db, f := newTestService(t)
	ctx := context.Background()

	line, err := service.AddQuantity(ctx, domain.AddQuantityRequest{
		Amount:        1,
		Ingredient:    "butter",
		MeasurementID: f.measurementID,
	}, f.recipeID, f.ownerID)
	if err != nil {
		t.Fatalf("add quantity: %v", err)
	}

	updated, err := service.UpdateQuantity(ctx, domain.UpdateQuantityRequest{
		Amount:        1,
		Ingredient:    "salted butter",
		MeasurementID: f.measurementID,
	}, line.ID, f.ownerID)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if updated.Ingredient != "salted butter" {
		t.Fatalf("ingredient not renamed: %+v", updated)
	}

	// the original ingredient row stays for other recipes to reuse
	var count int64
	if err := db.Model(&entities.Ingredient{}).Count(&count).Error; err != nil {
		t.Fatalf("count ingredients: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected both ingredient rows, got %d", count)
	}
}

func TestAddQuantityUnknownMeasurement(t *testing.T) {
	service, _, f := newTestService(t)
	ctx := context.Background()

	if _, err := service.AddQuantity(ctx, domain.AddQuantityRequest{
		Amount:        1,
		Ingredient:    "milk",
		MeasurementID: uuid.NewString(),
	}, f.recipeID, f.ownerID); !errors.Is(err, domain.ErrMeasurementNotFound) {
		t.Fatalf("expected ErrMeasurementNotFound, got %v", err)
	}
}

func TestMethodLifecycle(t *testing.T) {
	service, _, f := newTestService(t)
	ctx := context.Background()
	stranger := uuid.NewString()

	if _, err := service.AddMethod(ctx, domain.AddMethodRequest{Description: "whisk"}, f.recipeID, stranger); !errors.Is(err, domain.ErrNotRecipeOwner) {
		t.Fatalf("expected ErrNotRecipeOwner, got %v", err)
	}

	step, err := service.AddMethod(ctx, domain.AddMethodRequest{Description: "whisk"}, f.recipeID, f.ownerID)
	if err != nil {
		t.Fatalf("add method: %v", err)
	}

	if _, err := service.UpdateMethod(ctx, domain.UpdateMethodRequest{Description: "whisk well"}, step.ID, stranger); !errors.Is(err, domain.ErrNotRecipeOwner) {
		t.Fatalf("expected ErrNotRecipeOwner on update, got %v", err)
	}

	updated, err := service.UpdateMethod(ctx, domain.UpdateMethodRequest{Description: "whisk well"}, step.ID, f.ownerID)
	if err != nil {
		t.Fatalf("update method: %v", err)
	}
	if updated.Description != "whisk well" {
		t.Fatalf("description not updated: %+v", updated)
	}

	if err := service.DeleteMethod(ctx, step.ID, f.ownerID); err != nil {
		t.Fatalf("delete method: %v", err)
	}
	if err := service.DeleteMethod(ctx, step.ID, f.ownerID); !errors.Is(err, domain.ErrMethodNotFound) {
		t.Fatalf("expected ErrMethodNotFound, got %v", err)
	}
}
