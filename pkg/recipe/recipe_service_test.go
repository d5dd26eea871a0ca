package recipe

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
	"recipebox/pkg/lookup"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:recipe_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
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
		&entities.SavedRecipe{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// fakeS3 records uploads and deletes instead of talking to object storage.
type fakeS3 struct {
	uploadErr error
	uploads   []string
	deletes   []string
}

func (f *fakeS3) UploadFile(fileName string, file *multipart.FileHeader, path string, allowedTypes ...string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	key := path + "/" + fileName
	f.uploads = append(f.uploads, key)
	return key, nil
}

func (f *fakeS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, objectKey)
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	f.deletes = append(f.deletes, objectKey)
	return nil
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	const prefix = "https://bucket.test/"
	if len(link) > len(prefix) && link[:len(prefix)] == prefix {
		return link[len(prefix):]
	}
	return ""
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.test/" + objectKey
}

type fixture struct {
	category    entities.Category
	course      entities.Course
	cuisine     entities.Cuisine
	author      entities.Author
	measurement entities.Measurement
	userID      string
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	user := entities.User{ID: uuid.New(), Username: "cook", Email: "cook@example.com", Password: "x", Role: "user"}
	country := entities.Country{ID: uuid.New(), Name: "Italy"}
	f := fixture{
		category:    entities.Category{ID: uuid.New(), Name: "Vegetarian"},
		course:      entities.Course{ID: uuid.New(), Name: "Main"},
		cuisine:     entities.Cuisine{ID: uuid.New(), Name: "Italian"},
		measurement: entities.Measurement{ID: uuid.New(), Name: "grams"},
		userID:      user.ID.String(),
	}
	f.author = entities.Author{ID: uuid.New(), Name: "Nonna", CountryID: country.ID}

	for _, row := range []any{&user, &country, &f.category, &f.course, &f.cuisine, &f.measurement, &f.author} {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed fixture: %v", err)
		}
	}
	return f
}

func newTestService(t *testing.T) (RecipeService, *gorm.DB, *fakeS3, fixture) {
	t.Helper()
	db := newTestDB(t)
	f := seedFixture(t, db)
	s3 := &fakeS3{}
	service := NewRecipeService(NewRecipeRepository(db), lookup.NewLookupRepository(db), s3)
	return service, db, s3, f
}

func (f fixture) createRequest(name string) domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Name:            name,
		Description:     "a test recipe",
		PrepTimeMinutes: 10,
		CookTimeMinutes: 20,
		Servings:        4,
		CategoryID:      f.category.ID.String(),
		CourseID:        f.course.ID.String(),
		CuisineID:       f.cuisine.ID.String(),
		AuthorID:        f.author.ID.String(),
	}
}

func (f fixture) updateRequest(name string) domain.UpdateRecipeRequest {
	return domain.UpdateRecipeRequest{
		Name:            name,
		Description:     "a test recipe",
		PrepTimeMinutes: 10,
		CookTimeMinutes: 20,
		Servings:        4,
		CategoryID:      f.category.ID.String(),
		CourseID:        f.course.ID.String(),
		CuisineID:       f.cuisine.ID.String(),
		AuthorID:        f.author.ID.String(),
	}
}

func TestCreateRecipeAndGetDetail(t *testing.T) {
	service, db, _, f := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, f.createRequest("Lasagna"), f.userID)
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	ingredientRow := entities.Ingredient{ID: uuid.New(), Name: "flour"}
	if err := db.Create(&ingredientRow).Error; err != nil {
		t.Fatalf("seed ingredient: %v", err)
	}
	recipeID := uuid.MustParse(created.ID)
	quantity := entities.Quantity{
		ID:            uuid.New(),
		Amount:        250,
		RecipeID:      recipeID,
		IngredientID:  ingredientRow.ID,
		MeasurementID: f.measurement.ID,
	}
	method := entities.Method{ID: uuid.New(), RecipeID: recipeID, Description: "mix everything"}
	if err := db.Create(&quantity).Error; err != nil {
		t.Fatalf("seed quantity: %v", err)
	}
	if err := db.Create(&method).Error; err != nil {
		t.Fatalf("seed method: %v", err)
	}

	detail, err := service.GetRecipeDetail(ctx, created.ID)
	if err != nil {
		t.Fatalf("get detail: %v", err)
	}
	if detail.Name != "Lasagna" || detail.UserID != f.userID {
		t.Fatalf("unexpected detail header: %+v", detail.RecipeResponse)
	}
	if detail.PrepTimeMinutes != 10 || detail.CookTimeMinutes != 20 || detail.Servings != 4 {
		t.Fatalf("unexpected timing fields: %+v", detail.RecipeResponse)
	}
	if detail.Category != "Vegetarian" || detail.Course != "Main" || detail.Cuisine != "Italian" || detail.Author != "Nonna" {
		t.Fatalf("unexpected lookup names: %+v", detail)
	}
	if len(detail.Quantities) != 1 || detail.Quantities[0].Ingredient != "flour" || detail.Quantities[0].Measurement != "grams" || detail.Quantities[0].Amount != 250 {
		t.Fatalf("unexpected quantities: %+v", detail.Quantities)
	}
	if len(detail.Methods) != 1 || detail.Methods[0].Description != "mix everything" {
		t.Fatalf("unexpected methods: %+v", detail.Methods)
	}
}

func TestCreateRecipeRejectsDuplicateName(t *testing.T) {
	service, _, _, f := newTestService(t)
	ctx := context.Background()

	if _, err := service.CreateRecipe(ctx, f.createRequest("Carbonara"), f.userID); err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if _, err := service.CreateRecipe(ctx, f.createRequest("Carbonara"), f.userID); !errors.Is(err, domain.ErrRecipeNameTaken) {
		t.Fatalf("expected ErrRecipeNameTaken, got %v", err)
	}
}

func TestCreateRecipeRejectsUnknownLookup(t *testing.T) {
	service, _, _, f := newTestService(t)
	ctx := context.Background()

	req := f.createRequest("Minestrone")
	req.CategoryID = uuid.NewString()
	if _, err := service.CreateRecipe(ctx, req, f.userID); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestUpdateRecipeRequiresOwnership(t *testing.T) {
	service, _, _, f := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, f.createRequest("Risotto"), f.userID)
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	stranger := uuid.NewString()
	if err := service.UpdateRecipe(ctx, created.ID, f.updateRequest("Hijacked"), stranger); !errors.Is(err, domain.ErrNotRecipeOwner) {
		t.Fatalf("expected ErrNotRecipeOwner, got %v", err)
	}
	if err := service.DeleteRecipe(ctx, created.ID, stranger); !errors.Is(err, domain.ErrNotRecipeOwner) {
		t.Fatalf("expected ErrNotRecipeOwner on delete, got %v", err)
	}

	detail, err := service.GetRecipeDetail(ctx, created.ID)
	if err != nil {
		t.Fatalf("recipe should survive denied mutations: %v", err)
	}
	if detail.Name != "Risotto" {
		t.Fatalf("recipe changed despite denial: %q", detail.Name)
	}
}

func TestUpdateRecipePreservesImageWithoutNewUpload(t *testing.T) {
	service, db, _, f := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, f.createRequest("Focaccia"), f.userID)
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if err := db.Model(&entities.Recipe{}).Where("id = ?", created.ID).
		Updates(map[string]any{"image_filename": "focaccia.png", "image_url": "https://bucket.test/recipes/focaccia.png"}).Error; err != nil {
		t.Fatalf("set image: %v", err)
	}

	if err := service.UpdateRecipe(ctx, created.ID, f.updateRequest("Focaccia Genovese"), f.userID); err != nil {
		t.Fatalf("update recipe: %v", err)
	}

	var stored entities.Recipe
	if err := db.Where("id = ?", created.ID).First(&stored).Error; err != nil {
		t.Fatalf("load recipe: %v", err)
	}
	if stored.Name != "Focaccia Genovese" {
		t.Fatalf("name not updated: %q", stored.Name)
	}
	if stored.ImageURL != "https://bucket.test/recipes/focaccia.png" || stored.ImageFilename != "focaccia.png" {
		t.Fatalf("image should be preserved, got %q / %q", stored.ImageFilename, stored.ImageURL)
	}
}

func TestCreateRecipeSurvivesUploadFailure(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	s3 := &fakeS3{uploadErr: errors.New("bucket unavailable")}
	service := NewRecipeService(NewRecipeRepository(db), lookup.NewLookupRepository(db), s3)
	ctx := context.Background()

	req := f.createRequest("Panzanella")
	req.Image = &multipart.FileHeader{Filename: "panzanella.png"}

	created, err := service.CreateRecipe(ctx, req, f.userID)
	if err != nil {
		t.Fatalf("create should succeed without the image: %v", err)
	}
	if created.ImageURL != "" {
		t.Fatalf("expected no image url after failed upload, got %q", created.ImageURL)
	}
}

func TestDeleteRecipeCascades(t *testing.T) {
	service, db, s3, f := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, f.createRequest("Tiramisu"), f.userID)
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	recipeID := uuid.MustParse(created.ID)

	ingredientRow := entities.Ingredient{ID: uuid.New(), Name: "mascarpone"}
	if err := db.Create(&ingredientRow).Error; err != nil {
		t.Fatalf("seed ingredient: %v", err)
	}
	rows := []any{
		&entities.Quantity{ID: uuid.New(), Amount: 500, RecipeID: recipeID, IngredientID: ingredientRow.ID, MeasurementID: f.measurement.ID},
		&entities.Method{ID: uuid.New(), RecipeID: recipeID, Description: "layer it"},
		&entities.SavedRecipe{ID: uuid.New(), UserID: uuid.MustParse(f.userID), RecipeID: recipeID},
	}
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed child row: %v", err)
		}
	}
	if err := db.Model(&entities.Recipe{}).Where("id = ?", created.ID).
		Update("image_url", "https://bucket.test/recipes/tiramisu.png").Error; err != nil {
		t.Fatalf("set image: %v", err)
	}

	if err := service.DeleteRecipe(ctx, created.ID, f.userID); err != nil {
		t.Fatalf("delete recipe: %v", err)
	}

	for name, model := range map[string]any{
		"recipes":       &entities.Recipe{},
		"quantities":    &entities.Quantity{},
		"methods":       &entities.Method{},
		"saved_recipes": &entities.SavedRecipe{},
	} {
		var count int64
		column := "recipe_id"
		if name == "recipes" {
			column = "id"
		}
		if err := db.Model(model).Where(column+" = ?", created.ID).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		if count != 0 {
			t.Fatalf("expected no %s rows left, got %d", name, count)
		}
	}

	if len(s3.deletes) != 1 || s3.deletes[0] != "recipes/tiramisu.png" {
		t.Fatalf("expected stored image to be deleted, got %v", s3.deletes)
	}
}

func TestGetRecipesAppliesFiltersTogether(t *testing.T) {
	service, db, _, f := newTestService(t)
	ctx := context.Background()

	otherCategory := entities.Category{ID: uuid.New(), Name: "Dessert"}
	if err := db.Create(&otherCategory).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	if _, err := service.CreateRecipe(ctx, f.createRequest("Pasta al Forno"), f.userID); err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	dessert := f.createRequest("Panna Cotta")
	dessert.CategoryID = otherCategory.ID.String()
	if _, err := service.CreateRecipe(ctx, dessert, f.userID); err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	res, total, err := service.GetRecipes(ctx, domain.RecipeListQuery{CategoryID: f.category.ID.String(), Page: 1})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if total != 1 || len(res) != 1 || res[0].Name != "Pasta al Forno" {
		t.Fatalf("category filter failed: total=%d res=%+v", total, res)
	}

	// both filters must hold at once
	res, total, err = service.GetRecipes(ctx, domain.RecipeListQuery{
		CategoryID: otherCategory.ID.String(),
		CuisineID:  f.cuisine.ID.String(),
		Page:       1,
	})
	if err != nil {
		t.Fatalf("combined filter: %v", err)
	}
	if total != 1 || res[0].Name != "Panna Cotta" {
		t.Fatalf("combined filter failed: total=%d res=%+v", total, res)
	}

	// a filter that maps to no row is dropped rather than matching nothing
	_, total, err = service.GetRecipes(ctx, domain.RecipeListQuery{CategoryID: uuid.NewString(), Page: 1})
	if err != nil {
		t.Fatalf("unknown filter: %v", err)
	}
	if total != 2 {
		t.Fatalf("unknown filter should be ignored, total=%d", total)
	}

	_, total, err = service.GetRecipes(ctx, domain.RecipeListQuery{CategoryID: "not-a-uuid", Page: 1})
	if err != nil {
		t.Fatalf("malformed filter: %v", err)
	}
	if total != 2 {
		t.Fatalf("malformed filter should be ignored, total=%d", total)
	}
}

func TestGetRecipesPaginates(t *testing.T) {
	service, _, _, f := newTestService(t)
	ctx := context.Background()

	for i := 0; i < domain.RecipeListPageSize+3; i++ {
		if _, err := service.CreateRecipe(ctx, f.createRequest(fmt.Sprintf("Recipe %02d", i)), f.userID); err != nil {
			t.Fatalf("create recipe %d: %v", i, err)
		}
	}

	first, total, err := service.GetRecipes(ctx, domain.RecipeListQuery{Page: 1})
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if total != int64(domain.RecipeListPageSize+3) || len(first) != domain.RecipeListPageSize {
		t.Fatalf("page 1: total=%d len=%d", total, len(first))
	}

	second, _, err := service.GetRecipes(ctx, domain.RecipeListQuery{Page: 2})
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(second) != 3 {
		t.Fatalf("page 2: len=%d", len(second))
	}
}

func TestSearchByNameMatchesSubstringCaseInsensitive(t *testing.T) {
	service, _, _, f := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Spaghetti Bolognese", "Crispy Salad", "Apple Pie"} {
		if _, err := service.CreateRecipe(ctx, f.createRequest(name), f.userID); err != nil {
			t.Fatalf("create recipe: %v", err)
		}
	}

	res, total, err := service.SearchByName(ctx, "sP", 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 2 || len(res) != 2 {
		t.Fatalf("expected 2 matches for 'sP', got total=%d res=%+v", total, res)
	}

	_, total, err = service.SearchByName(ctx, "zucchini", 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected no matches, got %d", total)
	}
}

func TestSearchByIngredientReturnsDistinctRecipes(t *testing.T) {
	service, db, _, f := newTestService(t)
	ctx := context.Background()

	withTomato, err := service.CreateRecipe(ctx, f.createRequest("Bruschetta"), f.userID)
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if _, err := service.CreateRecipe(ctx, f.createRequest("Plain Bread"), f.userID); err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	tomato := entities.Ingredient{ID: uuid.New(), Name: "tomato"}
	cherryTomato := entities.Ingredient{ID: uuid.New(), Name: "cherry tomato"}
	for _, row := range []any{&tomato, &cherryTomato} {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed ingredient: %v", err)
		}
	}
	recipeID := uuid.MustParse(withTomato.ID)
	// two tomato lines on the same recipe: the search must not double it
	for _, ing := range []uuid.UUID{tomato.ID, cherryTomato.ID} {
		q := entities.Quantity{ID: uuid.New(), Amount: 1, RecipeID: recipeID, IngredientID: ing, MeasurementID: f.measurement.ID}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("seed quantity: %v", err)
		}
	}

	res, total, err := service.SearchByIngredient(ctx, "tomato", 1)
	if err != nil {
		t.Fatalf("ingredient search: %v", err)
	}
	if total != 1 || len(res) != 1 || res[0].ID != withTomato.ID {
		t.Fatalf("expected one distinct match, got total=%d res=%+v", total, res)
	}
}

func TestSaveAndUnsaveRecipe(t *testing.T) {
	service, db, _, f := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, f.createRequest("Gnocchi"), f.userID)
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	if err := service.SaveRecipe(ctx, created.ID, f.userID); err != nil {
		t.Fatalf("save recipe: %v", err)
	}
	if err := service.SaveRecipe(ctx, created.ID, f.userID); !errors.Is(err, domain.ErrRecipeAlreadySaved) {
		t.Fatalf("expected ErrRecipeAlreadySaved, got %v", err)
	}

	var count int64
	if err := db.Model(&entities.SavedRecipe{}).Where("user_id = ?", f.userID).Count(&count).Error; err != nil {
		t.Fatalf("count saved: %v", err)
	}
	if count != 1 {
		t.Fatalf("duplicate save created a row, count=%d", count)
	}

	if err := service.SaveRecipe(ctx, uuid.NewString(), f.userID); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}

	saved, total, err := service.GetSavedRecipes(ctx, f.userID, 1)
	if err != nil {
		t.Fatalf("list saved: %v", err)
	}
	if total != 1 || len(saved) != 1 || saved[0].Recipe.Name != "Gnocchi" {
		t.Fatalf("unexpected saved list: total=%d %+v", total, saved)
	}

	if err := service.UnsaveRecipe(ctx, saved[0].ID, uuid.NewString()); !errors.Is(err, domain.ErrNotSavedRecipeOwner) {
		t.Fatalf("expected ErrNotSavedRecipeOwner, got %v", err)
	}
	if err := service.UnsaveRecipe(ctx, saved[0].ID, f.userID); err != nil {
		t.Fatalf("unsave: %v", err)
	}
	if err := service.UnsaveRecipe(ctx, saved[0].ID, f.userID); !errors.Is(err, domain.ErrSavedRecipeNotFound) {
		t.Fatalf("expected ErrSavedRecipeNotFound, got %v", err)
	}
}

func TestExportRecipes(t *testing.T) {
	service, _, _, f := newTestService(t)
	ctx := context.Background()

	if _, err := service.CreateRecipe(ctx, f.createRequest("Polenta"), f.userID); err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	rows, err := service.ExportRecipes(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	row := rows[0]
	if row.RecipeName != "Polenta" || row.Category != "Vegetarian" || row.Cuisine != "Italian" || row.Course != "Main" || row.Author != "Nonna" {
		t.Fatalf("unexpected export row: %+v", row)
	}
}
