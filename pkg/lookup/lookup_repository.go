package lookup

import (
	"context"

	"gorm.io/gorm"

	"recipebox/entities"
)

type (
	LookupRepository interface {
		CreateCategory(ctx context.Context, category *entities.Category) error
		UpdateCategory(ctx context.Context, category *entities.Category) error
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
		GetCategories(ctx context.Context) ([]*entities.Category, error)

		CreateCourse(ctx context.Context, course *entities.Course) error
		UpdateCourse(ctx context.Context, course *entities.Course) error
		GetCourseByID(ctx context.Context, id string) (*entities.Course, error)
		GetCourses(ctx context.Context) ([]*entities.Course, error)

		CreateCuisine(ctx context.Context, cuisine *entities.Cuisine) error
		UpdateCuisine(ctx context.Context, cuisine *entities.Cuisine) error
		GetCuisineByID(ctx context.Context, id string) (*entities.Cuisine, error)
		GetCuisines(ctx context.Context) ([]*entities.Cuisine, error)

		CreateCountry(ctx context.Context, country *entities.Country) error
		UpdateCountry(ctx context.Context, country *entities.Country) error
		GetCountryByID(ctx context.Context, id string) (*entities.Country, error)
		GetCountries(ctx context.Context) ([]*entities.Country, error)

		CreateMeasurement(ctx context.Context, measurement *entities.Measurement) error
		UpdateMeasurement(ctx context.Context, measurement *entities.Measurement) error
		GetMeasurementByID(ctx context.Context, id string) (*entities.Measurement, error)
		GetMeasurements(ctx context.Context) ([]*entities.Measurement, error)

		CreateAuthor(ctx context.Context, author *entities.Author) error
		UpdateAuthor(ctx context.Context, author *entities.Author) error
		GetAuthorByID(ctx context.Context, id string) (*entities.Author, error)
		GetAuthors(ctx context.Context) ([]*entities.Author, error)
	}

	lookupRepository struct {
		db *gorm.DB
	}
)

func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *lookupRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *lookupRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *lookupRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *lookupRepository) CreateCourse(ctx context.Context, course *entities.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *lookupRepository) UpdateCourse(ctx context.Context, course *entities.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *lookupRepository) GetCourseByID(ctx context.Context, id string) (*entities.Course, error) {
	var course entities.Course
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *lookupRepository) GetCourses(ctx context.Context) ([]*entities.Course, error) {
	var courses []*entities.Course
	if err := r.db.WithContext(ctx).Order("name asc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *lookupRepository) CreateCuisine(ctx context.Context, cuisine *entities.Cuisine) error {
	return r.db.WithContext(ctx).Create(cuisine).Error
}

func (r *lookupRepository) UpdateCuisine(ctx context.Context, cuisine *entities.Cuisine) error {
	return r.db.WithContext(ctx).Save(cuisine).Error
}

func (r *lookupRepository) GetCuisineByID(ctx context.Context, id string) (*entities.Cuisine, error) {
	var cuisine entities.Cuisine
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cuisine).Error; err != nil {
		return nil, err
	}
	return &cuisine, nil
}

func (r *lookupRepository) GetCuisines(ctx context.Context) ([]*entities.Cuisine, error) {
	var cuisines []*entities.Cuisine
	if err := r.db.WithContext(ctx).Order("name asc").Find(&cuisines).Error; err != nil {
		return nil, err
	}
	return cuisines, nil
}

func (r *lookupRepository) CreateCountry(ctx context.Context, country *entities.Country) error {
	return r.db.WithContext(ctx).Create(country).Error
}

func (r *lookupRepository) UpdateCountry(ctx context.Context, country *entities.Country) error {
	return r.db.WithContext(ctx).Save(country).Error
}

func (r *lookupRepository) GetCountryByID(ctx context.Context, id string) (*entities.Country, error) {
	var country entities.Country
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&country).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *lookupRepository) GetCountries(ctx context.Context) ([]*entities.Country, error) {
	var countries []*entities.Country
	if err := r.db.WithContext(ctx).Order("name asc").Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *lookupRepository) CreateMeasurement(ctx context.Context, measurement *entities.Measurement) error {
	return r.db.WithContext(ctx).Create(measurement).Error
}

func (r *lookupRepository) UpdateMeasurement(ctx context.Context, measurement *entities.Measurement) error {
	return r.db.WithContext(ctx).Save(measurement).Error
}

func (r *lookupRepository) GetMeasurementByID(ctx context.Context, id string) (*entities.Measurement, error) {
	var measurement entities.Measurement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&measurement).Error; err != nil {
		return nil, err
	}
	return &measurement, nil
}

func (r *lookupRepository) GetMeasurements(ctx context.Context) ([]*entities.Measurement, error) {
	var measurements []*entities.Measurement
	if err := r.db.WithContext(ctx).Order("name asc").Find(&measurements).Error; err != nil {
		return nil, err
	}
	return measurements, nil
}

// CreateAuthor verifies the country and inserts the author in one
// transaction so a failed attach never leaves a dangling row.
func (r *lookupRepository) CreateAuthor(ctx context.Context, author *entities.Author) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var country entities.Country
		if err := tx.Where("id = ?", author.CountryID).First(&country).Error; err != nil {
			return err
		}
		return tx.Create(author).Error
	})
}

func (r *lookupRepository) UpdateAuthor(ctx context.Context, author *entities.Author) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var country entities.Country
		if err := tx.Where("id = ?", author.CountryID).First(&country).Error; err != nil {
			return err
		}
		return tx.Save(author).Error
	})
}

func (r *lookupRepository) GetAuthorByID(ctx context.Context, id string) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.WithContext(ctx).Preload("Country").Where("id = ?", id).First(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *lookupRepository) GetAuthors(ctx context.Context) ([]*entities.Author, error) {
	var authors []*entities.Author
	if err := r.db.WithContext(ctx).Preload("Country").Order("name asc").Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}
