package lookup

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
)

type (
	LookupService interface {
		GetStaticData(ctx context.Context) (domain.StaticDataResponse, error)

		AddCategory(ctx context.Context, req domain.AddLookupRequest) (domain.LookupResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateLookupRequest) error
		AddCourse(ctx context.Context, req domain.AddLookupRequest) (domain.LookupResponse, error)
		UpdateCourse(ctx context.Context, id string, req domain.UpdateLookupRequest) error
		AddCuisine(ctx context.Context, req domain.AddLookupRequest) (domain.LookupResponse, error)
		UpdateCuisine(ctx context.Context, id string, req domain.UpdateLookupRequest) error
		AddCountry(ctx context.Context, req domain.AddLookupRequest) (domain.LookupResponse, error)
		UpdateCountry(ctx context.Context, id string, req domain.UpdateLookupRequest) error
		AddMeasurement(ctx context.Context, req domain.AddLookupRequest) (domain.LookupResponse, error)
		UpdateMeasurement(ctx context.Context, id string, req domain.UpdateLookupRequest) error

		AddAuthor(ctx context.Context, req domain.AddAuthorRequest) (domain.AuthorResponse, error)
		UpdateAuthor(ctx context.Context, id string, req domain.UpdateAuthorRequest) error
	}

	lookupService struct {
		lookupRepository LookupRepository
	}
)

func NewLookupService(lookupRepository LookupRepository) LookupService {
	return &lookupService{lookupRepository: lookupRepository}
}

func translateLookupErr(err error, notFound error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrLookupNameTaken
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	default:
		return err
	}
}

func (s *lookupService) GetStaticData(ctx context.Context) (domain.StaticDataResponse, error) {
	categories, err := s.lookupRepository.GetCategories(ctx)
	if err != nil {
		return domain.StaticDataResponse{}, err
	}
	courses, err := s.lookupRepository.GetCourses(ctx)
	if err != nil {
		return domain.StaticDataResponse{}, err
	}
	cuisines, err := s.lookupRepository.GetCuisines(ctx)
	if err != nil {
		return domain.StaticDataResponse{}, err
	}
	countries, err := s.lookupRepository.GetCountries(ctx)
	if err != nil {
		return domain.StaticDataResponse{}, err
	}
	authors, err := s.lookupRepository.GetAuthors(ctx)
	if err != nil {
		return domain.StaticDataResponse{}, err
	}
	measurements, err := s.lookupRepository.GetMeasurements(ctx)
	if err != nil {
		return domain.StaticDataResponse{}, err
	}

	res := domain.StaticDataResponse{
		Categories:   make([]domain.LookupResponse, 0, len(categories)),
		Courses:      make([]domain.LookupResponse, 0, len(courses)),
		Cuisines:     make([]domain.LookupResponse, 0, len(cuisines)),
		Countries:    make([]domain.LookupResponse, 0, len(countries)),
		Authors:      make([]domain.AuthorResponse, 0, len(authors)),
		Measurements: make([]domain.LookupResponse, 0, len(measurements)),
	}
	for _, c := range categories {
		res.Categories = append(res.Categories, domain.LookupResponse{ID: c.ID.String(), Name: c.Name})
	}
	for _, c := range courses {
		res.Courses = append(res.Courses, domain.LookupResponse{ID: c.ID.String(), Name: c.Name})
	}
	for _, c := range cuisines {
		res.Cuisines = append(res.Cuisines, domain.LookupResponse{ID: c.ID.String(), Name: c.Name})
	}
	for _, c := range countries {
		res.Countries = append(res.Countries, domain.LookupResponse{ID: c.ID.String(), Name: c.Name})
	}
	for _, a := range authors {
		author := domain.AuthorResponse{ID: a.ID.String(), Name: a.Name}
		if a.Country != nil {
			author.Country = a.Country.Name
		}
		res.Authors = append(res.Authors, author)
	}
	for _, m := range measurements {
		res.Measurements = append(res.Measurements, domain.LookupResponse{ID: m.ID.String(), Name: m.Name})
	}
	return res, nil
}

func (s *lookupService) AddCategory(ctx context.Context, req domain.AddLookupRequest) (domain.LookupResponse, error) {
	category := &entities.Category{ID: uuid.New(), Name: req.Name}
	if err := s.lookupRepository.CreateCategory(ctx, category); err != nil {
		return domain.LookupResponse{}, translateLookupErr(err, domain.ErrCategoryNotFound)
	}
	return domain.LookupResponse{ID: category.ID.String(), Name: category.Name}, nil
}

func (s *lookupService) UpdateCategory(ctx context.Context, id string, req domain.UpdateLookupRequest) error {
	category, err := s.lookupRepository.GetCategoryByID(ctx, id)
	if err != nil {
		return translateLookupErr(err, domain.ErrCategoryNotFound)
	}
	category.Name = req.Name
	if err := s.lookupRepository.UpdateCategory(ctx, category); err != nil {
		return translateLookupErr(err, domain.ErrCategoryNotFound)
	}
	return nil
}

func (s *lookupService) AddCourse(ctx context.Context, req domain.AddLookupRequest) (domain.LookupResponse, error) {
	course := &entities.Course{ID: uuid.New(), Name: req.Name}
	if err := s.lookupRepository.CreateCourse(ctx, course); err != nil {
		return domain.LookupResponse{}, translateLookupErr(err, domain.ErrCourseNotFound)
	}
	return domain.LookupResponse{ID: course.ID.String(), Name: course.Name}, nil
}

func (s *lookupService) UpdateCourse(ctx context.Context, id string, req domain.UpdateLookupRequest) error {
	course, err := s.lookupRepository.GetCourseByID(ctx, id)
	if err != nil {
		return translateLookupErr(err, domain.ErrCourseNotFound)
	}
	course.Name = req.Name
	if err := s.lookupRepository.UpdateCourse(ctx, course); err != nil {
		return translateLookupErr(err, domain.ErrCourseNotFound)
	}
	return nil
}

func (s *lookupService) AddCuisine(ctx context.Context, req domain.AddLookupRequest) (domain.LookupResponse, error) {
	cuisine := &entities.Cuisine{ID: uuid.New(), Name: req.Name}
	if err := s.lookupRepository.CreateCuisine(ctx, cuisine); err != nil {
		return domain.LookupResponse{}, translateLookupErr(err, domain.ErrCuisineNotFound)
	}
	return domain.LookupResponse{ID: cuisine.ID.String(), Name: cuisine.Name}, nil
}

func (s *lookupService) UpdateCuisine(ctx context.Context, id string, req domain.UpdateLookupRequest) error {
	cuisine, err := s.lookupRepository.GetCuisineByID(ctx, id)
	if err != nil {
		return translateLookupErr(err, domain.ErrCuisineNotFound)
	}
	cuisine.Name = req.Name
	if err := s.lookupRepository.UpdateCuisine(ctx, cuisine); err != nil {
		return translateLookupErr(err, domain.ErrCuisineNotFound)
	}
	return nil
}

func (s *lookupService) AddCountry(ctx context.Context, req domain.AddLookupRequest) (domain.LookupResponse, error) {
	country := &entities.Country{ID: uuid.New(), Name: req.Name}
	if err := s.lookupRepository.CreateCountry(ctx, country); err != nil {
		return domain.LookupResponse{}, translateLookupErr(err, domain.ErrCountryNotFound)
	}
	return domain.LookupResponse{ID: country.ID.String(), Name: country.Name}, nil
}

func (s *lookupService) UpdateCountry(ctx context.Context, id string, req domain.UpdateLookupRequest) error {
	country, err := s.lookupRepository.GetCountryByID(ctx, id)
	if err != nil {
		return translateLookupErr(err, domain.ErrCountryNotFound)
	}
	country.Name = req.Name
	if err := s.lookupRepository.UpdateCountry(ctx, country); err != nil {
		return translateLookupErr(err, domain.ErrCountryNotFound)
	}
	return nil
}

func (s *lookupService) AddMeasurement(ctx context.Context, req domain.AddLookupRequest) (domain.LookupResponse, error) {
	measurement := &entities.Measurement{ID: uuid.New(), Name: req.Name}
	if err := s.lookupRepository.CreateMeasurement(ctx, measurement); err != nil {
		return domain.LookupResponse{}, translateLookupErr(err, domain.ErrMeasurementNotFound)
	}
	return domain.LookupResponse{ID: measurement.ID.String(), Name: measurement.Name}, nil
}

func (s *lookupService) UpdateMeasurement(ctx context.Context, id string, req domain.UpdateLookupRequest) error {
	measurement, err := s.lookupRepository.GetMeasurementByID(ctx, id)
	if err != nil {
		return translateLookupErr(err, domain.ErrMeasurementNotFound)
	}
	measurement.Name = req.Name
	if err := s.lookupRepository.UpdateMeasurement(ctx, measurement); err != nil {
		return translateLookupErr(err, domain.ErrMeasurementNotFound)
	}
	return nil
}

func (s *lookupService) AddAuthor(ctx context.Context, req domain.AddAuthorRequest) (domain.AuthorResponse, error) {
	countryID, err := uuid.Parse(req.CountryID)
	if err != nil {
		return domain.AuthorResponse{}, domain.ErrParseUUID
	}

	author := &entities.Author{ID: uuid.New(), Name: req.Name, CountryID: countryID}
	if err := s.lookupRepository.CreateAuthor(ctx, author); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return domain.AuthorResponse{}, domain.ErrCountryNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return domain.AuthorResponse{}, domain.ErrLookupNameTaken
		default:
			return domain.AuthorResponse{}, err
		}
	}

	created, err := s.lookupRepository.GetAuthorByID(ctx, author.ID.String())
	if err != nil {
		return domain.AuthorResponse{}, err
	}

	res := domain.AuthorResponse{ID: created.ID.String(), Name: created.Name}
	if created.Country != nil {
		res.Country = created.Country.Name
	}
	return res, nil
}

func (s *lookupService) UpdateAuthor(ctx context.Context, id string, req domain.UpdateAuthorRequest) error {
	author, err := s.lookupRepository.GetAuthorByID(ctx, id)
	if err != nil {
		return translateLookupErr(err, domain.ErrAuthorNotFound)
	}

	countryID, err := uuid.Parse(req.CountryID)
	if err != nil {
		return domain.ErrParseUUID
	}

	author.Name = req.Name
	author.CountryID = countryID
	author.Country = nil
	if err := s.lookupRepository.UpdateAuthor(ctx, author); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return domain.ErrCountryNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return domain.ErrLookupNameTaken
		default:
			return err
		}
	}
	return nil
}
