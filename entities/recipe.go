package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	Name            string     `gorm:"unique;not null" json:"name"`
	Description     string     `gorm:"type:text" json:"description"`
	PrepTimeMinutes int        `json:"prep_time_minutes"`
	CookTimeMinutes int        `json:"cook_time_minutes"`
	Servings        int        `json:"servings"`
	CategoryID      uuid.UUID  `gorm:"not null" json:"category_id"`
	CourseID        uuid.UUID  `gorm:"not null" json:"course_id"`
	CuisineID       uuid.UUID  `gorm:"not null" json:"cuisine_id"`
	AuthorID        uuid.UUID  `gorm:"not null" json:"author_id"`
	ImageFilename   string     `json:"image_filename,omitempty"`
	ImageURL        string     `json:"image_url,omitempty"`

	User     *User     `gorm:"foreignKey:UserID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
	Course   *Course   `gorm:"foreignKey:CourseID" json:"-"`
	Cuisine  *Cuisine  `gorm:"foreignKey:CuisineID" json:"-"`
	Author   *Author   `gorm:"foreignKey:AuthorID" json:"-"`
	Timestamp
}

type SavedRecipe struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `gorm:"not null;uniqueIndex:idx_saved_recipes_user_recipe" json:"user_id"`
	RecipeID uuid.UUID `gorm:"not null;uniqueIndex:idx_saved_recipes_user_recipe" json:"recipe_id"`

	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
