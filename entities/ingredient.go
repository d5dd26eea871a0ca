package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"not null" json:"name"`

	Timestamp
}

type Quantity struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Amount        float64   `json:"amount"`
	RecipeID      uuid.UUID `gorm:"not null" json:"recipe_id"`
	IngredientID  uuid.UUID `gorm:"not null" json:"ingredient_id"`
	MeasurementID uuid.UUID `gorm:"not null" json:"measurement_id"`

	Recipe      *Recipe      `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient  *Ingredient  `gorm:"foreignKey:IngredientID" json:"-"`
	Measurement *Measurement `gorm:"foreignKey:MeasurementID" json:"-"`
	Timestamp
}

type Method struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID    uuid.UUID `gorm:"not null" json:"recipe_id"`
	Description string    `gorm:"type:text" json:"description"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
