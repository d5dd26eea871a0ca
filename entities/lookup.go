package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"unique;not null" json:"name"`

	Timestamp
}

type Course struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"unique;not null" json:"name"`

	Timestamp
}

type Cuisine struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"unique;not null" json:"name"`

	Timestamp
}

type Country struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"unique;not null" json:"name"`

	Timestamp
}

type Author struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	CountryID uuid.UUID `gorm:"not null" json:"country_id"`

	Country *Country `gorm:"foreignKey:CountryID" json:"-"`
	Timestamp
}

type Measurement struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"unique;not null" json:"name"`

	Timestamp
}
