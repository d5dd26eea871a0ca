package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"recipebox/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []any{
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
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
