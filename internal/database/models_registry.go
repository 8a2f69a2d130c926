package database

import "stackwiser/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Migrate derives the schema from this list; add new entities here.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Token{},
		&models.Post{},
		&models.Comment{},
	}
}
