package database

import "sangha/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Category{},
		&models.Question{},
		&models.Answer{},
		&models.Vote{},
		&models.VoteCast{},
		&models.Reputation{},
		&models.ReputationEvent{},
		&models.Follow{},
		&models.Notification{},
	}
}
