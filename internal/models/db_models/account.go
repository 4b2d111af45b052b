package db_models

import "github.com/google/uuid"

type Account struct {
	BaseModel
	AgencyID uuid.UUID `gorm:"type:uuid;index"`

	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
}
