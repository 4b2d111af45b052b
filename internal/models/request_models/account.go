package request_models

import "github.com/google/uuid"

type SignUpRequest struct {
	DisplayName string    `json:"display_name" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	Password    string    `json:"password" binding:"required,min=8"`
	AgencyID    uuid.UUID `json:"agency_id" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
