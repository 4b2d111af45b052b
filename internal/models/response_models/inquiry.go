package response_models

import "tripdesk/internal/models/request_models"

type InquiryResponse struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Status        string `json:"status"`

	Inquiry *request_models.Inquiry `json:"inquiry,omitempty"`

	LastDecisionAction string `json:"last_decision_action,omitempty"`
	CreatedAt          int64  `json:"created_at"`
}
