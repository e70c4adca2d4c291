package request_models

type SuggestRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}
