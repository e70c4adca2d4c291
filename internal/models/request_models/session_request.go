package request_models

type StatusRequest struct {
	LastDigits string `json:"last_digits" binding:"required,min=4"`
}

type RegisterPasswordRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required,min=4"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}
