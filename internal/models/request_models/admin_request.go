package request_models

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SaveClientRequest inserts when ID is empty, updates otherwise.
type SaveClientRequest struct {
	ID                 string   `json:"id"`
	PhoneNumber        string   `json:"phone_number" binding:"required"`
	ClientName         string   `json:"client_name"`
	ClientPassword     string   `json:"client_password"`
	PurchaseDate       string   `json:"purchase_date"`
	DurationMonths     int      `json:"duration_months"`
	Subscriptions      []string `json:"subscriptions"`
	IsDebtor           bool     `json:"is_debtor"`
	IsContacted        bool     `json:"is_contacted"`
	Deleted            bool     `json:"deleted"`
	OverrideExpiration bool     `json:"override_expiration"`
}

type UpdateClientNameRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Name        string `json:"name" binding:"required"`
}
