package response_models

import "encoding/json"

// UserProfile is the in-memory merge of every purchase row sharing a phone
// number. It exists only per request, never stored.
type UserProfile struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	PhoneNumber        string          `json:"phone_number"`
	PurchaseDate       string          `json:"purchase_date"`
	DurationMonths     int             `json:"duration_months"`
	Services           []string        `json:"services"`
	IsDebtor           bool            `json:"is_debtor"`
	OverrideExpiration bool            `json:"override_expiration"`
	GameProgress       json.RawMessage `json:"game_progress,omitempty"`

	WatchCollections
}
