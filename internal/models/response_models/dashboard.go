package response_models

import "time"

const (
	AlertNone     = "none"
	AlertWarning  = "warning"
	AlertCritical = "critical"
)

// AccessState is the derived subscription gate. Computed fresh on every
// request; time moves whether or not the data does.
type AccessState struct {
	PurchaseDate time.Time `json:"purchase_date"`
	ExpiryDate   time.Time `json:"expiry_date"`
	IsExpired    bool      `json:"is_expired"`
	IsActive     bool      `json:"is_active"`
	DaysLeft     int       `json:"days_left"`
	AlertLevel   string    `json:"alert_level"`
}

type StarProgress struct {
	Stars      int `json:"stars"`
	Progress   int `json:"progress"`
	NextTarget int `json:"next_target"`
}

type CatalogService struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Benefits []string `json:"benefits"`
}

type DashboardResponse struct {
	User            *UserProfile        `json:"user"`
	Access          AccessState         `json:"access"`
	Stars           StarProgress        `json:"stars"`
	IsDemo          bool                `json:"is_demo"`
	Banner          *SystemConfig       `json:"banner,omitempty"`
	Credentials     []ServiceCredential `json:"credentials,omitempty"`
	MissingServices []CatalogService    `json:"missing_services,omitempty"`
}
