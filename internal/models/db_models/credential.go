package db_models

// SystemConfigService is the sentinel service name under which the global
// config row hides in the credential table, JSON payload in the Email
// column. Inherited storage layout, kept for compatibility with the data.
const SystemConfigService = "SYSTEM_CONFIG"

// Credential is a pooled service login shared across subscribers.
type Credential struct {
	BaseModel
	Email       string
	Password    string
	Service     string `gorm:"index"`
	IsVisible   bool
	PublishedAt int64
}

func (Credential) TableName() string { return "app_credentials" }
