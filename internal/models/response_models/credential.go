package response_models

type CredentialInfo struct {
	ID          string `json:"id"`
	Service     string `json:"service"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PublishedAt int64  `json:"published_at"`
}

// ServiceCredential pairs a subscribed service with its assigned pool login.
// Credential is nil while access is pending; Alert carries the user-facing
// status line when the service is unstable or the login is fresh.
type ServiceCredential struct {
	Service    string          `json:"service"`
	Credential *CredentialInfo `json:"credential"`
	Alert      string          `json:"alert,omitempty"`
}
