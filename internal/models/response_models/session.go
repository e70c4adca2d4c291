package response_models

type StatusResponse struct {
	Exists       bool     `json:"exists"`
	HasPassword  bool     `json:"has_password"`
	PhoneMatches []string `json:"phone_matches"`
}
