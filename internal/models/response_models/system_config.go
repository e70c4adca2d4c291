package response_models

// SystemConfig is the global banner/service-status singleton. JSON keys
// match the payload the original admin tool writes, so existing rows parse.
type SystemConfig struct {
	BannerText   string `json:"bannerText"`
	BannerType   string `json:"bannerType"` // info | warning | error | success
	BannerActive bool   `json:"bannerActive"`
	// service name -> "ok" | "issues" | "down"
	ServiceStatus map[string]string `json:"serviceStatus"`
}

func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		BannerText:   "",
		BannerType:   "info",
		BannerActive: false,
		ServiceStatus: map[string]string{
			"Viki Pass": "ok",
			"Kocowa+":   "ok",
			"IQIYI":     "ok",
			"WeTV":      "ok",
		},
	}
}
