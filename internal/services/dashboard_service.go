package services

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"doramahub/internal/models/response_models"
	"doramahub/pkg/utils"
)

const (
	alertServiceIssues = "⚠️ Serviço instável no momento. Aguarde."
	alertServiceDown   = "🚨 Serviço fora do ar para manutenção."

	demoEmail    = "demo@eudorama.com"
	demoPassword = "demo1234"
)

// serviceCatalog is the sellable service lineup, used to compute the
// missing-services upsell block.
var serviceCatalog = []response_models.CatalogService{
	{
		ID:       "Viki Pass",
		Name:     "Viki Pass",
		Price:    "R$ 19,90",
		Benefits: []string{"Doramas Exclusivos", "Sem Anúncios", "Alta Qualidade (HD)", "Acesso Antecipado"},
	},
	{
		ID:       "Kocowa+",
		Name:     "Kocowa+",
		Price:    "R$ 14,90",
		Benefits: []string{"Shows de K-Pop Ao Vivo", "Reality Shows Coreanos", "Legendas Super Rápidas", "100% Coreano"},
	},
	{
		ID:       "IQIYI",
		Name:     "IQIYI",
		Price:    "R$ 14,90",
		Benefits: []string{"Doramas Chineses (C-Drama)", "Animes e BLs Exclusivos", "Qualidade 4K e Dolby", "Catálogo Gigante"},
	},
	{
		ID:       "WeTV",
		Name:     "WeTV",
		Price:    "R$ 14,90",
		Benefits: []string{"Séries Tencent Video", "Mini Doramas Viciantes", "Variedades Asiáticas", "Dublagem em Português"},
	},
	{
		ID:       "DramaBox",
		Name:     "DramaBox",
		Price:    "R$ 14,90",
		Benefits: []string{"Doramas Verticais (Shorts)", "Episódios de 1 minuto", "Histórias Intensas", "Ideal para Celular"},
	},
}

type DashboardServiceInterface interface {
	BuildDashboard(ctx context.Context, phone string) (*response_models.DashboardResponse, error)
}

type DashboardService struct {
	session     SessionServiceInterface
	credentials CredentialServiceInterface
	config      ConfigServiceInterface
}

func NewDashboardService(
	session SessionServiceInterface,
	credentials CredentialServiceInterface,
	config ConfigServiceInterface,
) DashboardServiceInterface {
	return &DashboardService{
		session:     session,
		credentials: credentials,
		config:      config,
	}
}

// DeriveAccess computes the subscription gate from scratch. now is a
// parameter so callers always evaluate against the current clock; nothing
// here may be cached.
func DeriveAccess(user *response_models.UserProfile, now time.Time) response_models.AccessState {
	purchase, ok := ParsePurchaseDate(user.PurchaseDate)
	if !ok {
		purchase = now
	}
	expiry := ComputeExpiry(purchase, user.DurationMonths)

	isExpired := now.After(expiry)
	isActive := (!isExpired && !user.IsDebtor) || user.OverrideExpiration
	daysLeft := int(math.Ceil(expiry.Sub(now).Hours() / 24))

	alert := response_models.AlertNone
	if !isExpired {
		switch {
		case daysLeft <= 2:
			alert = response_models.AlertCritical
		case daysLeft <= 5:
			alert = response_models.AlertWarning
		}
	}

	return response_models.AccessState{
		PurchaseDate: purchase,
		ExpiryDate:   expiry,
		IsExpired:    isExpired,
		IsActive:     isActive,
		DaysLeft:     daysLeft,
		AlertLevel:   alert,
	}
}

// StarsFor converts completed-title count into the loyalty-star badge:
// one star per ten finished titles.
func StarsFor(completedCount int) response_models.StarProgress {
	stars := completedCount / 10
	return response_models.StarProgress{
		Stars:      stars,
		Progress:   completedCount % 10,
		NextTarget: (stars + 1) * 10,
	}
}

// IsDemoPhone flags the throwaway demo accounts and the shared test user.
func IsDemoPhone(phone string) bool {
	clean := utils.CleanPhone(phone)
	return strings.HasPrefix(clean, "99999") || clean == TestUserPhone
}

// MissingServices returns the catalog entries the user is not subscribed
// to, matching by case-insensitive containment since stored service names
// vary ("Viki Pass Premium" counts as "Viki Pass").
func MissingServices(subscribed []string) []response_models.CatalogService {
	var missing []response_models.CatalogService
	for _, svc := range serviceCatalog {
		id := strings.ToLower(svc.ID)
		owned := false
		for _, sub := range subscribed {
			if strings.Contains(strings.ToLower(sub), id) {
				owned = true
				break
			}
		}
		if !owned {
			missing = append(missing, svc)
		}
	}
	return missing
}

// ServiceStatusOverlay maps a subscribed service onto the config's status
// board by case-insensitive substring match. A configured status always
// overrides whatever alert the credential assignment produced; "down" wins
// over "issues" when several keys match.
func ServiceStatusOverlay(service string, statuses map[string]string) (string, bool) {
	lowerSvc := strings.ToLower(service)
	matched := ""
	for key, status := range statuses {
		if !strings.Contains(lowerSvc, strings.ToLower(key)) {
			continue
		}
		switch status {
		case "down":
			return alertServiceDown, true
		case "issues":
			matched = alertServiceIssues
		}
	}
	return matched, matched != ""
}

func (s *DashboardService) BuildDashboard(ctx context.Context, phone string) (*response_models.DashboardResponse, error) {
	user, err := s.session.ResolveByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	access := DeriveAccess(user, now)
	isDemo := IsDemoPhone(user.PhoneNumber)

	resp := &response_models.DashboardResponse{
		User:   user,
		Access: access,
		Stars:  StarsFor(len(user.Completed)),
		IsDemo: isDemo,
	}

	// Blocked screen only needs the access block; credentials are not
	// handed out to inactive accounts.
	if !access.IsActive {
		return resp, nil
	}

	cfg := s.config.Get(ctx)
	if cfg.BannerActive && cfg.BannerText != "" {
		resp.Banner = &cfg
	}

	creds := make([]response_models.ServiceCredential, len(user.Services))
	var wg sync.WaitGroup
	for i, svc := range user.Services {
		wg.Add(1)
		go func(i int, svc string) {
			defer wg.Done()
			cred, alert := s.credentials.Assign(ctx, user.PhoneNumber, svc)
			creds[i] = response_models.ServiceCredential{
				Service:    svc,
				Credential: cred,
				Alert:      alert,
			}
		}(i, svc)
	}
	wg.Wait()

	for i := range creds {
		if isDemo && creds[i].Credential != nil {
			creds[i].Credential.Email = demoEmail
			creds[i].Credential.Password = demoPassword
			creds[i].Alert = ""
		}
		if overlay, ok := ServiceStatusOverlay(creds[i].Service, cfg.ServiceStatus); ok {
			creds[i].Alert = overlay
		}
	}
	resp.Credentials = creds
	resp.MissingServices = MissingServices(user.Services)

	return resp, nil
}
