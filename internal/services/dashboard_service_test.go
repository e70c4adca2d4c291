package services

import (
	"context"
	"testing"
	"time"

	"doramahub/internal/models/response_models"
)

func profileWith(purchase string, months int) *response_models.UserProfile {
	return &response_models.UserProfile{
		PurchaseDate:   purchase,
		DurationMonths: months,
	}
}

func TestDeriveAccessExpired(t *testing.T) {
	// 2024-02-15 + 12 months expires 2025-02-15; five days later it is gone.
	now := time.Date(2025, 2, 20, 12, 0, 0, 0, time.UTC)
	access := DeriveAccess(profileWith("2024-02-15", 12), now)

	if !access.IsExpired {
		t.Error("account should be expired")
	}
	if access.IsActive {
		t.Error("expired account without override must not be active")
	}
}

func TestDeriveAccessActive(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	access := DeriveAccess(profileWith("2024-02-15", 12), now)

	if access.IsExpired || !access.IsActive {
		t.Errorf("mid-contract account should be active, got expired=%v active=%v", access.IsExpired, access.IsActive)
	}
	if access.AlertLevel != response_models.AlertNone {
		t.Errorf("alert = %q, want none months before expiry", access.AlertLevel)
	}
}

func TestDeriveAccessDebtorBlocked(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	user := profileWith("2024-02-15", 12)
	user.IsDebtor = true

	access := DeriveAccess(user, now)
	if access.IsActive {
		t.Error("debtor must be blocked even inside the contract window")
	}
	if access.IsExpired {
		t.Error("debtor block is not an expiry")
	}
}

func TestDeriveAccessOverrideWins(t *testing.T) {
	now := time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)
	user := profileWith("2024-02-15", 12)
	user.IsDebtor = true
	user.OverrideExpiration = true

	access := DeriveAccess(user, now)
	if !access.IsActive {
		t.Error("override must grant access past expiry and past debtor status")
	}
	if !access.IsExpired {
		t.Error("override does not rewrite the expiry itself")
	}
}

func TestDeriveAccessAlertTiers(t *testing.T) {
	expiry := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		hoursBefore int
		want        string
	}{
		{30 * 24, response_models.AlertNone},
		{5 * 24, response_models.AlertWarning},
		{3 * 24, response_models.AlertWarning},
		{2 * 24, response_models.AlertCritical},
		{12, response_models.AlertCritical},
	}
	for _, c := range cases {
		now := expiry.Add(-time.Duration(c.hoursBefore) * time.Hour)
		access := DeriveAccess(profileWith("2024-02-15", 1), now)
		if access.AlertLevel != c.want {
			t.Errorf("%dh before expiry: alert = %q, want %q (daysLeft=%d)",
				c.hoursBefore, access.AlertLevel, c.want, access.DaysLeft)
		}
	}
}

func TestDeriveAccessInvalidDateFallsBackToNow(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	access := DeriveAccess(profileWith("garbage", 3), now)

	if access.IsExpired {
		t.Error("unparseable purchase date anchors at now, so the account is inside its window")
	}
	if !access.PurchaseDate.Equal(now) {
		t.Errorf("purchase date = %v, want now", access.PurchaseDate)
	}
}

func TestStarsFor(t *testing.T) {
	cases := []struct {
		completed, stars, progress, next int
	}{
		{0, 0, 0, 10},
		{9, 0, 9, 10},
		{10, 1, 0, 20},
		{25, 2, 5, 30},
	}
	for _, c := range cases {
		got := StarsFor(c.completed)
		if got.Stars != c.stars || got.Progress != c.progress || got.NextTarget != c.next {
			t.Errorf("StarsFor(%d) = %+v, want stars=%d progress=%d next=%d",
				c.completed, got, c.stars, c.progress, c.next)
		}
	}
}

func TestIsDemoPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"999991234", true},
		{TestUserPhone, true},
		{"11987654321", false},
		{"(99) 99912-34", true},
	}
	for _, c := range cases {
		if got := IsDemoPhone(c.phone); got != c.want {
			t.Errorf("IsDemoPhone(%q) = %v, want %v", c.phone, got, c.want)
		}
	}
}

func TestMissingServices(t *testing.T) {
	missing := MissingServices([]string{"Viki Pass Premium", "iqiyi vip"})
	for _, svc := range missing {
		if svc.ID == "Viki Pass" || svc.ID == "IQIYI" {
			t.Errorf("%q is subscribed via substring match, must not be missing", svc.ID)
		}
	}
	found := map[string]bool{}
	for _, svc := range missing {
		found[svc.ID] = true
	}
	for _, want := range []string{"Kocowa+", "WeTV", "DramaBox"} {
		if !found[want] {
			t.Errorf("%q should be in the missing list", want)
		}
	}
}

func TestServiceStatusOverlay(t *testing.T) {
	statuses := map[string]string{"viki": "issues", "wetv": "down", "iqiyi": "ok"}

	if msg, ok := ServiceStatusOverlay("Viki Pass", statuses); !ok || msg != alertServiceIssues {
		t.Errorf("issues overlay = (%q, %v)", msg, ok)
	}
	if msg, ok := ServiceStatusOverlay("WeTV Premium", statuses); !ok || msg != alertServiceDown {
		t.Errorf("down overlay = (%q, %v)", msg, ok)
	}
	if _, ok := ServiceStatusOverlay("IQIYI", statuses); ok {
		t.Error("ok status must not produce an overlay")
	}
	if _, ok := ServiceStatusOverlay("DramaBox", statuses); ok {
		t.Error("unlisted service must not produce an overlay")
	}
}

func TestServiceStatusOverlayDownWins(t *testing.T) {
	statuses := map[string]string{"viki": "issues", "viki pass": "down"}
	msg, ok := ServiceStatusOverlay("Viki Pass", statuses)
	if !ok || msg != alertServiceDown {
		t.Errorf("overlay = (%q, %v), down must win over issues", msg, ok)
	}
}

type stubSessionService struct {
	user *response_models.UserProfile
	err  error
}

func (s stubSessionService) CheckUserStatus(ctx context.Context, lastDigits string) response_models.StatusResponse {
	return response_models.StatusResponse{}
}
func (s stubSessionService) RegisterPassword(ctx context.Context, phone, password string) bool {
	return true
}
func (s stubSessionService) Login(ctx context.Context, phone, password string) (*response_models.UserProfile, error) {
	return s.user, s.err
}
func (s stubSessionService) TestUser(ctx context.Context) (*response_models.UserProfile, error) {
	return s.user, s.err
}
func (s stubSessionService) CreateDemoClient(ctx context.Context) (string, error) { return "", nil }
func (s stubSessionService) ResolveByPhone(ctx context.Context, phone string) (*response_models.UserProfile, error) {
	return s.user, s.err
}

type stubCredentialService struct {
	alert string
}

func (s stubCredentialService) Assign(ctx context.Context, phone, service string) (*response_models.CredentialInfo, string) {
	return &response_models.CredentialInfo{
		Service:  service,
		Email:    "pool@x.com",
		Password: "poolpw",
	}, s.alert
}

type stubConfigService struct {
	cfg response_models.SystemConfig
}

func (s stubConfigService) Get(ctx context.Context) response_models.SystemConfig { return s.cfg }
func (s stubConfigService) Save(ctx context.Context, cfg response_models.SystemConfig) error {
	return nil
}

func activeProfile(phone string) *response_models.UserProfile {
	return &response_models.UserProfile{
		PhoneNumber:    phone,
		PurchaseDate:   time.Now().AddDate(0, -1, 0).Format("2006-01-02"),
		DurationMonths: 12,
		Services:       []string{"Viki Pass", "WeTV"},
	}
}

func TestBuildDashboardBlockedSkipsCredentials(t *testing.T) {
	user := activeProfile("11987654321")
	user.IsDebtor = true

	svc := NewDashboardService(
		stubSessionService{user: user},
		stubCredentialService{},
		stubConfigService{cfg: response_models.DefaultSystemConfig()},
	)

	resp, err := svc.BuildDashboard(context.Background(), "11987654321")
	if err != nil {
		t.Fatalf("BuildDashboard failed: %v", err)
	}
	if resp.Access.IsActive {
		t.Error("debtor must be inactive")
	}
	if len(resp.Credentials) != 0 {
		t.Error("blocked account must not receive credentials")
	}
}

func TestBuildDashboardAssignsEveryService(t *testing.T) {
	svc := NewDashboardService(
		stubSessionService{user: activeProfile("11987654321")},
		stubCredentialService{},
		stubConfigService{cfg: response_models.DefaultSystemConfig()},
	)

	resp, err := svc.BuildDashboard(context.Background(), "11987654321")
	if err != nil {
		t.Fatalf("BuildDashboard failed: %v", err)
	}
	if len(resp.Credentials) != 2 {
		t.Fatalf("credentials = %d, want one per subscribed service", len(resp.Credentials))
	}
	// fan-out preserves subscription order
	if resp.Credentials[0].Service != "Viki Pass" || resp.Credentials[1].Service != "WeTV" {
		t.Errorf("credential order = %q, %q", resp.Credentials[0].Service, resp.Credentials[1].Service)
	}
}

func TestBuildDashboardDemoMasksCredentials(t *testing.T) {
	user := activeProfile("999991234")

	svc := NewDashboardService(
		stubSessionService{user: user},
		stubCredentialService{alert: "senha nova"},
		stubConfigService{cfg: response_models.DefaultSystemConfig()},
	)

	resp, err := svc.BuildDashboard(context.Background(), "999991234")
	if err != nil {
		t.Fatalf("BuildDashboard failed: %v", err)
	}
	if !resp.IsDemo {
		t.Fatal("99999-prefixed phone is a demo account")
	}
	for _, c := range resp.Credentials {
		if c.Credential.Email != demoEmail || c.Credential.Password != demoPassword {
			t.Errorf("demo credential not masked: %+v", c.Credential)
		}
		if c.Alert != "" {
			t.Errorf("demo account must not surface credential alerts, got %q", c.Alert)
		}
	}
}

func TestBuildDashboardStatusOverlayWinsOverAlert(t *testing.T) {
	cfg := response_models.DefaultSystemConfig()
	cfg.ServiceStatus["WeTV"] = "down"

	svc := NewDashboardService(
		stubSessionService{user: activeProfile("11987654321")},
		stubCredentialService{alert: "senha nova"},
		stubConfigService{cfg: cfg},
	)

	resp, err := svc.BuildDashboard(context.Background(), "11987654321")
	if err != nil {
		t.Fatalf("BuildDashboard failed: %v", err)
	}
	for _, c := range resp.Credentials {
		switch c.Service {
		case "WeTV":
			if c.Alert != alertServiceDown {
				t.Errorf("WeTV alert = %q, want the down overlay", c.Alert)
			}
		case "Viki Pass":
			if c.Alert != "senha nova" {
				t.Errorf("Viki Pass alert = %q, credential alert must survive", c.Alert)
			}
		}
	}
}

func TestBuildDashboardBanner(t *testing.T) {
	cfg := response_models.DefaultSystemConfig()
	cfg.BannerActive = true
	cfg.BannerText = "Manutenção programada"

	svc := NewDashboardService(
		stubSessionService{user: activeProfile("11987654321")},
		stubCredentialService{},
		stubConfigService{cfg: cfg},
	)

	resp, err := svc.BuildDashboard(context.Background(), "11987654321")
	if err != nil {
		t.Fatalf("BuildDashboard failed: %v", err)
	}
	if resp.Banner == nil || resp.Banner.BannerText != "Manutenção programada" {
		t.Errorf("banner = %+v", resp.Banner)
	}
}
