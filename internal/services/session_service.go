package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"gorm.io/datatypes"

	"doramahub/internal/models/db_models"
	"doramahub/internal/models/response_models"
	"doramahub/internal/repositories"
	"doramahub/pkg/utils"
)

const (
	// TestUserPhone is the shared demo-login account.
	TestUserPhone = "00000000000"

	defaultClientName = "Dorameira"
)

type SessionServiceInterface interface {
	CheckUserStatus(ctx context.Context, lastDigits string) response_models.StatusResponse
	RegisterPassword(ctx context.Context, phone, password string) bool
	Login(ctx context.Context, phone, password string) (*response_models.UserProfile, error)
	TestUser(ctx context.Context) (*response_models.UserProfile, error)
	CreateDemoClient(ctx context.Context) (string, error)
	ResolveByPhone(ctx context.Context, phone string) (*response_models.UserProfile, error)
}

type SessionService struct {
	clientRepo repositories.ClientRepository
	watchlist  WatchlistServiceInterface
}

func NewSessionService(clientRepo repositories.ClientRepository, watchlist WatchlistServiceInterface) SessionServiceInterface {
	return &SessionService{
		clientRepo: clientRepo,
		watchlist:  watchlist,
	}
}

// ParsePurchaseDate accepts the date shapes that have accumulated in the
// purchase_date column over time.
func ParsePurchaseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ComputeExpiry adds the contract duration in calendar months. Day-of-month
// overflow normalizes the way time.AddDate normalizes it; that matches how
// expiries have always been computed for this data.
func ComputeExpiry(purchase time.Time, durationMonths int) time.Time {
	return purchase.AddDate(0, durationMonths, 0)
}

// ResolveUser merges every purchase row for one phone number into a single
// logical user. Soft-deleted rows are skipped entirely; if nothing survives
// the account is gone. The last non-empty name in row order wins, services
// union across rows, debtor and override flags OR-combine, and the row with
// the latest expiry supplies identity, purchase date and duration.
func ResolveUser(rows []db_models.Client) (*response_models.UserProfile, error) {
	if len(rows) == 0 {
		return nil, utils.ErrUserNotFound
	}

	hasActive := false
	for _, row := range rows {
		if !row.Deleted {
			hasActive = true
			break
		}
	}
	if !hasActive {
		return nil, utils.ErrNoActiveAccount
	}

	name := defaultClientName
	var services []string
	seen := make(map[string]struct{})
	isDebtor := false
	override := false
	best := rows[0]
	var maxExpiry int64

	for _, row := range rows {
		if row.Deleted {
			continue
		}
		if row.ClientName != "" {
			name = row.ClientName
		}
		for _, svc := range row.Subscriptions {
			if svc == "" {
				continue
			}
			if _, ok := seen[svc]; ok {
				continue
			}
			seen[svc] = struct{}{}
			services = append(services, svc)
		}
		if row.IsDebtor {
			isDebtor = true
		}
		if row.OverrideExpiration {
			override = true
		}

		if purchase, ok := ParsePurchaseDate(row.PurchaseDate); ok {
			if expiry := ComputeExpiry(purchase, row.DurationMonths).Unix(); expiry > maxExpiry {
				maxExpiry = expiry
				best = row
			}
		}
	}

	return &response_models.UserProfile{
		ID:                 best.ID.String(),
		Name:               name,
		PhoneNumber:        best.PhoneNumber,
		PurchaseDate:       best.PurchaseDate,
		DurationMonths:     best.DurationMonths,
		Services:           services,
		IsDebtor:           isDebtor,
		OverrideExpiration: override,
		GameProgress:       []byte(best.GameProgress),
	}, nil
}

// CheckUserStatus looks an account up by the last digits of its phone
// number. Lookup failures collapse to "not found"; this path can never
// block a login screen.
func (s *SessionService) CheckUserStatus(ctx context.Context, lastDigits string) response_models.StatusResponse {
	digits := utils.CleanPhone(lastDigits)
	if digits == "" {
		return response_models.StatusResponse{PhoneMatches: []string{}}
	}

	rows, err := s.clientRepo.FindByPhoneSuffix(ctx, digits)
	if err != nil {
		log.Printf("status check failed for suffix %s: %v", digits, err)
		return response_models.StatusResponse{PhoneMatches: []string{}}
	}

	hasPassword := false
	phones := make([]string, 0, len(rows))
	seen := make(map[string]struct{})
	for _, row := range rows {
		if row.Deleted {
			continue
		}
		if strings.TrimSpace(row.ClientPassword) != "" {
			hasPassword = true
		}
		if _, ok := seen[row.PhoneNumber]; !ok {
			seen[row.PhoneNumber] = struct{}{}
			phones = append(phones, row.PhoneNumber)
		}
	}

	return response_models.StatusResponse{
		Exists:       len(phones) > 0,
		HasPassword:  hasPassword,
		PhoneMatches: phones,
	}
}

func (s *SessionService) RegisterPassword(ctx context.Context, phone, password string) bool {
	affected, err := s.clientRepo.UpdatePassword(ctx, phone, password)
	if err != nil {
		log.Printf("register password failed for %s: %v", phone, err)
		return false
	}
	return affected > 0
}

func (s *SessionService) Login(ctx context.Context, phone, password string) (*response_models.UserProfile, error) {
	rows, err := s.clientRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(rows) == 0 {
		return nil, utils.ErrUserNotFound
	}
	if rows[0].Deleted {
		return nil, utils.ErrAccessRevoked
	}
	if strings.TrimSpace(rows[0].ClientPassword) != strings.TrimSpace(password) {
		return nil, utils.ErrInvalidCredentials
	}

	user, err := ResolveUser(rows)
	if err != nil {
		return nil, err
	}

	// fetch fresh so the session starts from the remote truth
	user.WatchCollections = s.watchlist.Read(ctx, user.PhoneNumber)
	return user, nil
}

func (s *SessionService) TestUser(ctx context.Context) (*response_models.UserProfile, error) {
	return s.ResolveByPhone(ctx, TestUserPhone)
}

func (s *SessionService) ResolveByPhone(ctx context.Context, phone string) (*response_models.UserProfile, error) {
	rows, err := s.clientRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(rows) == 0 {
		return nil, utils.ErrUserNotFound
	}

	user, err := ResolveUser(rows)
	if err != nil {
		return nil, err
	}

	user.WatchCollections = s.watchlist.Read(ctx, user.PhoneNumber)
	return user, nil
}

func (s *SessionService) CreateDemoClient(ctx context.Context) (string, error) {
	fakeId := 1000 + rand.Intn(9000)
	phone := fmt.Sprintf("99999%d", fakeId)

	demo := &db_models.Client{
		PhoneNumber:    phone,
		ClientName:     fmt.Sprintf("Demo User (%d)", fakeId),
		ClientPassword: "1234",
		PurchaseDate:   time.Now().Format(time.RFC3339),
		DurationMonths: 999,
		Subscriptions: db_models.ServiceList{
			"Viki Pass", "Kocowa+", "IQIYI", "WeTV", "DramaBox",
		},
		OverrideExpiration: true,
		GameProgress:       datatypes.JSON("{}"),
	}

	if err := s.clientRepo.Insert(ctx, demo); err != nil {
		return "", utils.ErrDatabaseError
	}
	return phone, nil
}
