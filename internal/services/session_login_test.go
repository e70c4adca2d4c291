package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"doramahub/internal/models/db_models"
	"doramahub/internal/models/request_models"
	"doramahub/internal/models/response_models"
	"doramahub/pkg/utils"
)

type fakeClientRepo struct {
	rows []db_models.Client
	fail bool

	resetKeepPhone string
}

func (f *fakeClientRepo) FindAll(ctx context.Context) ([]db_models.Client, error) {
	if f.fail {
		return nil, errors.New("connection refused")
	}
	return f.rows, nil
}

func (f *fakeClientRepo) FindByPhone(ctx context.Context, phone string) ([]db_models.Client, error) {
	if f.fail {
		return nil, errors.New("connection refused")
	}
	var out []db_models.Client
	for _, r := range f.rows {
		if r.PhoneNumber == phone {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) FindByPhoneSuffix(ctx context.Context, digits string) ([]db_models.Client, error) {
	if f.fail {
		return nil, errors.New("connection refused")
	}
	var out []db_models.Client
	for _, r := range f.rows {
		if strings.HasSuffix(r.PhoneNumber, digits) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) Insert(ctx context.Context, client *db_models.Client) error {
	if f.fail {
		return errors.New("connection refused")
	}
	f.rows = append(f.rows, *client)
	return nil
}

func (f *fakeClientRepo) Update(ctx context.Context, client *db_models.Client) error { return nil }

func (f *fakeClientRepo) UpdatePassword(ctx context.Context, phone, password string) (int64, error) {
	if f.fail {
		return 0, errors.New("connection refused")
	}
	var n int64
	for i := range f.rows {
		if f.rows[i].PhoneNumber == phone {
			f.rows[i].ClientPassword = password
			n++
		}
	}
	return n, nil
}

func (f *fakeClientRepo) UpdateName(ctx context.Context, phone, name string) error { return nil }
func (f *fakeClientRepo) SoftDelete(ctx context.Context, id string) error          { return nil }

func (f *fakeClientRepo) ResetAllPasswords(ctx context.Context, keepPhone string) error {
	f.resetKeepPhone = keepPhone
	return nil
}

// stubWatchlistService satisfies WatchlistServiceInterface with no-ops.
type stubWatchlistService struct{}

func (stubWatchlistService) Read(ctx context.Context, phone string) response_models.WatchCollections {
	return response_models.WatchCollections{}
}

func (stubWatchlistService) Add(ctx context.Context, phone string, req request_models.AddWatchEntryRequest) response_models.WatchItem {
	return response_models.WatchItem{}
}

func (stubWatchlistService) Update(ctx context.Context, id string, req request_models.UpdateWatchEntryRequest) bool {
	return true
}

func (stubWatchlistService) Delete(ctx context.Context, id string) bool { return true }

func newTestSessionService(repo *fakeClientRepo) SessionServiceInterface {
	return NewSessionService(repo, stubWatchlistService{})
}

func TestLoginChecks(t *testing.T) {
	active := clientRow("Maria", "2024-01-01", 12, "Viki Pass")
	active.ClientPassword = " secret "

	t.Run("wrong password", func(t *testing.T) {
		svc := newTestSessionService(&fakeClientRepo{rows: []db_models.Client{active}})
		_, err := svc.Login(context.Background(), "11987654321", "nope")
		if !errors.Is(err, utils.ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("password compares trimmed", func(t *testing.T) {
		svc := newTestSessionService(&fakeClientRepo{rows: []db_models.Client{active}})
		user, err := svc.Login(context.Background(), "11987654321", "secret")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if user.Name != "Maria" {
			t.Errorf("name = %q", user.Name)
		}
	})

	t.Run("deleted first row revokes access", func(t *testing.T) {
		revoked := active
		revoked.Deleted = true
		svc := newTestSessionService(&fakeClientRepo{rows: []db_models.Client{revoked}})
		_, err := svc.Login(context.Background(), "11987654321", "secret")
		if !errors.Is(err, utils.ErrAccessRevoked) {
			t.Errorf("err = %v, want ErrAccessRevoked", err)
		}
	})

	t.Run("unknown phone", func(t *testing.T) {
		svc := newTestSessionService(&fakeClientRepo{})
		_, err := svc.Login(context.Background(), "11987654321", "secret")
		if !errors.Is(err, utils.ErrUserNotFound) {
			t.Errorf("err = %v, want ErrUserNotFound", err)
		}
	})
}

func TestCheckUserStatusNeverErrors(t *testing.T) {
	svc := newTestSessionService(&fakeClientRepo{fail: true})
	status := svc.CheckUserStatus(context.Background(), "4321")
	if status.Exists || len(status.PhoneMatches) != 0 {
		t.Errorf("status on repo failure = %+v, want empty", status)
	}
}

func TestCheckUserStatusSkipsDeleted(t *testing.T) {
	live := clientRow("Maria", "2024-01-01", 12, "Viki Pass")
	live.ClientPassword = "secret"
	dead := clientRow("Ghost", "2024-01-01", 1)
	dead.PhoneNumber = "11900004321"
	dead.Deleted = true

	svc := newTestSessionService(&fakeClientRepo{rows: []db_models.Client{live, dead}})
	status := svc.CheckUserStatus(context.Background(), "4321")

	if !status.Exists || !status.HasPassword {
		t.Errorf("status = %+v", status)
	}
	for _, p := range status.PhoneMatches {
		if p == "11900004321" {
			t.Error("deleted row must not appear in matches")
		}
	}
}

func TestCreateDemoClient(t *testing.T) {
	repo := &fakeClientRepo{}
	svc := newTestSessionService(repo)

	phone, err := svc.CreateDemoClient(context.Background())
	if err != nil {
		t.Fatalf("CreateDemoClient failed: %v", err)
	}
	if !strings.HasPrefix(phone, "99999") || len(phone) != 9 {
		t.Errorf("demo phone = %q, want 99999 followed by four digits", phone)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(repo.rows))
	}
	if !repo.rows[0].OverrideExpiration || repo.rows[0].DurationMonths != 999 {
		t.Errorf("demo row = %+v, want override with a 999-month contract", repo.rows[0])
	}
}
