package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"doramahub/internal/models/db_models"
	"doramahub/internal/models/request_models"
	"doramahub/pkg/utils"
)

type fakeAdminRepo struct {
	admin *db_models.AdminUser
	fail  bool
}

func (f *fakeAdminRepo) FindByUsername(ctx context.Context, username string) (*db_models.AdminUser, error) {
	if f.fail {
		return nil, errors.New("connection refused")
	}
	if f.admin != nil && f.admin.Username == username {
		return f.admin, nil
	}
	return nil, nil
}

func testAdmin(t *testing.T, password string) *db_models.AdminUser {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	admin := &db_models.AdminUser{Username: "operator", PasswordHash: hash, Role: "admin"}
	admin.ID = uuid.New()
	return admin
}

func TestAdminLogin(t *testing.T) {
	svc := NewAdminService(&fakeAdminRepo{admin: testAdmin(t, "s3cret")}, &fakeClientRepo{})

	token, err := svc.Login(context.Background(), "operator", "s3cret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}

	if _, err := svc.Login(context.Background(), "operator", "wrong"); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(context.Background(), "nobody", "s3cret"); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v, want ErrInvalidCredentials", err)
	}
}

func TestListClients(t *testing.T) {
	revoked := clientRow("Ghost", "2023-01-01", 1)
	revoked.Deleted = true
	repo := &fakeClientRepo{rows: []db_models.Client{
		clientRow("Maria", "2024-01-01", 12, "Viki Pass"),
		revoked,
	}}
	svc := NewAdminService(&fakeAdminRepo{}, repo)

	clients, err := svc.ListClients(context.Background())
	if err != nil {
		t.Fatalf("ListClients failed: %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("clients = %d, want every row including deleted ones", len(clients))
	}
	// the listing must expose the row ids that feed update and delete
	for _, c := range clients {
		if c.ID.String() == "" {
			t.Error("listed client missing its id")
		}
	}

	if _, err := NewAdminService(&fakeAdminRepo{}, &fakeClientRepo{fail: true}).ListClients(context.Background()); !errors.Is(err, utils.ErrDatabaseError) {
		t.Errorf("repo failure err = %v, want ErrDatabaseError", err)
	}
}

func TestSaveClientInsertsWithoutID(t *testing.T) {
	repo := &fakeClientRepo{}
	svc := NewAdminService(&fakeAdminRepo{}, repo)

	err := svc.SaveClient(context.Background(), request_models.SaveClientRequest{
		PhoneNumber:   "(11) 98765-4321",
		ClientName:    "Maria",
		Subscriptions: []string{"Viki Pass"},
	})
	if err != nil {
		t.Fatalf("SaveClient failed: %v", err)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(repo.rows))
	}
	if repo.rows[0].PhoneNumber != "11987654321" {
		t.Errorf("phone = %q, must be stored cleaned", repo.rows[0].PhoneNumber)
	}
}

func TestSaveClientRejectsBadInput(t *testing.T) {
	svc := NewAdminService(&fakeAdminRepo{}, &fakeClientRepo{})

	err := svc.SaveClient(context.Background(), request_models.SaveClientRequest{PhoneNumber: "abc"})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("digitless phone err = %v, want ErrInvalidInput", err)
	}

	err = svc.SaveClient(context.Background(), request_models.SaveClientRequest{
		PhoneNumber: "11987654321",
		ID:          "not-a-uuid",
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("malformed id err = %v, want ErrInvalidInput", err)
	}
}

func TestResetAllClientPasswordsSparesTestUser(t *testing.T) {
	repo := &fakeClientRepo{}
	svc := NewAdminService(&fakeAdminRepo{}, repo)

	if err := svc.ResetAllClientPasswords(context.Background()); err != nil {
		t.Fatalf("ResetAllClientPasswords failed: %v", err)
	}
	if repo.resetKeepPhone != TestUserPhone {
		t.Errorf("keepPhone = %q, the shared test account must keep its password", repo.resetKeepPhone)
	}
}
