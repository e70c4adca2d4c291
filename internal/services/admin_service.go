package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"doramahub/internal/models/db_models"
	"doramahub/internal/models/request_models"
	"doramahub/internal/repositories"
	"doramahub/pkg/utils"
)

type AdminServiceInterface interface {
	Login(ctx context.Context, username, password string) (string, error)
	ListClients(ctx context.Context) ([]db_models.Client, error)
	SaveClient(ctx context.Context, req request_models.SaveClientRequest) error
	DeleteClient(ctx context.Context, id string) error
	UpdateClientName(ctx context.Context, phone, name string) error
	ResetAllClientPasswords(ctx context.Context) error
}

type AdminService struct {
	adminRepo  repositories.AdminRepository
	clientRepo repositories.ClientRepository
}

func NewAdminService(adminRepo repositories.AdminRepository, clientRepo repositories.ClientRepository) AdminServiceInterface {
	return &AdminService{
		adminRepo:  adminRepo,
		clientRepo: clientRepo,
	}
}

func (s *AdminService) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if admin == nil {
		return "", utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(admin.PasswordHash, password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(admin.ID, admin.Role)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return token, nil
}

// ListClients returns every purchase row, deleted ones included, so the
// operator can see and restore revoked accounts. Row ids from this listing
// feed the update and delete operations.
func (s *AdminService) ListClients(ctx context.Context) ([]db_models.Client, error) {
	rows, err := s.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rows, nil
}

func (s *AdminService) SaveClient(ctx context.Context, req request_models.SaveClientRequest) error {
	phone := utils.CleanPhone(req.PhoneNumber)
	if phone == "" {
		return utils.ErrInvalidInput
	}

	client := &db_models.Client{
		PhoneNumber:        phone,
		ClientName:         req.ClientName,
		ClientPassword:     req.ClientPassword,
		PurchaseDate:       req.PurchaseDate,
		DurationMonths:     req.DurationMonths,
		Subscriptions:      db_models.ServiceList(req.Subscriptions),
		IsDebtor:           req.IsDebtor,
		IsContacted:        req.IsContacted,
		Deleted:            req.Deleted,
		OverrideExpiration: req.OverrideExpiration,
	}

	if req.ID == "" {
		client.GameProgress = datatypes.JSON("{}")
		if err := s.clientRepo.Insert(ctx, client); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return utils.ErrInvalidInput
	}
	client.ID = id
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AdminService) DeleteClient(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrInvalidInput
	}
	if err := s.clientRepo.SoftDelete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AdminService) UpdateClientName(ctx context.Context, phone, name string) error {
	clean := utils.CleanPhone(phone)
	if clean == "" || name == "" {
		return utils.ErrInvalidInput
	}
	if err := s.clientRepo.UpdateName(ctx, clean, name); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// ResetAllClientPasswords wipes every stored password except the shared
// test account, forcing re-registration on next login.
func (s *AdminService) ResetAllClientPasswords(ctx context.Context) error {
	if err := s.clientRepo.ResetAllPasswords(ctx, TestUserPhone); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
