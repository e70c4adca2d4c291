package services

import (
	"context"
	"hash/fnv"
	"log"
	"time"

	"doramahub/internal/models/response_models"
	"doramahub/internal/repositories"
	"doramahub/pkg/utils"
)

const freshCredentialWindow = 24 * time.Hour

const alertFreshCredential = "Senha atualizada recentemente. Se o acesso falhar, tente novamente em instantes."

// CredentialServiceInterface assigns a pooled service login to a user.
// A nil credential with an empty alert means access is still pending.
type CredentialServiceInterface interface {
	Assign(ctx context.Context, phone, service string) (*response_models.CredentialInfo, string)
}

type CredentialService struct {
	credRepo repositories.CredentialRepository
}

func NewCredentialService(credRepo repositories.CredentialRepository) CredentialServiceInterface {
	return &CredentialService{credRepo: credRepo}
}

// Assign picks from the visible pool for the service: exact name match
// first, substring fallback for the renamed-service rows. The pick is a
// stable hash of the phone so a user keeps the same login between visits.
func (s *CredentialService) Assign(ctx context.Context, phone, service string) (*response_models.CredentialInfo, string) {
	creds, err := s.credRepo.FindVisibleByService(ctx, service)
	if err != nil {
		log.Printf("credential lookup failed for %q: %v", service, err)
		return nil, ""
	}
	if len(creds) == 0 {
		creds, err = s.credRepo.FindVisibleMatching(ctx, service)
		if err != nil {
			log.Printf("credential fallback lookup failed for %q: %v", service, err)
			return nil, ""
		}
	}
	if len(creds) == 0 {
		return nil, ""
	}

	pick := creds[assignmentIndex(phone, len(creds))]
	info := &response_models.CredentialInfo{
		ID:          pick.ID.String(),
		Service:     pick.Service,
		Email:       pick.Email,
		Password:    pick.Password,
		PublishedAt: pick.PublishedAt,
	}

	alert := ""
	if pick.PublishedAt > 0 {
		published := time.Unix(pick.PublishedAt, 0)
		if time.Since(published) < freshCredentialWindow {
			alert = alertFreshCredential
		}
	}
	return info, alert
}

func assignmentIndex(phone string, poolSize int) int {
	h := fnv.New32a()
	h.Write([]byte(utils.CleanPhone(phone)))
	return int(h.Sum32() % uint32(poolSize))
}
