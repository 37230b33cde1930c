// internal/service/organization.go
package service

import (
	"context"
	"fmt"

	"github.com/cipherhaven/cipherhaven/internal/auth"
	"github.com/cipherhaven/cipherhaven/internal/domain"
	"github.com/cipherhaven/cipherhaven/internal/model"
	"github.com/cipherhaven/cipherhaven/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OrganizationService owns the organization lifecycle: atomic creation with
// the founding owner and default collection, updates, and cascading deletes.
type OrganizationService struct {
	orgRepo        repository.OrganizationRepositoryIface
	membershipRepo repository.MembershipRepositoryIface
	userRepo       repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	locker         *OrgLocker
	validate       *validator.Validate
}

func NewOrganizationService(
	orgRepo repository.OrganizationRepositoryIface,
	membershipRepo repository.MembershipRepositoryIface,
	userRepo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	locker *OrgLocker,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		locker:         locker,
		validate:       validator.New(),
	}
}

type CreateOrganizationInput struct {
	UserID         uuid.UUID `json:"-"`
	Name           string    `json:"name" validate:"required"`
	BillingEmail   string    `json:"billing_email" validate:"required,email"`
	CollectionName string    `json:"collection_name" validate:"required"`
	Key            string    `json:"key" validate:"required"`
	// PlanType is accepted for API compatibility and ignored; every
	// organization runs on the same plan.
	PlanType string `json:"plan_type"`
}

// Create persists a new organization, the founding membership for the
// requesting user (owner, confirmed, access to everything) and the initial
// collection. Nothing is left behind if any of the three writes fails.
func (s *OrganizationService) Create(ctx context.Context, input CreateOrganizationInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	org := &model.Organization{
		ID:           uuid.New(),
		Name:         input.Name,
		BillingEmail: input.BillingEmail,
	}
	founder := &model.Membership{
		ID:           uuid.New(),
		UserID:       input.UserID,
		Role:         model.RoleOwner,
		Status:       model.StatusConfirmed,
		AccessAll:    true,
		EncryptedKey: input.Key,
	}
	collection := &model.Collection{
		ID:   uuid.New(),
		Name: input.CollectionName,
	}

	if err := s.orgRepo.CreateWithFounder(ctx, org, founder, collection); err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	return org, nil
}

func (s *OrganizationService) Get(ctx context.Context, orgID uuid.UUID) (*model.Organization, error) {
	return s.orgRepo.FindByID(ctx, orgID)
}

type UpdateOrganizationInput struct {
	OrgID        uuid.UUID `json:"-"`
	Name         string    `json:"name" validate:"required"`
	BillingEmail string    `json:"billing_email" validate:"required,email"`
}

func (s *OrganizationService) Update(ctx context.Context, input UpdateOrganizationInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	org, err := s.orgRepo.FindByID(ctx, input.OrgID)
	if err != nil {
		return nil, err
	}

	org.Name = input.Name
	org.BillingEmail = input.BillingEmail

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, fmt.Errorf("updating organization: %w", err)
	}
	return org, nil
}

type DeleteOrganizationInput struct {
	OrgID    uuid.UUID `json:"-"`
	UserID   uuid.UUID `json:"-"`
	Password string    `json:"password" validate:"required"`
}

// Delete removes the organization and everything it owns. The requesting
// owner re-proves their password first.
func (s *OrganizationService) Delete(ctx context.Context, input DeleteOrganizationInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return domain.ErrInvalidCredentials
	}

	if _, err := s.orgRepo.FindByID(ctx, input.OrgID); err != nil {
		return err
	}

	unlock := s.locker.Lock(input.OrgID)
	defer unlock()

	if err := s.orgRepo.Delete(ctx, input.OrgID); err != nil {
		return fmt.Errorf("deleting organization: %w", err)
	}
	return nil
}

// ListMembers returns every membership in the organization, user preloaded,
// oldest first.
func (s *OrganizationService) ListMembers(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error) {
	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return nil, err
	}
	return s.membershipRepo.FindByOrg(ctx, orgID)
}
