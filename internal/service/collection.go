// internal/service/collection.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cipherhaven/cipherhaven/internal/domain"
	"github.com/cipherhaven/cipherhaven/internal/model"
	"github.com/cipherhaven/cipherhaven/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CollectionService manages collections and reconciles a member's effective
// access from the two independent signals: the membership's access_all flag
// and explicit per-collection grants. access_all always wins when both
// exist; grant rows are never assumed absent.
type CollectionService struct {
	collectionRepo repository.CollectionRepositoryIface
	grantRepo      repository.GrantRepositoryIface
	membershipRepo repository.MembershipRepositoryIface
	orgRepo        repository.OrganizationRepositoryIface
	validate       *validator.Validate
}

func NewCollectionService(
	collectionRepo repository.CollectionRepositoryIface,
	grantRepo repository.GrantRepositoryIface,
	membershipRepo repository.MembershipRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
) *CollectionService {
	return &CollectionService{
		collectionRepo: collectionRepo,
		grantRepo:      grantRepo,
		membershipRepo: membershipRepo,
		orgRepo:        orgRepo,
		validate:       validator.New(),
	}
}

type CreateCollectionInput struct {
	OrgID uuid.UUID `json:"-"`
	Name  string    `json:"name" validate:"required"`
}

func (s *CollectionService) Create(ctx context.Context, input CreateCollectionInput) (*model.Collection, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.orgRepo.FindByID(ctx, input.OrgID); err != nil {
		return nil, err
	}

	collection := &model.Collection{
		ID:             uuid.New(),
		OrganizationID: input.OrgID,
		Name:           input.Name,
	}
	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		return nil, err
	}
	return collection, nil
}

type RenameCollectionInput struct {
	OrgID        uuid.UUID `json:"-"`
	CollectionID uuid.UUID `json:"-"`
	Name         string    `json:"name" validate:"required"`
}

func (s *CollectionService) Rename(ctx context.Context, input RenameCollectionInput) (*model.Collection, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	collection, err := s.collectionRepo.FindByIDAndOrg(ctx, input.CollectionID, input.OrgID)
	if err != nil {
		return nil, err
	}

	collection.Name = input.Name
	if err := s.collectionRepo.Update(ctx, collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// Delete removes a collection and cascades to its grants.
func (s *CollectionService) Delete(ctx context.Context, orgID, collectionID uuid.UUID) error {
	collection, err := s.collectionRepo.FindByIDAndOrg(ctx, collectionID, orgID)
	if err != nil {
		return err
	}
	return s.collectionRepo.DeleteWithGrants(ctx, collection)
}

func (s *CollectionService) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.Collection, error) {
	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return nil, err
	}
	return s.collectionRepo.FindByOrg(ctx, orgID)
}

// ListForUser returns every collection visible to the user across all their
// organizations.
func (s *CollectionService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.Collection, error) {
	return s.collectionRepo.FindByUser(ctx, userID)
}

// GetVisible returns the collection only when the acting user can see it,
// either through access_all or an explicit grant.
func (s *CollectionService) GetVisible(ctx context.Context, orgID, collectionID, userID uuid.UUID) (*model.Collection, error) {
	collection, err := s.collectionRepo.FindByIDAndOrg(ctx, collectionID, orgID)
	if err != nil {
		return nil, err
	}

	m, err := s.membershipRepo.FindByUserAndOrg(ctx, userID, orgID)
	if err != nil {
		if errors.Is(err, domain.ErrMembershipNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, err
	}
	if m.AccessAll {
		return collection, nil
	}

	if _, err := s.grantRepo.FindByCollectionAndUser(ctx, collectionID, userID); err != nil {
		if errors.Is(err, domain.ErrGrantNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, err
	}
	return collection, nil
}

// Effective resolves a membership's visible collections. access_all takes
// precedence over whatever grant rows happen to be stored; otherwise the
// granted set is exactly what the user sees.
func (s *CollectionService) Effective(ctx context.Context, m *model.Membership) ([]*model.Collection, error) {
	if m.AccessAll {
		return s.collectionRepo.FindByOrg(ctx, m.OrganizationID)
	}
	return s.collectionRepo.FindGrantedByUserAndOrg(ctx, m.UserID, m.OrganizationID)
}

type ReplaceGrantsInput struct {
	OrgID        uuid.UUID
	MembershipID uuid.UUID
	Grants       []GrantInput
}

// ReplaceGrants swaps a member's explicit grant set: existing grants within
// the organization are dropped and the submitted list is written, each entry
// checked to reference a collection of this organization. When the
// membership has access_all the call is a no-op; grants are irrelevant while
// the flag is on.
func (s *CollectionService) ReplaceGrants(ctx context.Context, input ReplaceGrantsInput) error {
	m, err := s.membershipRepo.FindByID(ctx, input.MembershipID)
	if err != nil {
		return err
	}
	if m.OrganizationID != input.OrgID {
		return domain.ErrMembershipNotFound
	}
	if m.AccessAll {
		return nil
	}

	grants := make([]*model.CollectionGrant, 0, len(input.Grants))
	for _, g := range input.Grants {
		if _, err := s.collectionRepo.FindByIDAndOrg(ctx, g.CollectionID, input.OrgID); err != nil {
			return err
		}
		grants = append(grants, &model.CollectionGrant{
			CollectionID: g.CollectionID,
			UserID:       m.UserID,
			ReadOnly:     g.ReadOnly,
		})
	}

	return s.grantRepo.Replace(ctx, input.OrgID, m.UserID, grants)
}

// CollectionMember pairs a membership with its access mode on one collection.
type CollectionMember struct {
	Membership *model.Membership `json:"membership"`
	ReadOnly   bool              `json:"read_only"`
}

// ListCollectionUsers returns every member who can reach the collection:
// explicit grantees with their read_only flag, plus access_all members, who
// always hold write access. Ordered by membership age.
func (s *CollectionService) ListCollectionUsers(ctx context.Context, orgID, collectionID uuid.UUID) ([]CollectionMember, error) {
	collection, err := s.collectionRepo.FindByIDAndOrg(ctx, collectionID, orgID)
	if err != nil {
		return nil, err
	}

	grants, err := s.grantRepo.FindByCollection(ctx, collection.ID)
	if err != nil {
		return nil, err
	}
	readOnlyByUser := make(map[uuid.UUID]bool, len(grants))
	for _, g := range grants {
		readOnlyByUser[g.UserID] = g.ReadOnly
	}

	memberships, err := s.membershipRepo.FindByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}

	var members []CollectionMember
	for _, m := range memberships {
		if m.AccessAll {
			members = append(members, CollectionMember{Membership: m})
			continue
		}
		if readOnly, ok := readOnlyByUser[m.UserID]; ok {
			members = append(members, CollectionMember{Membership: m, ReadOnly: readOnly})
		}
	}
	return members, nil
}

// RemoveUser deletes a single member's grant on one collection.
func (s *CollectionService) RemoveUser(ctx context.Context, orgID, collectionID, membershipID uuid.UUID) error {
	collection, err := s.collectionRepo.FindByIDAndOrg(ctx, collectionID, orgID)
	if err != nil {
		return err
	}

	m, err := s.membershipRepo.FindByID(ctx, membershipID)
	if err != nil {
		return err
	}
	if m.OrganizationID != orgID {
		return domain.ErrMembershipNotFound
	}

	grant, err := s.grantRepo.FindByCollectionAndUser(ctx, collection.ID, m.UserID)
	if err != nil {
		return err
	}
	return s.grantRepo.Delete(ctx, grant.ID)
}
