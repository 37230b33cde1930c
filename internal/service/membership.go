// internal/service/membership.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cipherhaven/cipherhaven/internal/domain"
	"github.com/cipherhaven/cipherhaven/internal/email"
	"github.com/cipherhaven/cipherhaven/internal/email/mailer"
	"github.com/cipherhaven/cipherhaven/internal/model"
	"github.com/cipherhaven/cipherhaven/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MembershipService drives the membership state machine: invitations, the
// accept/confirm handshake, role changes and removal. Every mutating path
// runs under the organization's lock and re-reads storage before deciding.
type MembershipService struct {
	membershipRepo repository.MembershipRepositoryIface
	userRepo       repository.UserRepositoryIface
	orgRepo        repository.OrganizationRepositoryIface
	collectionRepo repository.CollectionRepositoryIface
	emailService   *email.Service
	locker         *OrgLocker
	validate       *validator.Validate
}

func NewMembershipService(
	membershipRepo repository.MembershipRepositoryIface,
	userRepo repository.UserRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	collectionRepo repository.CollectionRepositoryIface,
	emailService *email.Service,
	locker *OrgLocker,
) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		orgRepo:        orgRepo,
		collectionRepo: collectionRepo,
		emailService:   emailService,
		locker:         locker,
		validate:       validator.New(),
	}
}

// canModifyRole is the single authorization predicate shared by invite,
// confirm, role changes, edits and removal: anything whose current or new
// role is admin or owner takes an owner actor.
func canModifyRole(actor, current, newRole model.Role) bool {
	return actor.CanManage(current) && actor.CanManage(newRole)
}

// lastOwnerGuard rejects changes that would strip the organization of its
// last confirmed owner. Callers hold the org lock; the count is read fresh
// from storage right before the write.
func (s *MembershipService) lastOwnerGuard(ctx context.Context, m *model.Membership) error {
	if m.Role != model.RoleOwner {
		return nil
	}
	owners, err := s.membershipRepo.CountConfirmedOwners(ctx, m.OrganizationID)
	if err != nil {
		return err
	}
	if owners <= 1 {
		return domain.ErrLastOwner
	}
	return nil
}

// fetchInOrg loads a membership and checks it belongs to the organization the
// caller is scoped to.
func (s *MembershipService) fetchInOrg(ctx context.Context, membershipID, orgID uuid.UUID) (*model.Membership, error) {
	m, err := s.membershipRepo.FindByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	if m.OrganizationID != orgID {
		return nil, domain.ErrMembershipNotFound
	}
	return m, nil
}

type GrantInput struct {
	CollectionID uuid.UUID `json:"collection_id" validate:"required"`
	ReadOnly     bool      `json:"read_only"`
}

type InviteInput struct {
	OrgID       uuid.UUID    `json:"-"`
	ActorRole   model.Role   `json:"-"`
	Emails      []string     `json:"emails" validate:"required,min=1,dive,required,email"`
	Role        model.Role   `json:"role"`
	AccessAll   bool         `json:"access_all"`
	Collections []GrantInput `json:"collections"`
}

// Invite creates invited memberships for a batch of addresses. The whole
// batch lands atomically: one unknown email or existing member fails the
// entire call with nothing persisted.
func (s *MembershipService) Invite(ctx context.Context, input InviteInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if _, ok := model.ParseRole(string(input.Role)); !ok {
		return domain.ErrInvalidRole
	}
	if input.Role != model.RoleUser && input.ActorRole != model.RoleOwner {
		return domain.ErrForbidden
	}

	org, err := s.orgRepo.FindByID(ctx, input.OrgID)
	if err != nil {
		return err
	}

	unlock := s.locker.Lock(input.OrgID)
	defer unlock()

	// Collections are validated up front so no membership is written when
	// any grant points outside the organization.
	if !input.AccessAll {
		for _, g := range input.Collections {
			if _, err := s.collectionRepo.FindByIDAndOrg(ctx, g.CollectionID, input.OrgID); err != nil {
				return err
			}
		}
	}

	memberships := make([]*model.Membership, 0, len(input.Emails))
	grants := make([]*model.CollectionGrant, 0, len(input.Emails)*len(input.Collections))
	invited := make([]*model.User, 0, len(input.Emails))

	for _, addr := range input.Emails {
		user, err := s.userRepo.FindByEmail(ctx, addr)
		if err != nil {
			return err
		}

		_, err = s.membershipRepo.FindByUserAndOrg(ctx, user.ID, input.OrgID)
		if err == nil {
			return domain.ErrAlreadyMember
		}
		if !errors.Is(err, domain.ErrMembershipNotFound) {
			return err
		}

		memberships = append(memberships, &model.Membership{
			ID:             uuid.New(),
			OrganizationID: input.OrgID,
			UserID:         user.ID,
			Role:           input.Role,
			Status:         model.StatusInvited,
			AccessAll:      input.AccessAll,
		})
		if !input.AccessAll {
			for _, g := range input.Collections {
				grants = append(grants, &model.CollectionGrant{
					CollectionID: g.CollectionID,
					UserID:       user.ID,
					ReadOnly:     g.ReadOnly,
				})
			}
		}
		invited = append(invited, user)
	}

	if err := s.membershipRepo.CreateAll(ctx, memberships, grants); err != nil {
		return err
	}

	// Invitation mail is best effort once the memberships are committed.
	if s.emailService != nil {
		for _, user := range invited {
			if err := mailer.SendOrgInvite(s.emailService, user.Email, user.Name, org.Name); err != nil {
				slog.WarnContext(ctx, "failed to send invite email",
					"email", user.Email, "org_id", org.ID, "error", err)
			}
		}
	}

	return nil
}

// Accept is the invitee's half of the handshake: it flips their own
// membership from invited to accepted so an admin can confirm it.
func (s *MembershipService) Accept(ctx context.Context, orgID, membershipID, actingUserID uuid.UUID) (*model.Membership, error) {
	unlock := s.locker.Lock(orgID)
	defer unlock()

	m, err := s.fetchInOrg(ctx, membershipID, orgID)
	if err != nil {
		return nil, err
	}
	if m.UserID != actingUserID {
		return nil, domain.ErrForbidden
	}
	if m.Status != model.StatusInvited {
		return nil, domain.ErrInvalidState
	}

	m.Status = model.StatusAccepted
	if err := s.membershipRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

type ConfirmInput struct {
	OrgID        uuid.UUID  `json:"-"`
	MembershipID uuid.UUID  `json:"-"`
	ActorRole    model.Role `json:"-"`
	Key          string     `json:"key" validate:"required"`
}

// Confirm completes the handshake: the confirming admin or owner hands over
// the organization key re-encrypted for the new member.
func (s *MembershipService) Confirm(ctx context.Context, input ConfirmInput) (*model.Membership, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	unlock := s.locker.Lock(input.OrgID)
	defer unlock()

	m, err := s.fetchInOrg(ctx, input.MembershipID, input.OrgID)
	if err != nil {
		return nil, err
	}
	// No role change happens here, so the predicate runs against the
	// membership's current role twice.
	if !canModifyRole(input.ActorRole, m.Role, m.Role) {
		return nil, domain.ErrForbidden
	}
	if m.Status != model.StatusAccepted {
		return nil, domain.ErrInvalidState
	}

	m.Status = model.StatusConfirmed
	m.EncryptedKey = input.Key
	if err := s.membershipRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

type SetRoleInput struct {
	OrgID        uuid.UUID  `json:"-"`
	MembershipID uuid.UUID  `json:"-"`
	ActorRole    model.Role `json:"-"`
	NewRole      model.Role `json:"role"`
}

// SetRole changes a membership's role, guarding both the role hierarchy and
// the owner quorum.
func (s *MembershipService) SetRole(ctx context.Context, input SetRoleInput) (*model.Membership, error) {
	if _, ok := model.ParseRole(string(input.NewRole)); !ok {
		return nil, domain.ErrInvalidRole
	}

	unlock := s.locker.Lock(input.OrgID)
	defer unlock()

	m, err := s.fetchInOrg(ctx, input.MembershipID, input.OrgID)
	if err != nil {
		return nil, err
	}
	if !canModifyRole(input.ActorRole, m.Role, input.NewRole) {
		return nil, domain.ErrForbidden
	}
	if input.NewRole != model.RoleOwner {
		if err := s.lastOwnerGuard(ctx, m); err != nil {
			return nil, err
		}
	}

	m.Role = input.NewRole
	if err := s.membershipRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

type UpdateMemberInput struct {
	OrgID        uuid.UUID    `json:"-"`
	MembershipID uuid.UUID    `json:"-"`
	ActorRole    model.Role   `json:"-"`
	Role         model.Role   `json:"role"`
	AccessAll    bool         `json:"access_all"`
	Collections  []GrantInput `json:"collections"`
}

// Update edits a membership in one shot: role, the access_all flag and the
// explicit grant list. The old grant set is dropped and, unless access_all
// is on, replaced by the submitted one in the same transaction as the
// membership write.
func (s *MembershipService) Update(ctx context.Context, input UpdateMemberInput) (*model.Membership, error) {
	if _, ok := model.ParseRole(string(input.Role)); !ok {
		return nil, domain.ErrInvalidRole
	}

	unlock := s.locker.Lock(input.OrgID)
	defer unlock()

	m, err := s.fetchInOrg(ctx, input.MembershipID, input.OrgID)
	if err != nil {
		return nil, err
	}
	if !canModifyRole(input.ActorRole, m.Role, input.Role) {
		return nil, domain.ErrForbidden
	}
	if m.Role == model.RoleOwner && input.Role != model.RoleOwner {
		if err := s.lastOwnerGuard(ctx, m); err != nil {
			return nil, err
		}
	}

	var grants []*model.CollectionGrant
	if !input.AccessAll {
		for _, g := range input.Collections {
			if _, err := s.collectionRepo.FindByIDAndOrg(ctx, g.CollectionID, input.OrgID); err != nil {
				return nil, err
			}
			grants = append(grants, &model.CollectionGrant{
				CollectionID: g.CollectionID,
				UserID:       m.UserID,
				ReadOnly:     g.ReadOnly,
			})
		}
	}

	m.Role = input.Role
	m.AccessAll = input.AccessAll
	if err := s.membershipRepo.UpdateWithGrants(ctx, m, grants); err != nil {
		return nil, err
	}
	return m, nil
}

// Remove deletes a membership and its grants, subject to the same role rule
// as edits and to the owner quorum.
func (s *MembershipService) Remove(ctx context.Context, orgID, membershipID uuid.UUID, actorRole model.Role) error {
	unlock := s.locker.Lock(orgID)
	defer unlock()

	m, err := s.fetchInOrg(ctx, membershipID, orgID)
	if err != nil {
		return err
	}
	if !canModifyRole(actorRole, m.Role, m.Role) {
		return domain.ErrForbidden
	}
	if err := s.lastOwnerGuard(ctx, m); err != nil {
		return err
	}

	return s.membershipRepo.DeleteWithGrants(ctx, m)
}

// Get returns a single membership scoped to the organization.
func (s *MembershipService) Get(ctx context.Context, orgID, membershipID uuid.UUID) (*model.Membership, error) {
	return s.fetchInOrg(ctx, membershipID, orgID)
}
