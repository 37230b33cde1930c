// internal/repository/membership.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cipherhaven/cipherhaven/internal/domain"
	"github.com/cipherhaven/cipherhaven/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepositoryIface interface {
	CreateAll(ctx context.Context, memberships []*model.Membership, grants []*model.CollectionGrant) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Membership, error)
	FindByUserAndOrg(ctx context.Context, userID, orgID uuid.UUID) (*model.Membership, error)
	FindByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error)
	CountConfirmedOwners(ctx context.Context, orgID uuid.UUID) (int64, error)
	Update(ctx context.Context, m *model.Membership) error
	UpdateWithGrants(ctx context.Context, m *model.Membership, grants []*model.CollectionGrant) error
	DeleteWithGrants(ctx context.Context, m *model.Membership) error
}

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// CreateAll inserts a batch of memberships and their initial grants in one
// transaction, so a multi-email invite either fully lands or not at all.
func (r *MembershipRepository) CreateAll(ctx context.Context, memberships []*model.Membership, grants []*model.CollectionGrant) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range memberships {
			// Uniqueness re-checked inside the transaction; the unique
			// index backstops races the keyed lock cannot see.
			var count int64
			if err := tx.Model(&model.Membership{}).
				Where("organization_id = ? AND user_id = ?", m.OrganizationID, m.UserID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("checking existing membership: %w", err)
			}
			if count > 0 {
				return domain.ErrAlreadyMember
			}

			if err := tx.Create(m).Error; err != nil {
				return fmt.Errorf("creating membership: %w", err)
			}
		}

		for _, g := range grants {
			if err := tx.Create(g).Error; err != nil {
				return fmt.Errorf("creating collection grant: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyMember) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *MembershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Membership, error) {
	var m model.Membership
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("finding membership: %w", err)
	}
	return &m, nil
}

func (r *MembershipRepository) FindByUserAndOrg(ctx context.Context, userID, orgID uuid.UUID) (*model.Membership, error) {
	var m model.Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND organization_id = ?", userID, orgID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("finding membership by user and org: %w", err)
	}
	return &m, nil
}

func (r *MembershipRepository) FindByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error) {
	var memberships []*model.Membership
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("organization_id = ?", orgID).
		Order("created_at ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, fmt.Errorf("finding organization memberships: %w", err)
	}
	return memberships, nil
}

func (r *MembershipRepository) CountConfirmedOwners(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("organization_id = ? AND role = ? AND status = ?", orgID, model.RoleOwner, model.StatusConfirmed).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting confirmed owners: %w", err)
	}
	return count, nil
}

func (r *MembershipRepository) Update(ctx context.Context, m *model.Membership) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("updating membership: %w", err)
	}
	return nil
}

// UpdateWithGrants saves an edited membership and swaps the user's grant set
// within the same organization in one transaction, so a failed edit leaves
// neither the role change nor a half-replaced grant list behind.
func (r *MembershipRepository) UpdateWithGrants(ctx context.Context, m *model.Membership, grants []*model.CollectionGrant) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(m).Error; err != nil {
			return fmt.Errorf("updating membership: %w", err)
		}

		if err := tx.
			Where("user_id = ? AND collection_id IN (?)", m.UserID,
				tx.Model(&model.Collection{}).Select("id").Where("organization_id = ?", m.OrganizationID)).
			Delete(&model.CollectionGrant{}).Error; err != nil {
			return fmt.Errorf("deleting old grants: %w", err)
		}

		for _, g := range grants {
			if err := tx.Create(g).Error; err != nil {
				return fmt.Errorf("creating grant: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// DeleteWithGrants removes a membership and every grant its user holds on
// collections of the same organization.
func (r *MembershipRepository) DeleteWithGrants(ctx context.Context, m *model.Membership) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND collection_id IN (?)", m.UserID,
				tx.Model(&model.Collection{}).Select("id").Where("organization_id = ?", m.OrganizationID)).
			Delete(&model.CollectionGrant{}).Error; err != nil {
			return fmt.Errorf("deleting member grants: %w", err)
		}

		if err := tx.Delete(&model.Membership{}, "id = ?", m.ID).Error; err != nil {
			return fmt.Errorf("deleting membership: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
