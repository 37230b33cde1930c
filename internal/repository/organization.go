// internal/repository/organization.go
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

type OrganizationRepositoryIface interface {
	CreateWithFounder(ctx context.Context, org *model.Organization, founder *model.Membership, defaultCollection *model.Collection) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// CreateWithFounder persists a new organization together with its founding
// membership and default collection. All three rows land or none do.
func (r *OrganizationRepository) CreateWithFounder(ctx context.Context, org *model.Organization, founder *model.Membership, defaultCollection *model.Collection) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return fmt.Errorf("creating organization: %w", err)
		}

		founder.OrganizationID = org.ID
		if err := tx.Create(founder).Error; err != nil {
			return fmt.Errorf("creating founding membership: %w", err)
		}

		defaultCollection.OrganizationID = org.ID
		if err := tx.Create(defaultCollection).Error; err != nil {
			return fmt.Errorf("creating default collection: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Save(org).Error; err != nil {
		return fmt.Errorf("updating organization: %w", err)
	}
	return nil
}

// Delete cascades in dependency order: grants belonging to the organization's
// collections, then memberships, then collections, then the organization row.
func (r *OrganizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("collection_id IN (?)", tx.Model(&model.Collection{}).Select("id").Where("organization_id = ?", id)).
			Delete(&model.CollectionGrant{}).Error; err != nil {
			return fmt.Errorf("deleting collection grants: %w", err)
		}

		if err := tx.Where("organization_id = ?", id).Delete(&model.Membership{}).Error; err != nil {
			return fmt.Errorf("deleting memberships: %w", err)
		}

		if err := tx.Where("organization_id = ?", id).Delete(&model.Collection{}).Error; err != nil {
			return fmt.Errorf("deleting collections: %w", err)
		}

		if err := tx.Delete(&model.Organization{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting organization: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// DB returns the underlying database connection
func (r *OrganizationRepository) DB() *gorm.DB {
	return r.db
}
