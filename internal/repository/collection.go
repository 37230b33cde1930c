// internal/repository/collection.go
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

type CollectionRepositoryIface interface {
	Create(ctx context.Context, c *model.Collection) error
	FindByIDAndOrg(ctx context.Context, id, orgID uuid.UUID) (*model.Collection, error)
	FindByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.Collection, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Collection, error)
	FindGrantedByUserAndOrg(ctx context.Context, userID, orgID uuid.UUID) ([]*model.Collection, error)
	Update(ctx context.Context, c *model.Collection) error
	DeleteWithGrants(ctx context.Context, c *model.Collection) error
}

type CollectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

func (r *CollectionRepository) Create(ctx context.Context, c *model.Collection) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}
	return nil
}

func (r *CollectionRepository) FindByIDAndOrg(ctx context.Context, id, orgID uuid.UUID) (*model.Collection, error) {
	var c model.Collection
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("finding collection: %w", err)
	}
	return &c, nil
}

func (r *CollectionRepository) FindByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.Collection, error) {
	var collections []*model.Collection
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at ASC").
		Find(&collections).Error
	if err != nil {
		return nil, fmt.Errorf("finding organization collections: %w", err)
	}
	return collections, nil
}

// FindByUser returns every collection the user can see across all of their
// organizations: all collections of organizations where their membership has
// access_all, plus explicitly granted collections elsewhere.
func (r *CollectionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Collection, error) {
	var collections []*model.Collection
	err := r.db.WithContext(ctx).
		Distinct("collections.*").
		Joins("LEFT JOIN collection_grants ON collection_grants.collection_id = collections.id AND collection_grants.user_id = ?", userID).
		Joins("JOIN memberships ON memberships.organization_id = collections.organization_id AND memberships.user_id = ?", userID).
		Where("memberships.access_all = ? OR collection_grants.id IS NOT NULL", true).
		Order("collections.created_at ASC").
		Find(&collections).Error
	if err != nil {
		return nil, fmt.Errorf("finding user collections: %w", err)
	}
	return collections, nil
}

// FindGrantedByUserAndOrg returns the collections a user holds explicit
// grants on within one organization, ignoring access_all.
func (r *CollectionRepository) FindGrantedByUserAndOrg(ctx context.Context, userID, orgID uuid.UUID) ([]*model.Collection, error) {
	var collections []*model.Collection
	err := r.db.WithContext(ctx).
		Joins("JOIN collection_grants ON collection_grants.collection_id = collections.id").
		Where("collection_grants.user_id = ? AND collections.organization_id = ?", userID, orgID).
		Order("collections.created_at ASC").
		Find(&collections).Error
	if err != nil {
		return nil, fmt.Errorf("finding granted collections: %w", err)
	}
	return collections, nil
}

func (r *CollectionRepository) Update(ctx context.Context, c *model.Collection) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("updating collection: %w", err)
	}
	return nil
}

// DeleteWithGrants removes a collection and every grant referencing it.
func (r *CollectionRepository) DeleteWithGrants(ctx context.Context, c *model.Collection) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", c.ID).Delete(&model.CollectionGrant{}).Error; err != nil {
			return fmt.Errorf("deleting collection grants: %w", err)
		}

		if err := tx.Delete(&model.Collection{}, "id = ?", c.ID).Error; err != nil {
			return fmt.Errorf("deleting collection: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
