// internal/repository/grant.go
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

type GrantRepositoryIface interface {
	Replace(ctx context.Context, orgID, userID uuid.UUID, grants []*model.CollectionGrant) error
	FindByCollection(ctx context.Context, collectionID uuid.UUID) ([]*model.CollectionGrant, error)
	FindByCollectionAndUser(ctx context.Context, collectionID, userID uuid.UUID) (*model.CollectionGrant, error)
	FindByOrgAndUser(ctx context.Context, orgID, userID uuid.UUID) ([]*model.CollectionGrant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type GrantRepository struct {
	db *gorm.DB
}

func NewGrantRepository(db *gorm.DB) *GrantRepository {
	return &GrantRepository{db: db}
}

// Replace drops every grant the user holds within the organization and
// inserts the new set in the same transaction.
func (r *GrantRepository) Replace(ctx context.Context, orgID, userID uuid.UUID, grants []*model.CollectionGrant) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND collection_id IN (?)", userID,
				tx.Model(&model.Collection{}).Select("id").Where("organization_id = ?", orgID)).
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

func (r *GrantRepository) FindByCollection(ctx context.Context, collectionID uuid.UUID) ([]*model.CollectionGrant, error) {
	var grants []*model.CollectionGrant
	err := r.db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Order("created_at ASC").
		Find(&grants).Error
	if err != nil {
		return nil, fmt.Errorf("finding collection grants: %w", err)
	}
	return grants, nil
}

func (r *GrantRepository) FindByCollectionAndUser(ctx context.Context, collectionID, userID uuid.UUID) (*model.CollectionGrant, error) {
	var grant model.CollectionGrant
	err := r.db.WithContext(ctx).
		Where("collection_id = ? AND user_id = ?", collectionID, userID).
		First(&grant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGrantNotFound
		}
		return nil, fmt.Errorf("finding grant: %w", err)
	}
	return &grant, nil
}

func (r *GrantRepository) FindByOrgAndUser(ctx context.Context, orgID, userID uuid.UUID) ([]*model.CollectionGrant, error) {
	var grants []*model.CollectionGrant
	err := r.db.WithContext(ctx).
		Joins("JOIN collections ON collections.id = collection_grants.collection_id").
		Where("collections.organization_id = ? AND collection_grants.user_id = ?", orgID, userID).
		Order("collection_grants.created_at ASC").
		Find(&grants).Error
	if err != nil {
		return nil, fmt.Errorf("finding user grants in organization: %w", err)
	}
	return grants, nil
}

func (r *GrantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.CollectionGrant{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting grant: %w", err)
	}
	return nil
}
