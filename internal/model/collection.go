// internal/model/collection.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Collection struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

// CollectionGrant is an explicit per-user access row. It only drives access
// while the user's membership has AccessAll off; rows may sit inert when
// AccessAll is on and re-surface if it is toggled off again.
type CollectionGrant struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CollectionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_grant_collection_user" json:"collection_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_grant_collection_user" json:"user_id"`
	ReadOnly     bool      `gorm:"not null;default:false" json:"read_only"`
	CreatedAt    time.Time `json:"created_at"`

	Collection Collection `gorm:"foreignKey:CollectionID" json:"-"`
	User       User       `gorm:"foreignKey:UserID" json:"-"`
}
