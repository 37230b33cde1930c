// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	BillingEmail string    `gorm:"type:citext;not null" json:"billing_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Memberships []Membership `gorm:"foreignKey:OrganizationID" json:"-"`
	Collections []Collection `gorm:"foreignKey:OrganizationID" json:"-"`
}
