// internal/model/membership.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Role orders a member's privilege within an organization. The zero value is
// not a valid role.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner"
)

// ParseRole maps wire-level role names onto the enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleOwner:
		return Role(s), true
	}
	return "", false
}

// CanManage reports whether an actor holding role r may create, edit, confirm
// or remove a membership holding target. Admins and Owners manage plain
// users; anything touching an Admin or Owner membership takes an Owner.
func (r Role) CanManage(target Role) bool {
	return target == RoleUser || r == RoleOwner
}

type MembershipStatus string

const (
	// StatusInvited is the state created by an invite: the user has been
	// offered a seat but holds no organization key.
	StatusInvited MembershipStatus = "invited"
	// StatusAccepted means the invitee claimed the invitation and published
	// key material for the confirming admin to encrypt against.
	StatusAccepted MembershipStatus = "accepted"
	// StatusConfirmed means an admin or owner finished the handshake and the
	// member now holds the re-encrypted organization key.
	StatusConfirmed MembershipStatus = "confirmed"
)

// Membership ties one user to one organization. AccessAll supersedes any
// stored CollectionGrant rows; effective access is always recomputed from
// both signals.
type Membership struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_membership_org_user" json:"organization_id"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_membership_org_user" json:"user_id"`
	Role           Role             `gorm:"type:membership_role;not null;default:'user'" json:"role"`
	Status         MembershipStatus `gorm:"type:membership_status;not null;default:'invited'" json:"status"`
	AccessAll      bool             `gorm:"not null;default:false" json:"access_all"`
	EncryptedKey   string           `gorm:"type:text" json:"-"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	User         User         `gorm:"foreignKey:UserID" json:"-"`
}

// ConfirmedOwner reports whether this membership counts toward the
// organization's owner quorum.
func (m *Membership) ConfirmedOwner() bool {
	return m.Role == RoleOwner && m.Status == StatusConfirmed
}
