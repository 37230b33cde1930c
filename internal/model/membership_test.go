package model

import "testing"

func TestRoleCanManage(t *testing.T) {
	tests := []struct {
		actor  Role
		target Role
		want   bool
	}{
		{RoleOwner, RoleOwner, true},
		{RoleOwner, RoleAdmin, true},
		{RoleOwner, RoleUser, true},
		{RoleAdmin, RoleOwner, false},
		{RoleAdmin, RoleAdmin, false},
		{RoleAdmin, RoleUser, true},
		{RoleUser, RoleOwner, false},
		{RoleUser, RoleAdmin, false},
		{RoleUser, RoleUser, true},
	}

	for _, tt := range tests {
		if got := tt.actor.CanManage(tt.target); got != tt.want {
			t.Errorf("CanManage(%s -> %s) = %v, want %v", tt.actor, tt.target, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"user", "admin", "owner"} {
		if _, ok := ParseRole(valid); !ok {
			t.Errorf("ParseRole(%q) should succeed", valid)
		}
	}
	for _, invalid := range []string{"", "superadmin", "Owner", "2"} {
		if _, ok := ParseRole(invalid); ok {
			t.Errorf("ParseRole(%q) should fail", invalid)
		}
	}
}

func TestConfirmedOwner(t *testing.T) {
	tests := []struct {
		role   Role
		status MembershipStatus
		want   bool
	}{
		{RoleOwner, StatusConfirmed, true},
		{RoleOwner, StatusInvited, false},
		{RoleOwner, StatusAccepted, false},
		{RoleAdmin, StatusConfirmed, false},
		{RoleUser, StatusConfirmed, false},
	}

	for _, tt := range tests {
		m := &Membership{Role: tt.role, Status: tt.status}
		if got := m.ConfirmedOwner(); got != tt.want {
			t.Errorf("ConfirmedOwner(%s, %s) = %v, want %v", tt.role, tt.status, got, tt.want)
		}
	}
}
