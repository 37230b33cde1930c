// internal/middleware/org.go
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cipherhaven/cipherhaven/internal/domain"
	"github.com/cipherhaven/cipherhaven/internal/model"
	"github.com/cipherhaven/cipherhaven/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	// OrgIDKey carries the organization id from the route.
	OrgIDKey = contextKey("org_id")
	// OrgRoleKey carries the acting user's resolved role in that organization.
	OrgRoleKey = contextKey("org_role")
)

// OrgID extracts the scoped organization id.
func OrgID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(OrgIDKey).(uuid.UUID)
	return id, ok
}

// OrgRole extracts the acting user's role within the scoped organization.
func OrgRole(ctx context.Context) (model.Role, bool) {
	role, ok := ctx.Value(OrgRoleKey).(model.Role)
	return role, ok
}

// RequireOrgMember resolves the acting user's membership in the {orgID}
// route parameter and rejects the request unless the membership is confirmed
// and holds at least minRole. The resolved role is handed to handlers
// through the context, so services receive a pre-verified actor role.
func RequireOrgMember(membershipRepo repository.MembershipRepositoryIface, minRole model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserID(r.Context())
			if !ok {
				respondForbidden(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			orgID, err := uuid.Parse(chi.URLParam(r, "orgID"))
			if err != nil {
				respondForbidden(w, http.StatusBadRequest, "Invalid organization id")
				return
			}

			m, err := membershipRepo.FindByUserAndOrg(r.Context(), userID, orgID)
			if err != nil {
				if errors.Is(err, domain.ErrMembershipNotFound) {
					respondForbidden(w, http.StatusForbidden, "Not a member of this organization")
					return
				}
				respondForbidden(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			if m.Status != model.StatusConfirmed || !atLeast(m.Role, minRole) {
				respondForbidden(w, http.StatusForbidden, "Insufficient organization role")
				return
			}

			ctx := context.WithValue(r.Context(), OrgIDKey, orgID)
			ctx = context.WithValue(ctx, OrgRoleKey, m.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func atLeast(role, min model.Role) bool {
	rank := map[model.Role]int{model.RoleUser: 0, model.RoleAdmin: 1, model.RoleOwner: 2}
	return rank[role] >= rank[min]
}

func respondForbidden(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "error": message})
}
