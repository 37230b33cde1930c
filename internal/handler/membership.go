// internal/handler/membership.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/cipherhaven/cipherhaven/internal/middleware"
	"github.com/cipherhaven/cipherhaven/internal/model"
	"github.com/cipherhaven/cipherhaven/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type MembershipHandler struct {
	membershipService *service.MembershipService
	collectionService *service.CollectionService
}

func NewMembershipHandler(membershipService *service.MembershipService, collectionService *service.CollectionService) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
		collectionService: collectionService,
	}
}

// Invite handles POST /api/organizations/{orgID}/users/invite.
func (h *MembershipHandler) Invite(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())
	actorRole, _ := middleware.OrgRole(r.Context())

	var input service.InviteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.OrgID = orgID
	input.ActorRole = actorRole

	if err := h.membershipService.Invite(r.Context(), input); err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type MembershipResponse struct {
	BaseResponse
	Membership *model.Membership `json:"membership"`
}

type MembershipDetailResponse struct {
	BaseResponse
	Membership  *model.Membership   `json:"membership"`
	Collections []*model.Collection `json:"collections"`
}

// Get handles GET /api/organizations/{orgID}/users/{membershipID}, returning
// the membership together with its effective collections.
func (h *MembershipHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())

	membershipID, err := uuid.Parse(chi.URLParam(r, "membershipID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid membership id")
		return
	}

	m, err := h.membershipService.Get(r.Context(), orgID, membershipID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	collections, err := h.collectionService.Effective(r.Context(), m)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MembershipDetailResponse{BaseResponse{Ok: true}, m, collections})
}

// Update handles POST /api/organizations/{orgID}/users/{membershipID}: role,
// access_all and the grant list in one edit.
func (h *MembershipHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())
	actorRole, _ := middleware.OrgRole(r.Context())

	membershipID, err := uuid.Parse(chi.URLParam(r, "membershipID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid membership id")
		return
	}

	var input service.UpdateMemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.OrgID = orgID
	input.MembershipID = membershipID
	input.ActorRole = actorRole

	m, err := h.membershipService.Update(r.Context(), input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MembershipResponse{BaseResponse{Ok: true}, m})
}

// ReplaceGrants handles POST /api/organizations/{orgID}/users/{membershipID}/grants,
// swapping the member's explicit collection grants. No-op while the membership
// has access_all.
func (h *MembershipHandler) ReplaceGrants(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())

	membershipID, err := uuid.Parse(chi.URLParam(r, "membershipID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid membership id")
		return
	}

	var payload struct {
		Collections []service.GrantInput `json:"collections"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	err = h.collectionService.ReplaceGrants(r.Context(), service.ReplaceGrantsInput{
		OrgID:        orgID,
		MembershipID: membershipID,
		Grants:       payload.Collections,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// SetRole handles POST /api/organizations/{orgID}/users/{membershipID}/role.
func (h *MembershipHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())
	actorRole, _ := middleware.OrgRole(r.Context())

	membershipID, err := uuid.Parse(chi.URLParam(r, "membershipID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid membership id")
		return
	}

	var input service.SetRoleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.OrgID = orgID
	input.MembershipID = membershipID
	input.ActorRole = actorRole

	m, err := h.membershipService.SetRole(r.Context(), input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MembershipResponse{BaseResponse{Ok: true}, m})
}

// Accept handles POST /api/organizations/{orgID}/users/{membershipID}/accept.
// Only the invitee themselves can accept, so this route is not organization
// scoped; an invited member holds no confirmed role yet.
func (h *MembershipHandler) Accept(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	orgID, err := uuid.Parse(chi.URLParam(r, "orgID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization id")
		return
	}
	membershipID, err := uuid.Parse(chi.URLParam(r, "membershipID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid membership id")
		return
	}

	m, err := h.membershipService.Accept(r.Context(), orgID, membershipID, userID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MembershipResponse{BaseResponse{Ok: true}, m})
}

// Confirm handles POST /api/organizations/{orgID}/users/{membershipID}/confirm.
func (h *MembershipHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())
	actorRole, _ := middleware.OrgRole(r.Context())

	membershipID, err := uuid.Parse(chi.URLParam(r, "membershipID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid membership id")
		return
	}

	var input service.ConfirmInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.OrgID = orgID
	input.MembershipID = membershipID
	input.ActorRole = actorRole

	m, err := h.membershipService.Confirm(r.Context(), input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MembershipResponse{BaseResponse{Ok: true}, m})
}

// Delete handles POST /api/organizations/{orgID}/users/{membershipID}/delete.
func (h *MembershipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())
	actorRole, _ := middleware.OrgRole(r.Context())

	membershipID, err := uuid.Parse(chi.URLParam(r, "membershipID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid membership id")
		return
	}

	if err := h.membershipService.Remove(r.Context(), orgID, membershipID, actorRole); err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
