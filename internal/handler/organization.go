// internal/handler/organization.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/cipherhaven/cipherhaven/internal/middleware"
	"github.com/cipherhaven/cipherhaven/internal/model"
	"github.com/cipherhaven/cipherhaven/internal/service"
)

type OrganizationHandler struct {
	orgService *service.OrganizationService
}

func NewOrganizationHandler(orgService *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

type OrganizationResponse struct {
	BaseResponse
	Organization *model.Organization `json:"organization"`
}

// Create handles POST /api/organizations. The requesting user becomes the
// confirmed owner of the new organization.
func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input service.CreateOrganizationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.UserID = userID

	org, err := h.orgService.Create(r.Context(), input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, OrganizationResponse{BaseResponse{Ok: true}, org})
}

// Get handles GET /api/organizations/{orgID}.
func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())

	org, err := h.orgService.Get(r.Context(), orgID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, OrganizationResponse{BaseResponse{Ok: true}, org})
}

// Update handles POST /api/organizations/{orgID}.
func (h *OrganizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())

	var input service.UpdateOrganizationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.OrgID = orgID

	org, err := h.orgService.Update(r.Context(), input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, OrganizationResponse{BaseResponse{Ok: true}, org})
}

// Delete handles POST /api/organizations/{orgID}/delete. The owner proves
// their password again before the cascade runs.
func (h *OrganizationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())
	userID, _ := middleware.UserID(r.Context())

	var input service.DeleteOrganizationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.OrgID = orgID
	input.UserID = userID

	if err := h.orgService.Delete(r.Context(), input); err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// ListUsers handles GET /api/organizations/{orgID}/users.
func (h *OrganizationHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())

	memberships, err := h.orgService.ListMembers(r.Context(), orgID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{BaseResponse{Ok: true}, memberships})
}
