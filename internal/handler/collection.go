// internal/handler/collection.go
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

type CollectionHandler struct {
	collectionService *service.CollectionService
}

func NewCollectionHandler(collectionService *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

type CollectionResponse struct {
	BaseResponse
	Collection *model.Collection `json:"collection"`
}

// ListMine handles GET /api/collections: everything the acting user can see
// across their organizations.
func (h *CollectionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	collections, err := h.collectionService.ListForUser(r.Context(), userID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{BaseResponse{Ok: true}, collections})
}

// ListOrg handles GET /api/organizations/{orgID}/collections.
func (h *CollectionHandler) ListOrg(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())

	collections, err := h.collectionService.ListByOrg(r.Context(), orgID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{BaseResponse{Ok: true}, collections})
}

// Create handles POST /api/organizations/{orgID}/collections.
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())

	var input service.CreateCollectionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.OrgID = orgID

	collection, err := h.collectionService.Create(r.Context(), input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, CollectionResponse{BaseResponse{Ok: true}, collection})
}

// Update handles POST /api/organizations/{orgID}/collections/{collectionID}.
func (h *CollectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())

	collectionID, err := uuid.Parse(chi.URLParam(r, "collectionID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid collection id")
		return
	}

	var input service.RenameCollectionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.OrgID = orgID
	input.CollectionID = collectionID

	collection, err := h.collectionService.Rename(r.Context(), input)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CollectionResponse{BaseResponse{Ok: true}, collection})
}

// Delete handles POST /api/organizations/{orgID}/collections/{collectionID}/delete.
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())

	collectionID, err := uuid.Parse(chi.URLParam(r, "collectionID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid collection id")
		return
	}

	if err := h.collectionService.Delete(r.Context(), orgID, collectionID); err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// Detail handles GET /api/organizations/{orgID}/collections/{collectionID}/details,
// visible only if the acting user can reach the collection.
func (h *CollectionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())
	userID, _ := middleware.UserID(r.Context())

	collectionID, err := uuid.Parse(chi.URLParam(r, "collectionID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid collection id")
		return
	}

	collection, err := h.collectionService.GetVisible(r.Context(), orgID, collectionID, userID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CollectionResponse{BaseResponse{Ok: true}, collection})
}

// Users handles GET /api/organizations/{orgID}/collections/{collectionID}/users:
// explicit grantees plus access_all members.
func (h *CollectionHandler) Users(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())

	collectionID, err := uuid.Parse(chi.URLParam(r, "collectionID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid collection id")
		return
	}

	members, err := h.collectionService.ListCollectionUsers(r.Context(), orgID, collectionID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{BaseResponse{Ok: true}, members})
}

// DeleteUser handles POST /api/organizations/{orgID}/collections/{collectionID}/delete-user/{membershipID}.
func (h *CollectionHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	orgID, _ := middleware.OrgID(r.Context())

	collectionID, err := uuid.Parse(chi.URLParam(r, "collectionID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid collection id")
		return
	}
	membershipID, err := uuid.Parse(chi.URLParam(r, "membershipID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid membership id")
		return
	}

	if err := h.collectionService.RemoveUser(r.Context(), orgID, collectionID, membershipID); err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
