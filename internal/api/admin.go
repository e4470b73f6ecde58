package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightops360/hangar/internal/auth"
	"flightops360/hangar/internal/common"
	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/models/entities"
)

type setRolesRequest struct {
	Roles []string `json:"roles"`
}

func ListRolesHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(unfiltered(deps.Services.Admin.ListRoles))
}

func GetRoleHandler(deps *Dependencies) http.HandlerFunc {
	return getHandler(deps.Services.Admin.GetRole)
}

// SaveRoleHandler creates or renames a custom role. System roles are
// read-only.
func SaveRoleHandler(deps *Dependencies) http.HandlerFunc {
	return saveHandler(deps.Services.Admin.SaveRole)
}

func DeleteRoleHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Admin.DeleteRole)
}

func ListUsersHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(unfiltered(deps.Services.Admin.ListUsers))
}

func GetUserHandler(deps *Dependencies) http.HandlerFunc {
	return getHandler(deps.Services.Admin.GetUser)
}

func SaveUserHandler(deps *Dependencies) http.HandlerFunc {
	return saveHandler(deps.Services.Admin.SaveUser)
}

func DeleteUserHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Admin.DeleteUser)
}

// SetUserRolesHandler handles PUT /api/v1/admin/users/{id}/roles.
func SetUserRolesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setRolesRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respondWithError(w, r, err)
			return
		}
		u, err := deps.Services.Admin.SetUserRoles(r.Context(), chi.URLParam(r, "id"), req.Roles)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, u)
	}
}

type meResponse struct {
	UserID string         `json:"userId"`
	Email  string         `json:"email,omitempty"`
	Roles  []string       `json:"roles"`
	Source string         `json:"source"`
	User   *entities.User `json:"user,omitempty"`
}

// MeHandler handles GET /api/v1/me: the caller's claims plus the stored
// user record when one matches the token email.
func MeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, http.StatusUnauthorized, constants.MsgUnauthorized, "")
			return
		}
		resp := &meResponse{
			UserID: claims.UserID(),
			Email:  claims.Email(),
			Roles:  claims.Roles(),
			Source: claims.Source(),
		}
		if resp.Email != "" {
			u, err := deps.Services.Admin.UserByEmail(r.Context(), resp.Email)
			if err != nil {
				respondWithError(w, r, err)
				return
			}
			resp.User = u
		}
		if resp.Roles == nil {
			resp.Roles = []string{}
		}
		respondWithSuccess(w, http.StatusOK, resp)
	}
}
