package api

import (
	"net/http"

	"flightops360/hangar/internal/models/entities"
)

// GetCompanyProfileHandler handles GET /api/v1/company/profile. Before the
// first save it answers an empty profile.
func GetCompanyProfileHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := deps.Services.Company.GetProfile(r.Context())
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, p)
	}
}

func SaveCompanyProfileHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p entities.CompanyProfile
		if err := decodeJSON(w, r, &p); err != nil {
			respondWithError(w, r, err)
			return
		}
		if err := entities.Validate(&p); err != nil {
			respondWithError(w, r, err)
			return
		}
		saved, err := deps.Services.Company.SaveProfile(r.Context(), &p)
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, saved)
	}
}

func ListCompanyDocumentsHandler(deps *Dependencies) http.HandlerFunc {
	return listHandler(unfiltered(deps.Services.Company.ListDocuments))
}

func GetCompanyDocumentHandler(deps *Dependencies) http.HandlerFunc {
	return getHandler(deps.Services.Company.GetDocument)
}

func SaveCompanyDocumentHandler(deps *Dependencies) http.HandlerFunc {
	return saveHandler(deps.Services.Company.SaveDocument)
}

func DeleteCompanyDocumentHandler(deps *Dependencies) http.HandlerFunc {
	return deleteHandler(deps.Services.Company.DeleteDocument)
}
