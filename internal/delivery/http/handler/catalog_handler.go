package handler

import (
	"net/http"

	"medcore-clinic/internal/usecase"
	"medcore-clinic/pkg/response"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
	}
}

// SearchCIE10 serves the diagnosis picker (?q=). Empty query returns
// the full catalog.
func (h *CatalogHandler) SearchCIE10(w http.ResponseWriter, r *http.Request) {
	codes, err := h.catalogUsecase.SearchCIE10(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.InternalServerError(w, "Failed to search CIE-10 codes")
		return
	}
	response.Success(w, http.StatusOK, "CIE-10 codes retrieved successfully", codes)
}

func (h *CatalogHandler) LabExamCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogUsecase.LabExamCategories(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list lab exam categories")
		return
	}
	response.Success(w, http.StatusOK, "Lab exam categories retrieved successfully", categories)
}

func (h *CatalogHandler) ImagingExamCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogUsecase.ImagingExamCategories(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list imaging exam categories")
		return
	}
	response.Success(w, http.StatusOK, "Imaging exam categories retrieved successfully", categories)
}

func (h *CatalogHandler) ListMedications(w http.ResponseWriter, r *http.Request) {
	medications, err := h.catalogUsecase.ListMedications(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.InternalServerError(w, "Failed to list medications")
		return
	}
	response.Success(w, http.StatusOK, "Medications retrieved successfully", medications)
}
