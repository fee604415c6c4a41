package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/campuslib/backend/internal/models"
	"github.com/campuslib/backend/internal/registry"
	"github.com/campuslib/backend/internal/services"
)

type BorrowerHandler struct {
	borrowers *registry.BorrowerRegistry
	validator *services.ValidationHelper
}

func NewBorrowerHandler(borrowers *registry.BorrowerRegistry) *BorrowerHandler {
	return &BorrowerHandler{
		borrowers: borrowers,
		validator: services.NewValidationHelper(),
	}
}

// BorrowerRequest represents a borrower create request
type BorrowerRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Category   string `json:"category" validate:"required,oneof=student faculty staff"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
}

// AddBorrower registers a borrower
// @Summary Add a borrower
// @Tags borrowers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BorrowerRequest true "Borrower data"
// @Success 201 {object} models.Borrower
// @Failure 400 {object} services.ErrorResponse
// @Router /borrowers [post]
func (h *BorrowerHandler) AddBorrower(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req BorrowerRequest
	if err := dec.Decode(&req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	borrower := h.borrowers.Create(models.Borrower{
		Name:       req.Name,
		Category:   models.BorrowerCategory(req.Category),
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(borrower)
}

// ListBorrowers lists all borrowers
// @Summary List borrowers
// @Tags borrowers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{borrowers=[]models.Borrower}
// @Router /borrowers [get]
func (h *BorrowerHandler) ListBorrowers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"borrowers": h.borrowers.List(),
	})
}
