package documents

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/evgo-rent/backend/internal/domain"
	"github.com/evgo-rent/backend/internal/dto"
	"github.com/evgo-rent/backend/pkg/auth"
	"github.com/evgo-rent/backend/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Submit(ctx context.Context, renterID int, kind domain.DocumentKind, frontImageRef, backImageRef, number string) (*domain.Document, error)
	Review(ctx context.Context, documentID string, reviewer domain.Actor, approve bool, reason string) (*domain.Document, error)
	GetDocuments(ctx context.Context, renterID int) ([]domain.Document, error)
	GetPending(ctx context.Context, limit uint32) ([]domain.Document, error)
}

type DocumentHandler struct {
	documentService Service
}

func New(documentService Service) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidState):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotAuthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Submit godoc
//
//	@Summary		Submit an identity document
//	@Description	Upload a document for verification; re-submitting a kind resets its review
//	@Tags			Documents
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.SubmitDocumentRequestDTO	true	"Document submission"
//	@Security		BearerAuth
//	@Success		202	{object}	dto.DocumentResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed submission"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/documents [post]
func (h *DocumentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())

	var req dto.SubmitDocumentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc, err := h.documentService.Submit(r.Context(), actor.RenterID, domain.DocumentKind(req.Kind), req.FrontImageRef, req.BackImageRef, req.Number)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, toDTO(doc))
}

// GetOwn godoc
//
//	@Summary	List the renter's documents
//	@Tags		Documents
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.DocumentResponseDTO
//	@Failure	204	{object}	utils.Response	"No data available"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/documents [get]
func (h *DocumentHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())

	docs, err := h.documentService.GetDocuments(r.Context(), actor.RenterID)
	if err != nil {
		respondError(w, err)
		return
	}
	if len(docs) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.DocumentResponseDTO, 0, len(docs))
	for i := range docs {
		response = append(response, toDTO(&docs[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetPending godoc
//
//	@Summary	Pending document review queue
//	@Tags		Documents
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.DocumentResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Router		/api/staff/documents/pending [get]
func (h *DocumentHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.GetPending(r.Context(), 100)
	if err != nil {
		respondError(w, err)
		return
	}

	response := make([]dto.DocumentResponseDTO, 0, len(docs))
	for i := range docs {
		response = append(response, toDTO(&docs[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Review godoc
//
//	@Summary		Review a pending document
//	@Description	Approve or reject a submitted document; rejection requires a reason
//	@Tags			Documents
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string							true	"Document id"
//	@Param			request	body	dto.ReviewDocumentRequestDTO	true	"Review decision"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DocumentResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed review"
//	@Failure		404	{object}	utils.Response	"Unknown document"
//	@Failure		409	{object}	utils.Response	"Document already reviewed"
//	@Router			/api/staff/documents/{id}/review [post]
func (h *DocumentHandler) Review(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	documentID := chi.URLParam(r, "id")

	var req dto.ReviewDocumentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc, err := h.documentService.Review(r.Context(), documentID, actor, req.Approve, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(doc))
}

func toDTO(doc *domain.Document) dto.DocumentResponseDTO {
	return dto.DocumentResponseDTO{
		ID:           doc.ID,
		Kind:         string(doc.Kind),
		Number:       doc.Number,
		Status:       string(doc.Status),
		RejectReason: doc.RejectReason,
		SubmittedAt:  doc.SubmittedAt.Format(time.RFC3339),
	}
}
