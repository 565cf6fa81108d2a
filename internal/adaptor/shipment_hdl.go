package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"accountease/internal/dto/request"
	"accountease/internal/usecase"
	"accountease/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxChittiUploadBytes caps transport attachment uploads (10 MB).
const maxChittiUploadBytes = 10 << 20

type ShipmentHandler struct {
	service usecase.ShipmentService
	log     *zap.Logger
}

func NewShipmentHandler(service usecase.ShipmentService, log *zap.Logger) *ShipmentHandler {
	return &ShipmentHandler{
		service: service,
		log:     log,
	}
}

func pathParam(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// Create handles POST /api/shipments (admin)
func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ShipmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())

	response, err := h.service.Create(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create shipment")
		return
	}

	utils.ResponseCreated(w, "Shipment created", response)
}

// List handles GET /api/shipments
func (h *ShipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	req := &request.ShipmentListRequest{
		PaginatedRequest: *paginationFromQuery(r),
		Applicant:        r.URL.Query().Get("applicant"),
	}

	response, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list shipments")
		return
	}

	utils.ResponseSuccess(w, "Shipments retrieved", response)
}

// GetByID handles GET /api/shipments/{id}
func (h *ShipmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetByID(r.Context(), pathParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get shipment")
		return
	}

	utils.ResponseSuccess(w, "Shipment retrieved", response)
}

// Update handles PUT /api/shipments/{id} (admin)
func (h *ShipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.ShipmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Update(r.Context(), pathParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update shipment")
		return
	}

	utils.ResponseSuccess(w, "Shipment updated", response)
}

// Delete handles DELETE /api/shipments/{id} (admin)
func (h *ShipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), pathParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete shipment")
		return
	}

	utils.ResponseSuccess(w, "Shipment deleted", nil)
}

// AttachTransport handles POST /api/shipments/{id}/transports (admin).
// Expects multipart form data with optional "carrier" field and optional
// "chitti_file" upload.
func (h *ShipmentHandler) AttachTransport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxChittiUploadBytes); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	var carrier *string
	if value := r.FormValue("carrier"); value != "" {
		carrier = &value
	}

	filename := ""
	file, header, err := r.FormFile("chitti_file")
	if err == nil {
		defer file.Close()
		filename = header.Filename
	} else if err != http.ErrMissingFile {
		utils.ResponseBadRequest(w, "Invalid file upload", nil)
		return
	}

	var upload io.Reader
	if filename != "" {
		upload = file
	}

	response, err := h.service.AttachTransport(r.Context(), pathParam(r, "id"), carrier, filename, upload)
	if err != nil {
		handleServiceError(w, h.log, err, "attach transport")
		return
	}

	utils.ResponseCreated(w, "Transport attached", response)
}

// ListTransports handles GET /api/shipments/{id}/transports
func (h *ShipmentHandler) ListTransports(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ListTransports(r.Context(), pathParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list transports")
		return
	}

	utils.ResponseSuccess(w, "Transports retrieved", response)
}
