package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
	"github.com/laporkota/backend/internal/service/disposition"
	"github.com/laporkota/backend/internal/service/report"
)

// imageURLTTL bounds how long a presigned image link stays valid.
const imageURLTTL = 15 * time.Minute

// reportService defines the minimal interface needed for report CRUD.
type reportService interface {
	Create(ctx context.Context, input report.CreateInput) (*domain.Report, error)
	Get(ctx context.Context, id uuid.UUID) (*report.Detail, error)
	List(ctx context.Context, input report.ListInput) ([]domain.Report, error)
	Support(ctx context.Context, reportID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// dispositionService defines the workflow operations exposed over REST.
type dispositionService interface {
	Dispose(ctx context.Context, input disposition.DisposeInput) (*domain.Report, error)
	Reject(ctx context.Context, input disposition.RejectInput) (*domain.Report, error)
	Verify(ctx context.Context, input disposition.VerifyInput) (*domain.Report, error)
	RejectByAgency(ctx context.Context, input disposition.RejectByAgencyInput) (*domain.Report, error)
	SetBudget(ctx context.Context, input disposition.SetBudgetInput) (*domain.Report, error)
	AddSpend(ctx context.Context, input disposition.AddSpendInput) (*domain.Report, error)
	Complete(ctx context.Context, input disposition.CompleteInput) (*domain.Report, error)
}

// imageSigner turns stored object keys into time-limited download URLs.
type imageSigner interface {
	PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ReportHandler serves report REST endpoints, both CRUD and workflow commands.
type ReportHandler struct {
	reports  reportService
	workflow dispositionService
	signer   imageSigner // nil when no object store is configured
	log      *slog.Logger
}

// NewReportHandler creates a ReportHandler. signer may be nil; image URLs are
// then omitted from responses.
func NewReportHandler(reports reportService, workflow dispositionService, signer imageSigner, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reports:  reports,
		workflow: workflow,
		signer:   signer,
		log:      logger.With("handler", "reports"),
	}
}

type createReportRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Location    *string  `json:"location,omitempty"`
	ImageKeys   []string `json:"imageKeys,omitempty"`
}

type disposeRequest struct {
	AgencyID *string `json:"agencyId,omitempty"`
	Note     *string `json:"note,omitempty"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

type verifyRequest struct {
	Note *string `json:"note,omitempty"`
}

type budgetRequest struct {
	Amount int64 `json:"amount"`
}

type completeRequest struct {
	CompletionNote string   `json:"completionNote"`
	ImageKeys      []string `json:"imageKeys,omitempty"`
}

type reportResponse struct {
	ID              string     `json:"id"`
	ReporterID      string     `json:"reporterId"`
	Category        string     `json:"category"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        *string    `json:"location,omitempty"`
	Status          string     `json:"status"`
	AgencyID        *string    `json:"agencyId,omitempty"`
	AdminNote       *string    `json:"adminNote,omitempty"`
	AgencyNote      *string    `json:"agencyNote,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
	CompletionNote  *string    `json:"completionNote,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	BudgetTotal     *int64     `json:"budgetTotal,omitempty"`
	BudgetUsed      int64      `json:"budgetUsed"`
	SupportCount    int        `json:"supportCount"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type timelineEventResponse struct {
	ID          string    `json:"id"`
	ActorID     string    `json:"actorId"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type imageResponse struct {
	ID         string    `json:"id"`
	ObjectKey  string    `json:"objectKey"`
	Completion bool      `json:"completion"`
	URL        string    `json:"url,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type reportDetailResponse struct {
	Report   reportResponse          `json:"report"`
	Timeline []timelineEventResponse `json:"timeline"`
	Images   []imageResponse         `json:"images"`
}

// Create handles POST /api/v1/reports.
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.reports.Create(r.Context(), report.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    domain.Category(req.Category),
		Location:    req.Location,
		ImageKeys:   req.ImageKeys,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReportResponse(created))
}

// Get handles GET /api/v1/reports/{id}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	detail, err := h.reports.Get(r.Context(), id)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	resp := reportDetailResponse{
		Report:   toReportResponse(&detail.Report),
		Timeline: make([]timelineEventResponse, 0, len(detail.Timeline)),
		Images:   make([]imageResponse, 0, len(detail.Images)),
	}
	for _, ev := range detail.Timeline {
		resp.Timeline = append(resp.Timeline, timelineEventResponse{
			ID:          ev.ID.String(),
			ActorID:     ev.ActorID.String(),
			Type:        ev.Type.String(),
			Title:       ev.Title,
			Description: ev.Description,
			CreatedAt:   ev.CreatedAt,
		})
	}
	for _, img := range detail.Images {
		resp.Images = append(resp.Images, h.toImageResponse(r.Context(), img))
	}

	writeJSON(w, http.StatusOK, resp)
}

// List handles GET /api/v1/reports.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reports, err := h.reports.List(r.Context(), input)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	items := make([]reportResponse, 0, len(reports))
	for i := range reports {
		items = append(items, toReportResponse(&reports[i]))
	}

	writeJSON(w, http.StatusOK, map[string][]reportResponse{"reports": items})
}

// Delete handles DELETE /api/v1/reports/{id}.
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.reports.Delete(r.Context(), id); err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Support handles POST /api/v1/reports/{id}/support.
func (h *ReportHandler) Support(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.reports.Support(r.Context(), id); err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Dispose handles POST /api/v1/reports/{id}/dispose.
func (h *ReportHandler) Dispose(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req disposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := disposition.DisposeInput{ReportID: id, Note: req.Note}
	if req.AgencyID != nil {
		agencyID, err := uuid.Parse(*req.AgencyID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid agency id")
			return
		}
		input.AgencyID = &agencyID
	}

	updated, err := h.workflow.Dispose(r.Context(), input)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(updated))
}

// Reject handles POST /api/v1/reports/{id}/reject.
func (h *ReportHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.workflow.Reject(r.Context(), disposition.RejectInput{
		ReportID: id,
		Reason:   req.Reason,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(updated))
}

// Verify handles POST /api/v1/reports/{id}/verify.
func (h *ReportHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.workflow.Verify(r.Context(), disposition.VerifyInput{
		ReportID: id,
		Note:     req.Note,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(updated))
}

// RejectByAgency handles POST /api/v1/reports/{id}/reject-by-agency.
func (h *ReportHandler) RejectByAgency(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.workflow.RejectByAgency(r.Context(), disposition.RejectByAgencyInput{
		ReportID: id,
		Reason:   req.Reason,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(updated))
}

// SetBudget handles POST /api/v1/reports/{id}/budget.
func (h *ReportHandler) SetBudget(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.workflow.SetBudget(r.Context(), disposition.SetBudgetInput{
		ReportID: id,
		Amount:   req.Amount,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(updated))
}

// AddSpend handles POST /api/v1/reports/{id}/spend.
func (h *ReportHandler) AddSpend(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.workflow.AddSpend(r.Context(), disposition.AddSpendInput{
		ReportID: id,
		Amount:   req.Amount,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(updated))
}

// Complete handles POST /api/v1/reports/{id}/complete.
func (h *ReportHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req completeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.workflow.Complete(r.Context(), disposition.CompleteInput{
		ReportID:       id,
		CompletionNote: req.CompletionNote,
		ImageKeys:      req.ImageKeys,
	})
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(updated))
}

func (h *ReportHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid report id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ReportHandler) toImageResponse(ctx context.Context, img domain.ReportImage) imageResponse {
	resp := imageResponse{
		ID:         img.ID.String(),
		ObjectKey:  img.ObjectKey,
		Completion: img.Completion,
		CreatedAt:  img.CreatedAt,
	}
	if h.signer == nil {
		return resp
	}
	url, err := h.signer.PresignedGetURL(ctx, img.ObjectKey, imageURLTTL)
	if err != nil {
		// A broken object store should not hide the report itself.
		h.log.WarnContext(ctx, "presign image url",
			slog.String("object_key", img.ObjectKey),
			slog.String("error", err.Error()),
		)
		return resp
	}
	resp.URL = url
	return resp
}

func parseListInput(r *http.Request) (report.ListInput, error) {
	var input report.ListInput
	q := r.URL.Query()

	if v := q.Get("status"); v != "" {
		status := domain.ReportStatus(v)
		input.Status = &status
	}
	if v := q.Get("category"); v != "" {
		category := domain.Category(v)
		input.Category = &category
	}
	if v := q.Get("agencyId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return input, domain.NewValidationError("agencyId", "invalid id")
		}
		input.AgencyID = &id
	}
	if v := q.Get("reporterId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return input, domain.NewValidationError("reporterId", "invalid id")
		}
		input.ReporterID = &id
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return input, domain.NewValidationError("limit", "must be a number")
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return input, domain.NewValidationError("offset", "must be a number")
		}
		input.Offset = n
	}

	return input, nil
}

func toReportResponse(rep *domain.Report) reportResponse {
	resp := reportResponse{
		ID:              rep.ID.String(),
		ReporterID:      rep.ReporterID.String(),
		Category:        rep.Category.String(),
		Title:           rep.Title,
		Description:     rep.Description,
		Location:        rep.Location,
		Status:          rep.Status.String(),
		AdminNote:       rep.AdminNote,
		AgencyNote:      rep.AgencyNote,
		RejectionReason: rep.RejectionReason,
		CompletionNote:  rep.CompletionNote,
		CompletedAt:     rep.CompletedAt,
		BudgetTotal:     rep.BudgetTotal,
		BudgetUsed:      rep.BudgetUsed,
		SupportCount:    rep.SupportCount,
		CreatedAt:       rep.CreatedAt,
		UpdatedAt:       rep.UpdatedAt,
	}
	if rep.AgencyID != nil {
		id := rep.AgencyID.String()
		resp.AgencyID = &id
	}
	return resp
}
