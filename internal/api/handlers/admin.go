package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eagleeyes/storefront/internal/api/httpx"
	"github.com/eagleeyes/storefront/internal/models"
	repo "github.com/eagleeyes/storefront/internal/repository"
	"github.com/eagleeyes/storefront/internal/services"
)

// AdminHandler serves the dashboard. Every route sits behind RequireUser and RequireAdmin.
type AdminHandler struct {
	admin *services.AdminService
	users *services.UserService
	audit repo.AuditLogs
	log   *slog.Logger
}

func NewAdminHandler(admin *services.AdminService, users *services.UserService, audit repo.AuditLogs, log *slog.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, users: users, audit: audit, log: log}
}

// ----------------- Users -----------------

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, r, http.StatusOK, h.users.List())
}

type updateRoleReq struct {
	Role string `json:"role" validate:"required,oneof=CUSTOMER ADMIN TRAINER"`
}

func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	var req updateRoleReq
	if err := decode(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if err := h.users.UpdateUserRole(r.Context(), chi.URLParam(r, "id"), models.Role(req.Role)); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) Audit(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, r, http.StatusOK, h.audit.List())
}

// ----------------- Records -----------------

func (h *AdminHandler) kind(w http.ResponseWriter, r *http.Request) (models.RecordKind, bool) {
	kind, ok := models.ParseRecordKind(chi.URLParam(r, "kind"))
	if !ok {
		writeServiceError(w, r, h.log, services.ErrUnknownKind)
	}
	return kind, ok
}

// decodeRecord reads the body as the concrete record type for kind.
func decodeRecord(r *http.Request, kind models.RecordKind) (models.Record, error) {
	var (
		rec models.Record
		err error
	)
	switch kind {
	case models.KindProduct:
		var p models.Product
		err = httpx.DecodeJSON(r, &p)
		rec = p
	case models.KindCourse:
		var c models.Course
		err = httpx.DecodeJSON(r, &c)
		rec = c
	case models.KindBlogPost:
		var b models.BlogPost
		err = httpx.DecodeJSON(r, &b)
		rec = b
	default:
		return nil, services.ErrUnknownKind
	}
	if err != nil {
		return nil, services.ErrInvalidRecord
	}
	return rec, nil
}

func withID(rec models.Record, id string) models.Record {
	switch v := rec.(type) {
	case models.Product:
		v.ID = id
		return v
	case models.Course:
		v.ID = id
		return v
	case models.BlogPost:
		v.ID = id
		return v
	}
	return rec
}

type tableResp struct {
	Kind    models.RecordKind `json:"kind"`
	Columns []models.Field    `json:"columns"`
	Rows    []map[string]any  `json:"rows"`
	Records []models.Record   `json:"records"`
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	recs, err := h.admin.List(kind)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	rows := make([]map[string]any, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, models.TableRow(rec))
	}
	if recs == nil {
		recs = []models.Record{}
	}
	httpx.WriteJSON(w, r, http.StatusOK, tableResp{Kind: kind, Columns: models.TableColumns(kind), Rows: rows, Records: recs})
}

func (h *AdminHandler) Fields(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	httpx.WriteJSON(w, r, http.StatusOK, map[string]any{
		"kind":          kind,
		"form_fields":   models.FormFields(kind),
		"table_columns": models.TableColumns(kind),
	})
}

// Create adds the record under a new id; any id in the body is ignored.
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	rec, err := decodeRecord(r, kind)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	rec, err = h.admin.Add(r.Context(), rec)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, r, http.StatusCreated, rec)
}

// Update replaces the record named in the path. An unknown id changes nothing and answers
// with "updated": false.
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	rec, err := decodeRecord(r, kind)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	rec = withID(rec, chi.URLParam(r, "id"))
	updated, err := h.admin.Update(r.Context(), rec)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, r, http.StatusOK, map[string]any{"updated": updated, "record": rec})
}

type pendingResp struct {
	Staged  bool          `json:"staged"`
	Record  models.Record `json:"record,omitempty"`
	Message string        `json:"message,omitempty"`
}

// StageDelete asks for confirmation; nothing is removed until ConfirmDelete.
func (h *AdminHandler) StageDelete(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	rec, staged, err := h.admin.StageDelete(kind, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	resp := pendingResp{Staged: staged}
	if staged {
		resp.Record = rec
		resp.Message = "Are you sure you want to delete \"" + rec.DisplayName() + "\"? This action cannot be undone."
	}
	httpx.WriteJSON(w, r, http.StatusOK, resp)
}

func (h *AdminHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	rec, deleted, err := h.admin.ConfirmDelete(r.Context(), kind)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, r, http.StatusOK, map[string]any{"deleted": deleted, "record": rec})
}

func (h *AdminHandler) CancelDelete(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	h.admin.CancelDelete(kind)
	w.WriteHeader(http.StatusNoContent)
}
