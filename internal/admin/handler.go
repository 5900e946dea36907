package admin

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hopeharbor/backend/pkg/response"
	"github.com/hopeharbor/backend/pkg/storage"
)

// Presigner resolves short-lived download URLs for private attachments.
type Presigner interface {
	PresignedDownloadURL(ctx context.Context, key string) (string, error)
}

// Handler serves the admin dashboard endpoints. All routes are JWT-gated
// with the admin role.
type Handler struct {
	dashboard *Dashboard
	presigner Presigner
	logger    *zap.Logger
}

// NewHandler creates an admin handler. presigner may be nil when object
// storage is not configured.
func NewHandler(dashboard *Dashboard, presigner Presigner, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{dashboard: dashboard, presigner: presigner, logger: logger}
}

// Dashboard handles GET /admin/dashboard. Query params status, position and
// search set the filter state; the response carries stats, filter options,
// the filtered application list, and both collection caches.
func (h *Handler) Dashboard(c *gin.Context) {
	if err := h.dashboard.EnsureLoaded(c.Request.Context()); err != nil {
		h.logger.Error("initial dashboard load failed", zap.Error(err))
	}
	h.dashboard.SetFilters(Filters{
		Status:   c.Query("status"),
		Position: c.Query("position"),
		Search:   c.Query("search"),
	})
	positionForm, editingPosition := h.dashboard.PositionFormState()
	teamForm, editingTeam := h.dashboard.TeamFormState()
	response.OK(c, gin.H{
		"stats":            h.dashboard.Stats(),
		"filters":          h.dashboard.Filters(),
		"position_options": h.dashboard.PositionFilterOptions(),
		"applications":     h.dashboard.FilteredApplications(),
		"positions":        h.dashboard.Positions(),
		"team":             h.dashboard.TeamMembers(),
		"error":            h.dashboard.LastError(),
		"position_form":    positionForm,
		"editing_position": editingPosition,
		"team_form":        teamForm,
		"editing_team":     editingTeam,
	})
}

// Refresh handles POST /admin/refresh: a manual authoritative re-sync of
// all three collections.
func (h *Handler) Refresh(c *gin.Context) {
	if err := h.dashboard.Refresh(c.Request.Context()); err != nil {
		h.logger.Error("refresh failed", zap.Error(err))
		response.Internal(c, h.dashboard.LastError())
		return
	}
	response.OK(c, h.dashboard.Stats())
}

// UpdateStatusRequest is the body for PATCH /admin/applications/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateApplicationStatus handles PATCH /admin/applications/:id/status.
func (h *Handler) UpdateApplicationStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if err := h.dashboard.UpdateApplicationStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.logger.Error("update application status failed", zap.Error(err), zap.String("id", c.Param("id")))
		response.Internal(c, "failed to update status")
		return
	}
	response.OK(c, gin.H{"id": c.Param("id"), "status": req.Status})
}

// DeleteApplication handles DELETE /admin/applications/:id. The delete is
// only issued when the request carries confirm=true.
func (h *Handler) DeleteApplication(c *gin.Context) {
	err := h.dashboard.DeleteApplication(c.Request.Context(), c.Param("id"), confirmed(c))
	if errors.Is(err, ErrConfirmationRequired) {
		response.Conflict(c, "confirm deletion of this application")
		return
	}
	if err != nil {
		h.logger.Error("delete application failed", zap.Error(err), zap.String("id", c.Param("id")))
		response.Internal(c, "failed to delete application")
		return
	}
	response.NoContent(c)
}

// ApplicationFileURL handles GET /admin/applications/:id/file-url: a
// short-lived download link for the stored attachment.
func (h *Handler) ApplicationFileURL(c *gin.Context) {
	if h.presigner == nil {
		response.Internal(c, "object storage is not configured")
		return
	}
	id := c.Param("id")
	for _, app := range h.dashboard.Applications() {
		if app.ID != id {
			continue
		}
		if app.FilePath == "" {
			response.NotFound(c, "application has no attachment")
			return
		}
		url, err := h.presigner.PresignedDownloadURL(c.Request.Context(), app.FilePath)
		if err != nil {
			h.logger.Error("presign attachment failed", zap.Error(err), zap.String("key", app.FilePath))
			response.Internal(c, "failed to resolve download link")
			return
		}
		response.OK(c, gin.H{"url": url, "file_name": app.FileName})
		return
	}
	response.NotFound(c, "application not found")
}

// SavePosition handles POST /admin/positions and PUT /admin/positions/:id.
func (h *Handler) SavePosition(c *gin.Context) {
	var form PositionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if form.Title == "" {
		response.BadRequest(c, "title is required")
		return
	}
	if err := h.dashboard.SavePosition(c.Request.Context(), form, c.Param("id")); err != nil {
		h.logger.Error("save position failed", zap.Error(err))
		response.Internal(c, "failed to save position")
		return
	}
	response.OK(c, h.dashboard.Positions())
}

// DeletePosition handles DELETE /admin/positions/:id.
func (h *Handler) DeletePosition(c *gin.Context) {
	err := h.dashboard.DeletePosition(c.Request.Context(), c.Param("id"), confirmed(c))
	if errors.Is(err, ErrConfirmationRequired) {
		response.Conflict(c, "confirm deletion of this position")
		return
	}
	if err != nil {
		h.logger.Error("delete position failed", zap.Error(err), zap.String("id", c.Param("id")))
		response.Internal(c, "failed to delete position")
		return
	}
	response.OK(c, h.dashboard.Positions())
}

// SaveTeamMember handles POST /admin/team and PUT /admin/team/:id.
// Multipart form fields mirror TeamForm, plus an optional "photo" file.
func (h *Handler) SaveTeamMember(c *gin.Context) {
	form := TeamForm{
		Name:     c.PostForm("name"),
		Title:    c.PostForm("title"),
		Bio:      c.PostForm("bio"),
		LinkedIn: c.PostForm("linkedin"),
		Email:    c.PostForm("email"),
		Category: c.PostForm("category"),
		Emoji:    c.PostForm("emoji"),
	}
	if form.Name == "" {
		response.BadRequest(c, "name is required")
		return
	}

	var photo *PhotoUpload
	if file, err := c.FormFile("photo"); err == nil {
		if file.Size > storage.MaxPhotoSize {
			response.BadRequest(c, "photo size exceeds 5MB limit")
			return
		}
		contentType := file.Header.Get("Content-Type")
		if !storage.ValidatePhotoType(contentType) {
			response.BadRequest(c, "invalid photo type: only jpeg, png and webp are allowed")
			return
		}
		rc, err := file.Open()
		if err != nil {
			h.logger.Error("open uploaded photo failed", zap.Error(err))
			response.Internal(c, "failed to read photo")
			return
		}
		defer rc.Close()
		photo = &PhotoUpload{
			Filename:    file.Filename,
			ContentType: contentType,
			Size:        file.Size,
			Body:        rc,
		}
	}

	if err := h.dashboard.SaveTeamMember(c.Request.Context(), form, c.Param("id"), photo); err != nil {
		h.logger.Error("save team member failed", zap.Error(err))
		response.Internal(c, "failed to save team member")
		return
	}
	response.OK(c, h.dashboard.TeamMembers())
}

// DeleteTeamMember handles DELETE /admin/team/:id. The confirmation prompt
// names the member being removed.
func (h *Handler) DeleteTeamMember(c *gin.Context) {
	id := c.Param("id")
	err := h.dashboard.DeleteTeamMember(c.Request.Context(), id, confirmed(c))
	if errors.Is(err, ErrConfirmationRequired) {
		name := h.dashboard.TeamMemberName(id)
		response.Conflict(c, "confirm removal of "+name+" from the team")
		return
	}
	if errors.Is(err, ErrUnknownRecord) {
		response.NotFound(c, "team member not found")
		return
	}
	if err != nil {
		h.logger.Error("delete team member failed", zap.Error(err), zap.String("id", id))
		response.Internal(c, "failed to delete team member")
		return
	}
	response.OK(c, h.dashboard.TeamMembers())
}

func confirmed(c *gin.Context) bool {
	return c.Query("confirm") == "true"
}
