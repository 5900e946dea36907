package applications

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hopeharbor/backend/internal/positions"
	"github.com/hopeharbor/backend/pkg/response"
	"github.com/hopeharbor/backend/pkg/storage"
)

// Handler serves the public application submission endpoint.
type Handler struct {
	repo         *Repository
	positionRepo *positions.Repository
	s3           *storage.S3
	logger       *zap.Logger
}

// NewHandler creates an applications handler. s3 may be nil, in which case
// attachments are rejected but plain submissions still work.
func NewHandler(repo *Repository, positionRepo *positions.Repository, s3 *storage.S3, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, positionRepo: positionRepo, s3: s3, logger: logger}
}

// Submit handles POST /applications: the volunteer/candidate form.
// Multipart fields: name, email (required), phone, position_id, message,
// submission_type, plus an optional "file" attachment.
func (h *Handler) Submit(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	if name == "" || email == "" {
		response.BadRequest(c, "name and email are required")
		return
	}
	positionID := c.PostForm("position_id")
	submissionType := c.PostForm("submission_type")
	if submissionType == "" {
		submissionType = "general"
	}

	positionTitle := ""
	if positionID != "" {
		pos, err := h.positionRepo.GetByID(c.Request.Context(), positionID)
		if err != nil || pos == nil {
			response.BadRequest(c, "unknown position")
			return
		}
		positionTitle = pos.Title
		submissionType = "position"
	}

	now := time.Now()
	data := map[string]interface{}{
		"name":           name,
		"email":          email,
		"phone":          c.PostForm("phone"),
		"message":        c.PostForm("message"),
		"status":         "new",
		"source":         "website",
		"submissionType": submissionType,
		"createdAt":      now.UTC().Format(time.RFC3339),
		"updatedAt":      now.UTC().Format(time.RFC3339),
	}
	if positionID != "" {
		data["positionId"] = positionID
		data["positionTitle"] = positionTitle
	}

	if file, err := c.FormFile("file"); err == nil {
		if h.s3 == nil {
			response.Internal(c, "file uploads are not available")
			return
		}
		if file.Size > storage.MaxAttachmentSize {
			response.BadRequest(c, "file size exceeds 10MB limit")
			return
		}
		contentType := file.Header.Get("Content-Type")
		if !storage.ValidateAttachmentType(contentType, file.Filename) {
			response.BadRequest(c, "invalid file type: only pdf, doc, docx and images are allowed")
			return
		}
		if contentType == "" {
			contentType = storage.ContentTypeForFilename(file.Filename)
		}

		key := storage.ApplicationFileKey(positionID, file.Filename, now)
		rc, err := file.Open()
		if err != nil {
			h.logger.Error("open uploaded file failed", zap.Error(err))
			response.Internal(c, "failed to read file")
			return
		}
		defer rc.Close()

		url, err := h.s3.Upload(c.Request.Context(), key, contentType, rc, file.Size)
		if err != nil {
			h.logger.Error("attachment upload failed", zap.Error(err), zap.String("key", key))
			response.Internal(c, "failed to upload file")
			return
		}
		data["fileUrl"] = url
		data["fileName"] = file.Filename
		data["filePath"] = key
		data["fileType"] = contentType
	}

	id, err := h.repo.Create(c.Request.Context(), data)
	if err != nil {
		h.logger.Error("create application failed", zap.Error(err))
		response.Internal(c, "failed to submit application")
		return
	}
	response.Created(c, gin.H{"id": id})
}
