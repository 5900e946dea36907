package team

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hopeharbor/backend/pkg/response"
)

// Handler serves the public team listing for the about page.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a team handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, logger: logger}
}

// List handles GET /team.
func (h *Handler) List(c *gin.Context) {
	members, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list team failed", zap.Error(err))
		response.Internal(c, "failed to load team")
		return
	}
	response.OK(c, members)
}
