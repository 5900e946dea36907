package positions

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hopeharbor/backend/pkg/response"
)

// Handler serves the public careers listing.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a positions handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, logger: logger}
}

// List handles GET /positions.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list positions failed", zap.Error(err))
		response.Internal(c, "failed to load positions")
		return
	}
	response.OK(c, list)
}
