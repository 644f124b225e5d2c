package statement

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for statement generation.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new statement handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers statement routes.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.POST("/generate-bill", h.generateBill)
	router.GET("/ping", h.ping)
}

// generateBill handles POST /generate-bill: validate the form, resolve mock
// account data and stream the rendered PDF as an attachment.
func (h *Handler) generateBill(c *gin.Context) {
	var req BillRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.service.Prepare(req)
	if err != nil {
		var clientErr *ClientError
		if errors.As(err, &clientErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": clientErr.Message})
			return
		}
		h.logger.Error("failed to prepare statement", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Render into a buffer first so a layout failure still produces a
	// well-formed JSON error instead of a truncated download.
	var buf bytes.Buffer
	if err := h.service.Render(data, &buf); err != nil {
		h.logger.Error("failed to render statement",
			zap.Error(err),
			zap.String("disco", data.Disco.Code),
			zap.String("meter", data.Request.MeterNumber))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF due to an internal error."})
		return
	}

	filename := fmt.Sprintf("utility_statement_%s_%s.pdf", data.Disco.Code, data.Request.MeterNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// ping handles GET /ping
func (h *Handler) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
