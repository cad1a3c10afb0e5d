package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"payoff-grid/internal/api/models"
	"payoff-grid/internal/betgrid"
	"payoff-grid/internal/data"
	"payoff-grid/internal/model"
	"payoff-grid/internal/render"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GridHandler handles payoff grid requests
type GridHandler struct {
	cache       *data.GridCache
	defaultSize int
	maxSize     int
	logger      *zap.Logger
}

// NewGridHandler creates a new grid handler. cache may be nil. Requests with
// grid_size above maxSize are rejected before anything is allocated.
func NewGridHandler(cache *data.GridCache, defaultSize, maxSize int, logger *zap.Logger) *GridHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GridHandler{
		cache:       cache,
		defaultSize: defaultSize,
		maxSize:     maxSize,
		logger:      logger,
	}
}

// GetGrid handles GET /api/v1/grid
func (h *GridHandler) GetGrid(c *gin.Context) {
	var req models.GridRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	h.serve(c, req)
}

// PostGrid handles POST /api/v1/grid
func (h *GridHandler) PostGrid(c *gin.Context) {
	var req models.GridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	h.serve(c, req)
}

func (h *GridHandler) serve(c *gin.Context, req models.GridRequest) {
	parsed, err := betgrid.Parse(req.Params(), h.defaultSize)
	if err == nil {
		err = parsed.CheckMaxSize(h.maxSize)
	}
	if err != nil {
		status, resp := ErrorResponse(err)
		c.JSON(status, resp)
		return
	}

	grid, hit := h.cache.Get(parsed.Key)
	if !hit {
		grid, err = parsed.Compute()
		if err != nil {
			h.logger.Error("grid computation failed", zap.String("key", parsed.Key), zap.Error(err))
			status, resp := ErrorResponse(err)
			c.JSON(status, resp)
			return
		}
		h.cache.Set(parsed.Key, grid)
	}
	h.logger.Debug("grid served",
		zap.String("key", parsed.Key),
		zap.Bool("cached", hit),
	)

	mode := render.ModeJSON
	if req.Output != "" {
		mode = render.ParseMode(req.Output)
	}
	if mode == render.ModeText {
		var buf bytes.Buffer
		if err := render.Text(&buf, grid, render.Options{}); err != nil {
			status, resp := ErrorResponse(err)
			c.JSON(status, resp)
			return
		}
		c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
		return
	}
	c.JSON(http.StatusOK, grid.Document())
}

// ErrorResponse maps a dispatch error onto an HTTP status and error body.
// Parameter errors are client errors; anything else is internal.
func ErrorResponse(err error) (int, models.ErrorResponse) {
	status := http.StatusBadRequest
	code := models.CodeInternal
	switch {
	case errors.Is(err, model.ErrMissingRequiredParameter):
		code = models.CodeMissingParameter
	case errors.Is(err, model.ErrInvalidSideCode):
		code = models.CodeInvalidSide
	case errors.Is(err, model.ErrInvalidNumericParameter):
		code = models.CodeInvalidParameter
	case errors.Is(err, model.ErrUnsupportedBetType):
		code = models.CodeUnsupportedBetType
	default:
		status = http.StatusInternalServerError
	}

	detail := models.ErrorDetail{
		Code:    code,
		Message: err.Error(),
	}
	var pe *betgrid.ParamError
	if errors.As(err, &pe) {
		detail.Details = map[string]interface{}{"field": pe.Field}
		if pe.Value != "" {
			detail.Details["value"] = pe.Value
		}
	}
	return status, models.ErrorResponse{Error: detail}
}

func invalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    models.CodeInvalidRequest,
			Message: err.Error(),
		},
	})
}
