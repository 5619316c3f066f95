package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-live/quickid/internal/generator"
	"github.com/weiawesome/wes-io-live/quickid/internal/idgen"
	"github.com/weiawesome/wes-io-live/quickid/internal/service"
	"github.com/weiawesome/wes-io-live/quickid/pkg/log"
	"github.com/weiawesome/wes-io-live/quickid/pkg/response"
)

// GenerateRequest is the body of POST /api/v1/ids.
type GenerateRequest struct {
	service.GenerateRequest
	Count int `json:"count,omitempty"`
}

type GenerateResponse struct {
	IDs []idgen.ID `json:"ids"`
}

// DuplicatesRequest is the body of POST /api/v1/ids/duplicates.
type DuplicatesRequest struct {
	Values []idgen.ID `json:"values"`
}

type TestQuery struct {
	Scheme string `form:"scheme"`
	Trials int    `form:"trials"`
}

// ValidateQuery is the query of GET /api/v1/ids/validate and /parse.
type ValidateQuery struct {
	Scheme string `form:"scheme"`
	ID     string `form:"id" binding:"required"`
}

// Handler handles HTTP requests for the ID service.
type Handler struct {
	idService service.IDService
}

// NewHandler creates a new HTTP handler.
func NewHandler(idService service.IDService) *Handler {
	return &Handler{idService: idService}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		ids := api.Group("/ids")
		{
			ids.POST("", h.Generate)
			ids.GET("/schemes", h.Schemes)
			ids.GET("/validate", h.Validate)
			ids.GET("/parse", h.Parse)
			ids.GET("/test", h.Test)
			ids.POST("/duplicates", h.Duplicates)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})
}

// Generate creates one or more IDs.
func (h *Handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req GenerateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			l.Warn().Err(err).Msg("failed to bind generate request")
			response.BadRequest(c, err.Error())
			return
		}
	}
	if req.Count == 0 {
		req.Count = 1
	}

	ids, err := h.idService.GenerateBatch(ctx, req.GenerateRequest, req.Count)
	if err != nil {
		h.writeError(c, err, "failed to generate ids")
		return
	}

	response.Success(c, GenerateResponse{IDs: ids})
}

// Schemes lists the registered ID schemes.
func (h *Handler) Schemes(c *gin.Context) {
	response.Success(c, gin.H{"schemes": h.idService.Schemes()})
}

// Validate checks an ID against a scheme.
func (h *Handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	var q ValidateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.idService.Validate(ctx, q.Scheme, q.ID)
	if err != nil {
		h.writeError(c, err, "failed to validate id")
		return
	}

	response.Success(c, result)
}

// Parse decodes an ID with the rules of a scheme.
func (h *Handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	var q ValidateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.idService.Parse(ctx, q.Scheme, q.ID)
	if err != nil {
		h.writeError(c, err, "failed to parse id")
		return
	}

	response.Success(c, result)
}

// Test runs the uniqueness stress test.
func (h *Handler) Test(c *gin.Context) {
	ctx := c.Request.Context()

	var q TestQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.idService.Test(ctx, q.Scheme, q.Trials)
	if err != nil {
		h.writeError(c, err, "uniqueness test failed")
		return
	}

	response.Success(c, result)
}

// Duplicates reports repeated values in the submitted batch.
func (h *Handler) Duplicates(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req DuplicatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind duplicates request")
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, h.idService.Duplicates(ctx, req.Values))
}

func (h *Handler) writeError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, idgen.ErrInvalidLength):
		response.Error(c, http.StatusBadRequest, response.CodeInvalidLength, err.Error())
	case errors.Is(err, idgen.ErrInvalidKind):
		response.Error(c, http.StatusBadRequest, response.CodeInvalidType, err.Error())
	case errors.Is(err, generator.ErrUnknownScheme):
		response.Error(c, http.StatusBadRequest, response.CodeUnknownScheme, err.Error())
	case errors.Is(err, service.ErrInvalidCount), errors.Is(err, service.ErrInvalidTrials):
		response.BadRequest(c, err.Error())
	case errors.Is(err, idgen.ErrEntropyUnavailable):
		l := log.Ctx(c.Request.Context())
		l.Error().Err(err).Msg(msg)
		response.Error(c, http.StatusInternalServerError, response.CodeEntropyUnavailable, "entropy source unavailable")
	default:
		l := log.Ctx(c.Request.Context())
		l.Error().Err(err).Msg(msg)
		response.InternalError(c, msg)
	}
}
