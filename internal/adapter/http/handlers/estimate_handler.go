package handlers

import (
	"errors"
	"log"
	"net/http"
	request "paving_estimates/internal/adapter/http/dto/request"
	response "paving_estimates/internal/adapter/http/dto/response"
	"paving_estimates/internal/usecase"
	"paving_estimates/pkg"

	"github.com/gin-gonic/gin"
)

// EstimateHandler handles HTTP requests for paving estimates.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate validates, prices and stores an estimate submission.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request.", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if _, err := h.usecase.CreateEstimate(c.Request.Context(), payload.ToInput()); err != nil {
		appErr := mapEstimateError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			log.Printf("[estimate][handler] create failed: %v", err)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.NewCreateEstimateResponse())
}

// GetEstimate returns one stored estimate with its items grouped by type.
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	detail, err := h.usecase.GetEstimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			log.Printf("[estimate][handler] get failed id=%s: %v", c.Param("id"), err)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateDetail(detail))
}

// ListEstimates returns the summary view of every estimate.
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	summaries, err := h.usecase.ListEstimates(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			log.Printf("[estimate][handler] list failed: %v", err)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateSummaries(summaries))
}

func mapEstimateError(err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", vErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE", "Invalid estimate", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Something went wrong", err, http.StatusInternalServerError)
	}
}
