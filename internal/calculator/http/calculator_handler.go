// Package http provides HTTP handlers for the calculator operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	calculatorDomain "github.com/allisson/strcalc/internal/calculator/domain"
	"github.com/allisson/strcalc/internal/calculator/http/dto"
	calculatorUseCase "github.com/allisson/strcalc/internal/calculator/usecase"
	"github.com/allisson/strcalc/internal/httputil"
	customValidation "github.com/allisson/strcalc/internal/validation"
)

// CalculatorHandler handles HTTP requests for calculator operations.
type CalculatorHandler struct {
	calculatorUseCase calculatorUseCase.CalculatorUseCase
	maxInputLength    int
	logger            *slog.Logger
}

// NewCalculatorHandler creates a new calculator handler. Inputs longer than
// maxInputLength bytes are rejected before evaluation.
func NewCalculatorHandler(
	calculatorUseCase calculatorUseCase.CalculatorUseCase,
	maxInputLength int,
	logger *slog.Logger,
) *CalculatorHandler {
	return &CalculatorHandler{
		calculatorUseCase: calculatorUseCase,
		maxInputLength:    maxInputLength,
		logger:            logger,
	}
}

// AddHandler sums the operands of the input string.
// POST /v1/calculator/add
func (h *CalculatorHandler) AddHandler(c *gin.Context) {
	h.handleOperation(c, calculatorDomain.OperationAdd)
}

// SubtractHandler subtracts the later operands from the first one.
// POST /v1/calculator/subtract
func (h *CalculatorHandler) SubtractHandler(c *gin.Context) {
	h.handleOperation(c, calculatorDomain.OperationSubtract)
}

// EvaluateHandler runs the operation named in the request body.
// POST /v1/calculator/evaluate
func (h *CalculatorHandler) EvaluateHandler(c *gin.Context) {
	var req dto.EvaluateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(h.maxInputLength); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	op, err := calculatorDomain.ParseOperation(req.Operation)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.evaluate(c, op, req.InputValue())
}

func (h *CalculatorHandler) handleOperation(c *gin.Context, op calculatorDomain.Operation) {
	var req dto.CalculateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(h.maxInputLength); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	h.evaluate(c, op, req.InputValue())
}

func (h *CalculatorHandler) evaluate(c *gin.Context, op calculatorDomain.Operation, input string) {
	evaluation, err := h.calculatorUseCase.Evaluate(c.Request.Context(), op, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEvaluationToResponse(evaluation))
}
