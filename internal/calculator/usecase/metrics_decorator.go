package usecase

import (
	"context"
	"time"

	calculatorDomain "github.com/allisson/strcalc/internal/calculator/domain"
	"github.com/allisson/strcalc/internal/metrics"
)

// calculatorUseCaseWithMetrics decorates CalculatorUseCase with metrics instrumentation.
type calculatorUseCaseWithMetrics struct {
	next    CalculatorUseCase
	metrics metrics.BusinessMetrics
}

// NewCalculatorUseCaseWithMetrics wraps a CalculatorUseCase with metrics recording.
func NewCalculatorUseCaseWithMetrics(useCase CalculatorUseCase, m metrics.BusinessMetrics) CalculatorUseCase {
	return &calculatorUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Add records metrics for add operations.
func (c *calculatorUseCaseWithMetrics) Add(ctx context.Context, input string) (int, error) {
	start := time.Now()
	result, err := c.next.Add(ctx, input)

	c.record(ctx, calculatorDomain.OperationAdd, start, err)

	return result, err
}

// Subtract records metrics for subtract operations.
func (c *calculatorUseCaseWithMetrics) Subtract(ctx context.Context, input string) (int, error) {
	start := time.Now()
	result, err := c.next.Subtract(ctx, input)

	c.record(ctx, calculatorDomain.OperationSubtract, start, err)

	return result, err
}

// Evaluate records metrics for the requested operation and the operands it ignored.
func (c *calculatorUseCaseWithMetrics) Evaluate(
	ctx context.Context,
	op calculatorDomain.Operation,
	input string,
) (*calculatorDomain.Evaluation, error) {
	start := time.Now()
	evaluation, err := c.next.Evaluate(ctx, op, input)

	c.record(ctx, op, start, err)
	if err == nil && len(evaluation.IgnoredOperands) > 0 {
		c.metrics.RecordIgnoredOperands(ctx, "calculator", op.String(), len(evaluation.IgnoredOperands))
	}

	return evaluation, err
}

func (c *calculatorUseCaseWithMetrics) record(
	ctx context.Context,
	op calculatorDomain.Operation,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
		if kind := calculatorDomain.ErrorKind(err); kind != "" {
			status = kind
		}
	}

	c.metrics.RecordOperation(ctx, "calculator", op.String(), status)
	c.metrics.RecordDuration(ctx, "calculator", op.String(), time.Since(start), status)
}
