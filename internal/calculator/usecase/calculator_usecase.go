package usecase

import (
	"context"
	"log/slog"

	calculatorDomain "github.com/allisson/strcalc/internal/calculator/domain"
	calculatorService "github.com/allisson/strcalc/internal/calculator/service"
)

// calculatorUseCase implements CalculatorUseCase on top of the pipeline evaluator.
type calculatorUseCase struct {
	evaluator calculatorService.Evaluator
	logger    *slog.Logger
}

// NewCalculatorUseCase creates a new CalculatorUseCase.
func NewCalculatorUseCase(evaluator calculatorService.Evaluator, logger *slog.Logger) CalculatorUseCase {
	return &calculatorUseCase{
		evaluator: evaluator,
		logger:    logger,
	}
}

// Add sums the operands of input.
func (c *calculatorUseCase) Add(ctx context.Context, input string) (int, error) {
	evaluation, err := c.Evaluate(ctx, calculatorDomain.OperationAdd, input)
	if err != nil {
		return 0, err
	}
	return evaluation.Result, nil
}

// Subtract subtracts the later operands of input from the first one.
func (c *calculatorUseCase) Subtract(ctx context.Context, input string) (int, error) {
	evaluation, err := c.Evaluate(ctx, calculatorDomain.OperationSubtract, input)
	if err != nil {
		return 0, err
	}
	return evaluation.Result, nil
}

// Evaluate runs op against input. Calculation failures are logged at debug level since
// they describe bad caller input, not a fault.
func (c *calculatorUseCase) Evaluate(
	ctx context.Context,
	op calculatorDomain.Operation,
	input string,
) (*calculatorDomain.Evaluation, error) {
	evaluation, err := c.evaluator.Explain(op, input)
	if err != nil {
		c.logger.DebugContext(ctx, "calculation rejected",
			slog.String("operation", op.String()),
			slog.String("error_kind", calculatorDomain.ErrorKind(err)),
			slog.Any("error", err),
		)
		return nil, err
	}

	c.logger.DebugContext(ctx, "calculation completed",
		slog.String("operation", op.String()),
		slog.String("delimiters", evaluation.Delimiters.Kind().String()),
		slog.Int("token_count", len(evaluation.Tokens)),
		slog.Int("ignored_count", len(evaluation.IgnoredOperands)),
		slog.Int("result", evaluation.Result),
	)

	return evaluation, nil
}
