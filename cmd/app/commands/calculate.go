package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	calculatorDomain "github.com/allisson/strcalc/internal/calculator/domain"
	"github.com/allisson/strcalc/internal/calculator/http/dto"
	calculatorUseCase "github.com/allisson/strcalc/internal/calculator/usecase"
)

// CalculateOptions holds the flags shared by the add and subtract commands.
type CalculateOptions struct {
	// Input is the --input value. It is ignored when HasInput is false.
	Input string
	// HasInput is false when --input was omitted and the input must be read from stdin.
	HasInput bool
	// Escaped expands \n, \r, \t and \\ in the input.
	Escaped bool
	// Format is "text" or "json".
	Format string
	// Verbose prints the resolved delimiters, tokens and ignored operands with the result.
	Verbose bool
}

// RunCalculate evaluates op against the input described by opts and writes the result to
// streams.Writer.
func RunCalculate(
	ctx context.Context,
	useCase calculatorUseCase.CalculatorUseCase,
	logger *slog.Logger,
	streams IOTuple,
	op calculatorDomain.Operation,
	opts CalculateOptions,
) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	input := opts.Input
	if !opts.HasInput {
		var err error
		input, err = readInput(streams.Reader)
		if err != nil {
			return err
		}
	}

	if opts.Escaped {
		input = unescapeInput(input)
	}

	logger.Debug("running calculation",
		slog.String("operation", op.String()),
		slog.Int("input_length", len(input)),
	)

	// The plain text form only needs the number.
	if opts.Format == "text" && !opts.Verbose {
		result, err := calculate(ctx, useCase, op, input)
		if err != nil {
			return fmt.Errorf("%s failed: %w", op, err)
		}
		_, err = fmt.Fprintln(streams.Writer, result)
		return err
	}

	evaluation, err := useCase.Evaluate(ctx, op, input)
	if err != nil {
		return fmt.Errorf("%s failed: %w", op, err)
	}

	if opts.Format == "json" {
		return outputEvaluationJSON(streams.Writer, evaluation)
	}
	return outputEvaluationText(streams.Writer, evaluation)
}

func calculate(
	ctx context.Context,
	useCase calculatorUseCase.CalculatorUseCase,
	op calculatorDomain.Operation,
	input string,
) (int, error) {
	switch op {
	case calculatorDomain.OperationAdd:
		return useCase.Add(ctx, input)
	case calculatorDomain.OperationSubtract:
		return useCase.Subtract(ctx, input)
	default:
		return 0, calculatorDomain.ErrUnsupportedOperation
	}
}

// outputEvaluationText writes a human-readable report.
func outputEvaluationText(w io.Writer, evaluation *calculatorDomain.Evaluation) error {
	quoted := make([]string, len(evaluation.Tokens))
	for i, token := range evaluation.Tokens {
		quoted[i] = fmt.Sprintf("%q", token)
	}

	ignored := make([]string, len(evaluation.IgnoredOperands))
	for i, operand := range evaluation.IgnoredOperands {
		ignored[i] = fmt.Sprint(operand)
	}

	_, err := fmt.Fprintf(w,
		"Operation:  %s\nDelimiters: %s %s\nTokens:     [%s]\nIgnored:    [%s]\nResult:     %d\n",
		evaluation.Operation,
		evaluation.Delimiters.Kind(),
		evaluation.Delimiters,
		strings.Join(quoted, ", "),
		strings.Join(ignored, ", "),
		evaluation.Result,
	)
	return err
}

// outputEvaluationJSON writes the same document the HTTP API returns.
func outputEvaluationJSON(w io.Writer, evaluation *calculatorDomain.Evaluation) error {
	jsonBytes, err := json.MarshalIndent(dto.MapEvaluationToResponse(evaluation), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}
