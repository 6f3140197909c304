package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calculatorDomain "github.com/allisson/strcalc/internal/calculator/domain"
	calculatorService "github.com/allisson/strcalc/internal/calculator/service"
	apperrors "github.com/allisson/strcalc/internal/errors"
)

func setupCalculatorUseCase(t *testing.T) CalculatorUseCase {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCalculatorUseCase(calculatorService.NewEvaluator(), logger)
}

func TestCalculatorUseCase_Add(t *testing.T) {
	ctx := context.Background()
	useCase := setupCalculatorUseCase(t)

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "Success_Empty", input: "", expected: 0},
		{name: "Success_Single", input: "7", expected: 7},
		{name: "Success_DefaultDelimiters", input: "1\n2,3", expected: 6},
		{name: "Success_SingleCustomDelimiter", input: "//;\n1;2;3", expected: 6},
		{name: "Success_MultipleCustomDelimiters", input: "//[*][%]\n1*2%3", expected: 6},
		{name: "Success_IgnoresLargeOperands", input: "2,1001", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := useCase.Add(ctx, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	t.Run("Error_Negative", func(t *testing.T) {
		_, err := useCase.Add(ctx, "1,-2,3")
		require.Error(t, err)

		var negErr *calculatorDomain.NegativeOperandError
		require.ErrorAs(t, err, &negErr)
		assert.Equal(t, []int{-2}, negErr.Values)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("Error_NonNumeric", func(t *testing.T) {
		_, err := useCase.Add(ctx, "1,a,-2")
		require.Error(t, err)

		var nanErr *calculatorDomain.NonNumericOperandError
		require.ErrorAs(t, err, &nanErr)
		assert.Equal(t, []string{"a"}, nanErr.Values)
	})
}

func TestCalculatorUseCase_Subtract(t *testing.T) {
	ctx := context.Background()
	useCase := setupCalculatorUseCase(t)

	t.Run("Success_LeftToRight", func(t *testing.T) {
		result, err := useCase.Subtract(ctx, "10,3,2")
		require.NoError(t, err)
		assert.Equal(t, 5, result)
	})

	t.Run("Success_FirstOperandAboveThresholdKept", func(t *testing.T) {
		result, err := useCase.Subtract(ctx, "1001,1")
		require.NoError(t, err)
		assert.Equal(t, 1000, result)
	})

	t.Run("Success_Empty", func(t *testing.T) {
		result, err := useCase.Subtract(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 0, result)
	})

	t.Run("Error_MalformedDeclaration", func(t *testing.T) {
		_, err := useCase.Subtract(ctx, "//;1;2")
		assert.ErrorIs(t, err, calculatorDomain.ErrMalformedDeclaration)
	})
}

func TestCalculatorUseCase_Evaluate(t *testing.T) {
	ctx := context.Background()
	useCase := setupCalculatorUseCase(t)

	t.Run("Success_ReportsIgnoredOperands", func(t *testing.T) {
		evaluation, err := useCase.Evaluate(ctx, calculatorDomain.OperationAdd, "//[***]\n1***2000***3")
		require.NoError(t, err)

		assert.Equal(t, 4, evaluation.Result)
		assert.Equal(t, calculatorDomain.DelimiterMultiple, evaluation.Delimiters.Kind())
		assert.Equal(t, []string{"1", "2000", "3"}, evaluation.Tokens)
		assert.Equal(t, []int{2000}, evaluation.IgnoredOperands)
	})

	t.Run("Error_UnsupportedOperation", func(t *testing.T) {
		evaluation, err := useCase.Evaluate(ctx, calculatorDomain.Operation("multiply"), "1,2")
		assert.Nil(t, evaluation)
		assert.ErrorIs(t, err, calculatorDomain.ErrUnsupportedOperation)
	})
}
