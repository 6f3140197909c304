// Package mocks provides mock implementations of the calculator use case for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	calculatorDomain "github.com/allisson/strcalc/internal/calculator/domain"
)

// MockCalculatorUseCase is a mock implementation of CalculatorUseCase for testing.
type MockCalculatorUseCase struct {
	mock.Mock
}

// NewMockCalculatorUseCase creates a mock and registers AssertExpectations on cleanup.
func NewMockCalculatorUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCalculatorUseCase {
	m := &MockCalculatorUseCase{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Add mocks the Add method of CalculatorUseCase.
func (m *MockCalculatorUseCase) Add(ctx context.Context, input string) (int, error) {
	args := m.Called(ctx, input)
	return args.Int(0), args.Error(1)
}

// Subtract mocks the Subtract method of CalculatorUseCase.
func (m *MockCalculatorUseCase) Subtract(ctx context.Context, input string) (int, error) {
	args := m.Called(ctx, input)
	return args.Int(0), args.Error(1)
}

// Evaluate mocks the Evaluate method of CalculatorUseCase.
func (m *MockCalculatorUseCase) Evaluate(
	ctx context.Context,
	op calculatorDomain.Operation,
	input string,
) (*calculatorDomain.Evaluation, error) {
	args := m.Called(ctx, op, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calculatorDomain.Evaluation), args.Error(1)
}
