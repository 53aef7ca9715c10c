package casts

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/joefazee/iwager/app/validation"
)

// MockSemanticChecker is a testify mock for SemanticChecker
type MockSemanticChecker struct {
	mock.Mock
}

func (m *MockSemanticChecker) Validate(ctx context.Context, text string) validation.Verdict {
	args := m.Called(ctx, text)
	return args.Get(0).(validation.Verdict)
}

// MockDispatcher is a testify mock for ReplyDispatcher
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, parentHash, text, marketID string) error {
	args := m.Called(ctx, parentHash, text, marketID)
	return args.Error(0)
}

// MockService is a testify mock for Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ProcessCast(ctx context.Context, cast *Cast) Outcome {
	args := m.Called(ctx, cast)
	return args.Get(0).(Outcome)
}
