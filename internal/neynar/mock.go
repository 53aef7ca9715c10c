package neynar

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishReply(ctx context.Context, parentHash, text, embedURL string) (string, error) {
	args := m.Called(ctx, parentHash, text, embedURL)
	return args.String(0), args.Error(1)
}
