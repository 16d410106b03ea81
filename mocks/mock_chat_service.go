package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"spendlens/internal/service"
)

// MockChatService is a mock implementation of service.ChatService.
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Ask(ctx context.Context, question string) (*service.ChatAnswer, error) {
	args := m.Called(ctx, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ChatAnswer), args.Error(1)
}

func (m *MockChatService) RunSQL(ctx context.Context, query string) (*service.SQLResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SQLResult), args.Error(1)
}
