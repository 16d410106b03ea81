package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"spendlens/internal/domain"
)

// MockVendorRepo is a mock implementation of port.VendorRepository.
type MockVendorRepo struct {
	mock.Mock
}

func (m *MockVendorRepo) Create(ctx context.Context, vendor *domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
