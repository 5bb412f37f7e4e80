package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/quantmind-br/postsync/internal/domain"
)

// MockScanner mocks the domain.Scanner interface
type MockScanner struct {
	mock.Mock
}

// Scan mocks listing drafts
func (m *MockScanner) Scan(ctx context.Context, dir string) ([]domain.Draft, error) {
	args := m.Called(ctx, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Draft), args.Error(1)
}

// MockPlanner mocks the domain.Planner interface
type MockPlanner struct {
	mock.Mock
}

// Plan mocks building posts from drafts
func (m *MockPlanner) Plan(ctx context.Context, drafts []domain.Draft) (*domain.Plan, error) {
	args := m.Called(ctx, drafts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

// MockPublisher mocks the domain.Publisher interface
type MockPublisher struct {
	mock.Mock
}

// Publish mocks writing the published section
func (m *MockPublisher) Publish(ctx context.Context, plan *domain.Plan) (string, error) {
	args := m.Called(ctx, plan)
	return args.String(0), args.Error(1)
}

// MockIndexPatcher mocks the domain.IndexPatcher interface
type MockIndexPatcher struct {
	mock.Mock
}

// Prepare mocks reading and patching the index document
func (m *MockIndexPatcher) Prepare(path string, posts []domain.Post) (*domain.IndexUpdate, error) {
	args := m.Called(path, posts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IndexUpdate), args.Error(1)
}

// Apply mocks writing the patched index document
func (m *MockIndexPatcher) Apply(update *domain.IndexUpdate) error {
	args := m.Called(update)
	return args.Error(0)
}
