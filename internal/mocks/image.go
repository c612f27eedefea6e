package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/flavorshare/backend/internal/service"
)

// ImageService is a mock of service.IImageService
type ImageService struct {
	mock.Mock
}

func (m *ImageService) Upload(ctx context.Context, payload, folder string) (*service.ImageRef, error) {
	args := m.Called(ctx, payload, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImageRef), args.Error(1)
}

func (m *ImageService) Delete(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

// ImageReleaser records best-effort release calls for assertions
type ImageReleaser struct {
	mock.Mock
}

func (m *ImageReleaser) Delete(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}
