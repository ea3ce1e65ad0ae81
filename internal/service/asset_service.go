package service

import (
	"context"
	"mime/multipart"

	"testinesia-be/internal/dto"
	"testinesia-be/internal/pkg/logger"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/pkg/storage"
)

const (
	maxImageSize = 5 << 20  // 5 MiB
	maxVideoSize = 64 << 20 // 64 MiB
)

type IAssetService interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (*dto.UploadAssetResponse, error)
	UploadVideo(ctx context.Context, file *multipart.FileHeader) (*dto.UploadAssetResponse, error)
	Delete(ctx context.Context, req *dto.DeleteAssetRequest) error
}

type assetService struct {
	storage storage.IStorageService
	logger  logger.ILogger
}

func NewAssetService(storageSvc storage.IStorageService, log logger.ILogger) IAssetService {
	return &assetService{
		storage: storageSvc,
		logger:  log,
	}
}

func (s *assetService) UploadImage(ctx context.Context, file *multipart.FileHeader) (*dto.UploadAssetResponse, error) {
	if file.Size > maxImageSize {
		return nil, serverutils.NewBadRequest("image exceeds the 5MB limit")
	}

	url, err := s.storage.UploadImage(ctx, file)
	if err != nil {
		s.logger.Error("asset", "image upload failed", map[string]interface{}{"error": err.Error()})
		return nil, serverutils.NewBadRequest(err.Error())
	}

	return &dto.UploadAssetResponse{URL: url}, nil
}

func (s *assetService) UploadVideo(ctx context.Context, file *multipart.FileHeader) (*dto.UploadAssetResponse, error) {
	if file.Size > maxVideoSize {
		return nil, serverutils.NewBadRequest("video exceeds the 64MB limit")
	}

	url, err := s.storage.UploadVideo(ctx, file)
	if err != nil {
		s.logger.Error("asset", "video upload failed", map[string]interface{}{"error": err.Error()})
		return nil, serverutils.NewBadRequest(err.Error())
	}

	return &dto.UploadAssetResponse{URL: url}, nil
}

func (s *assetService) Delete(ctx context.Context, req *dto.DeleteAssetRequest) error {
	if err := s.storage.Delete(ctx, req.URL); err != nil {
		return serverutils.NewBadRequest(err.Error())
	}
	return nil
}
