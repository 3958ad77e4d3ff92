package receipt

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"

	"github.com/YasserDalali/compaire/domain"
	"github.com/YasserDalali/compaire/entities"
	"github.com/YasserDalali/compaire/internal/utils/storage"
	"github.com/YasserDalali/compaire/pkg/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReceiptService interface {
		CreateReceipt(ctx context.Context, req domain.CreateReceiptRequest) (domain.ReceiptResponse, error)
		GetReceipt(ctx context.Context, id uint) (domain.ReceiptResponse, error)
		GetReceiptsByAuthor(ctx context.Context, key domain.UserKey) ([]domain.ReceiptResponse, error)
	}

	receiptService struct {
		receiptRepository ReceiptRepository
		userRepository    user.UserRepository
		s3                storage.AwsS3
	}
)

func NewReceiptService(receiptRepository ReceiptRepository, userRepository user.UserRepository, s3 storage.AwsS3) ReceiptService {
	return &receiptService{
		receiptRepository: receiptRepository,
		userRepository:    userRepository,
		s3:                s3,
	}
}

func (s *receiptService) CreateReceipt(ctx context.Context, req domain.CreateReceiptRequest) (domain.ReceiptResponse, error) {
	objectKey := "receipts/" + uuid.New().String() + filepath.Ext(req.Receipt.Filename)
	blobURL, err := s.s3.UploadFile(req.Receipt, objectKey)
	if err != nil {
		return domain.ReceiptResponse{}, err
	}

	receipt := &entities.Receipt{
		BlobURL:  blobURL,
		Content:  req.Content,
		AuthorID: req.AuthorID,
	}

	if err := s.receiptRepository.CreateReceipt(ctx, receipt); err != nil {
		// The row never existed; don't leave the blob orphaned.
		_ = s.s3.DeleteFile(objectKey)
		return domain.ReceiptResponse{}, err
	}
	return toReceiptResponse(receipt), nil
}

func (s *receiptService) GetReceipt(ctx context.Context, id uint) (domain.ReceiptResponse, error) {
	receipt, err := s.receiptRepository.GetReceiptByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiptResponse{}, domain.ErrReceiptNotFound
		}
		return domain.ReceiptResponse{}, err
	}
	return toReceiptResponse(receipt), nil
}

func (s *receiptService) GetReceiptsByAuthor(ctx context.Context, key domain.UserKey) ([]domain.ReceiptResponse, error) {
	author, err := s.userRepository.GetUserByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	receipts, err := s.receiptRepository.GetReceiptsByAuthorID(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		response = append(response, toReceiptResponse(r))
	}
	return response, nil
}

func toReceiptResponse(receipt *entities.Receipt) domain.ReceiptResponse {
	return domain.ReceiptResponse{
		ID:        receipt.ID,
		BlobURL:   receipt.BlobURL,
		Content:   json.RawMessage(receipt.Content),
		AuthorID:  receipt.AuthorID,
		CreatedAt: receipt.CreatedAt,
	}
}
