package domain

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateReceipt = "receipt uploaded successfully"
	MessageSuccessGetReceipt    = "receipt retrieved successfully"
	MessageSuccessGetReceipts   = "receipts retrieved successfully"

	MessageFailedCreateReceipt = "failed to upload receipt"
	MessageFailedGetReceipt    = "failed to retrieve receipt"
	MessageFailedGetReceipts   = "failed to retrieve receipts"

	ErrReceiptNotFound = errors.New("receipt not found")
)

type (
	CreateReceiptRequest struct {
		Receipt  *multipart.FileHeader `json:"receipt" form:"receipt" validate:"required"`
		Content  string                `json:"content" form:"content" validate:"required,json"`
		AuthorID uint                  `json:"authorId" form:"authorId" validate:"required"`
	}

	ReceiptResponse struct {
		ID        uint            `json:"id"`
		BlobURL   string          `json:"blob_url"`
		Content   json.RawMessage `json:"content"`
		AuthorID  uint            `json:"authorId"`
		CreatedAt time.Time       `json:"created_at"`
	}
)
