package api

import (
	"context"
	"io"
)

// CreateTransferRequest is the body of POST /api/transfers. Message is sent
// as null when the user left it empty.
type CreateTransferRequest struct {
	Recipients    []string `json:"recipients" validate:"required,min=1,dive,required"`
	Message       *string  `json:"message" validate:"omitempty,max=2048"`
	ExpiresInDays int      `json:"expiresInDays" validate:"min=1,max=30"`
}

type CreateTransferResponse struct {
	ID string `json:"id"`
}

// FileSlotRequest is the body of POST /api/transfers/{id}/files.
type FileSlotRequest struct {
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
	Checksum string `json:"checksum"`
}

type FileSlotResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileID    string `json:"fileId,omitempty"`
}

type Client interface {
	CreateTransfer(ctx context.Context, req CreateTransferRequest) (*CreateTransferResponse, error)
	RequestSlot(ctx context.Context, transferID string, req FileSlotRequest) (*FileSlotResponse, error)
	UploadBlob(ctx context.Context, uploadURL string, contentType string, body io.Reader, size int64) error
	Finalize(ctx context.Context, transferID string) error
	Ping(ctx context.Context) error
}

type requestIDKey struct{}

// WithRequestID attaches a correlation id that HTTPClient sends with every
// API call of the run.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
