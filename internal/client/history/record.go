package history

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type FileRecord struct {
	Name     string
	Size     int64
	MimeType string
}

// Record is one transfer attempt. TransferID is empty when the server never
// created the transfer.
type Record struct {
	ID            string
	TransferID    string
	Status        Status
	Recipients    []string
	Message       string
	ExpiresInDays int
	Files         []FileRecord
	Error         string
	CreatedAt     time.Time
}

// NewRecord returns a record with a fresh id and the outcome derived from
// err.
func NewRecord(transferID string, recipients []string, message string, expiresInDays int, files []FileRecord, err error) *Record {
	r := &Record{
		ID:            uuid.NewString(),
		TransferID:    transferID,
		Status:        StatusCompleted,
		Recipients:    recipients,
		Message:       message,
		ExpiresInDays: expiresInDays,
		Files:         files,
		CreatedAt:     time.Now().UTC(),
	}
	if err != nil {
		r.Status = StatusFailed
		r.Error = err.Error()
	}
	return r
}

// TotalSize is the sum of all file sizes.
func (r *Record) TotalSize() int64 {
	var n int64
	for _, f := range r.Files {
		n += f.Size
	}
	return n
}
