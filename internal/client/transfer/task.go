package transfer

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sharefile/internal/client/api"
)

// Status is the position of a Task in its lifecycle.
type Status int

const (
	StatusPending Status = iota
	StatusChecksumming
	StatusAwaitingSlot
	StatusUploading
	StatusCompleted
	StatusFailed
)

var statusNames = [...]string{
	StatusPending:      "pending",
	StatusChecksumming: "checksumming",
	StatusAwaitingSlot: "awaiting_slot",
	StatusUploading:    "uploading",
	StatusCompleted:    "completed",
	StatusFailed:       "failed",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusNames[s]
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Task carries one file through checksum, slot request and upload.
//
// Statuses only move forward one step at a time, except that StatusFailed
// can be entered from any non-terminal status. Checksum is set before the
// slot is requested and UploadURL before the upload starts.
type Task struct {
	FileName  string
	FileSize  int64
	MimeType  string
	Checksum  string
	UploadURL string

	file   File
	status Status
	err    error
}

func NewTask(f File) *Task {
	return &Task{
		FileName: f.Name(),
		FileSize: f.Size(),
		MimeType: mimeTypeOf(f),
		file:     f,
	}
}

func (t *Task) Status() Status { return t.status }

// Err returns the failure cause once the task is StatusFailed.
func (t *Task) Err() error { return t.err }

func (t *Task) transition(next Status) error {
	if t.status.Terminal() || (next != StatusFailed && next != t.status+1) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, t.status, next)
	}
	t.status = next
	return nil
}

func (t *Task) fail(err error) error {
	if terr := t.transition(StatusFailed); terr != nil {
		return terr
	}
	t.err = err
	return err
}

// Run drives a pending task to StatusCompleted. The first failing step
// moves the task to StatusFailed and its error is returned; nothing is
// retried.
func (t *Task) Run(ctx context.Context, c api.Client, ck Checksummer, transferID string) error {
	if t.status != StatusPending {
		return fmt.Errorf("%w: run from %s", ErrIllegalTransition, t.status)
	}

	if err := t.computeChecksum(ctx, ck); err != nil {
		return err
	}
	if err := t.requestSlot(ctx, c, transferID); err != nil {
		return err
	}
	if err := t.upload(ctx, c); err != nil {
		return err
	}

	return t.transition(StatusCompleted)
}

func (t *Task) computeChecksum(ctx context.Context, ck Checksummer) error {
	if err := t.transition(StatusChecksumming); err != nil {
		return err
	}

	sum, err := ck.Checksum(ctx, t.file)
	if err != nil {
		return t.fail(fmt.Errorf("%w: %s: %w", ErrChecksum, t.FileName, err))
	}
	t.Checksum = sum
	return nil
}

func (t *Task) requestSlot(ctx context.Context, c api.Client, transferID string) error {
	if err := t.transition(StatusAwaitingSlot); err != nil {
		return err
	}

	resp, err := c.RequestSlot(ctx, transferID, api.FileSlotRequest{
		FileName: t.FileName,
		FileSize: t.FileSize,
		MimeType: t.MimeType,
		Checksum: t.Checksum,
	})
	if err != nil {
		return t.fail(fmt.Errorf("%w: %s: %w", ErrSlotRequest, t.FileName, err))
	}
	if resp == nil || resp.UploadURL == "" {
		return t.fail(fmt.Errorf("%w: %s: %w", ErrSlotRequest, t.FileName, api.ErrMalformedResponse))
	}
	t.UploadURL = resp.UploadURL
	return nil
}

func (t *Task) upload(ctx context.Context, c api.Client) error {
	if err := t.transition(StatusUploading); err != nil {
		return err
	}

	rc, err := t.file.Open()
	if err != nil {
		return t.fail(fmt.Errorf("%w: %s: %w", ErrUpload, t.FileName, err))
	}
	defer rc.Close()

	if err := c.UploadBlob(ctx, t.UploadURL, t.MimeType, rc, t.FileSize); err != nil {
		return t.fail(fmt.Errorf("%w: %s: %w", ErrUpload, t.FileName, err))
	}
	return nil
}
