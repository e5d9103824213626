package transfer

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/sharefile/internal/client/api"
	"github.com/dmitrijs2005/sharefile/internal/logging"
)

// DefaultExpiresInDays is the expiry used when the caller has no preference.
const DefaultExpiresInDays = 7

// Orchestrator runs the create → upload-all → finalize protocol.
type Orchestrator struct {
	client      api.Client
	checksummer Checksummer
	session     *Session
	logger      logging.Logger
	validate    *validator.Validate
	maxFileSize int64
	concurrency int
}

type Option func(*Orchestrator)

func WithChecksummer(c Checksummer) Option {
	return func(o *Orchestrator) { o.checksummer = c }
}

func WithSession(s *Session) Option {
	return func(o *Orchestrator) { o.session = s }
}

func WithLogger(l logging.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

func WithMaxFileSize(n int64) Option {
	return func(o *Orchestrator) { o.maxFileSize = n }
}

// WithConcurrency sets how many files are uploaded at once. With n <= 1
// files are processed strictly one after another in input order.
func WithConcurrency(n int) Option {
	return func(o *Orchestrator) { o.concurrency = n }
}

func NewOrchestrator(c api.Client, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		client:      c,
		checksummer: PrefixChecksum{},
		session:     NewSession(),
		logger:      logging.Nop(),
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		maxFileSize: MaxFileSize,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Orchestrator) Session() *Session {
	return o.session
}

// CreateTransfer uploads files to recipients as one transfer and returns the
// server's transfer id.
//
// Inputs are validated before any network call. After that the first failure
// aborts the run: later files are not attempted and the transfer is not
// finalized. If the transfer record was already created when the run failed,
// its id is returned together with the error so the caller can report it.
func (o *Orchestrator) CreateTransfer(ctx context.Context, files []File, recipients []string, message string, expiresInDays int) (string, error) {
	req, err := o.prepare(files, recipients, message, expiresInDays)
	if err != nil {
		return "", err
	}

	requestID := uuid.NewString()
	ctx = api.WithRequestID(ctx, requestID)
	log := o.logger.With("request_id", requestID)

	o.session.begin()
	defer o.session.reset()

	log.Info(ctx, "creating transfer",
		"files", len(files), "recipients", len(req.Recipients), "total_bytes", TotalSize(files))

	created, err := o.client.CreateTransfer(ctx, *req)
	if err != nil {
		log.Error(ctx, "transfer creation failed", "error", err)
		return "", fmt.Errorf("%w: %w", ErrTransferCreation, err)
	}
	if created == nil || created.ID == "" {
		log.Error(ctx, "transfer creation returned no id")
		return "", fmt.Errorf("%w: %w", ErrTransferCreation, api.ErrMalformedResponse)
	}

	id := created.ID
	log = log.With("transfer_id", id)

	tasks := make([]*Task, len(files))
	for i, f := range files {
		tasks[i] = NewTask(f)
	}

	if err := o.uploadAll(ctx, log, id, tasks); err != nil {
		log.Error(ctx, "transfer aborted, not finalizing", "error", err)
		return id, err
	}

	if err := o.client.Finalize(ctx, id); err != nil {
		log.Error(ctx, "finalize failed", "error", err)
		return id, fmt.Errorf("%w: %w", ErrFinalize, err)
	}

	log.Info(ctx, "transfer finalized")
	return id, nil
}

func (o *Orchestrator) prepare(files []File, recipients []string, message string, expiresInDays int) (*api.CreateTransferRequest, error) {
	if len(files) == 0 {
		return nil, ErrEmptyFileList
	}
	if len(recipients) == 0 {
		return nil, ErrEmptyRecipientList
	}

	list, err := NewRecipientList(recipients...)
	if err != nil {
		return nil, err
	}

	if err := CheckFileSizes(files, o.maxFileSize); err != nil {
		return nil, err
	}

	req := &api.CreateTransferRequest{
		Recipients:    list.List(),
		ExpiresInDays: expiresInDays,
	}
	if message != "" {
		req.Message = &message
	}

	if err := o.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return req, nil
}

func (o *Orchestrator) uploadAll(ctx context.Context, log logging.Logger, transferID string, tasks []*Task) error {
	if o.concurrency <= 1 || len(tasks) == 1 {
		return o.uploadSequential(ctx, log, transferID, tasks)
	}
	return o.uploadParallel(ctx, log, transferID, tasks)
}

func (o *Orchestrator) uploadSequential(ctx context.Context, log logging.Logger, transferID string, tasks []*Task) error {
	for i, t := range tasks {
		if err := o.runTask(ctx, log, transferID, i, t); err != nil {
			return err
		}
		o.session.complete(i+1, len(tasks))
	}
	return nil
}

// uploadParallel runs up to o.concurrency tasks at once. The first failure
// cancels the tasks still in flight and no new task is started.
func (o *Orchestrator) uploadParallel(ctx context.Context, log logging.Logger, transferID string, tasks []*Task) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	var done atomic.Int64
	for i, t := range tasks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := o.runTask(gctx, log, transferID, i, t); err != nil {
				return err
			}
			o.session.complete(int(done.Add(1)), len(tasks))
			return nil
		})
	}

	return g.Wait()
}

func (o *Orchestrator) runTask(ctx context.Context, log logging.Logger, transferID string, index int, t *Task) error {
	log.Debug(ctx, "uploading file", "index", index, "file", t.FileName, "size", t.FileSize, "mime_type", t.MimeType)

	if err := t.Run(ctx, o.client, o.checksummer, transferID); err != nil {
		log.Warn(ctx, "file failed", "index", index, "file", t.FileName, "status", t.Status(), "error", err)
		return err
	}

	log.Debug(ctx, "file uploaded", "index", index, "file", t.FileName, "checksum", t.Checksum)
	return nil
}
