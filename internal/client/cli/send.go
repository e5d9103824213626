package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sharefile/internal/client/api"
	"github.com/dmitrijs2005/sharefile/internal/client/history"
	"github.com/dmitrijs2005/sharefile/internal/client/transfer"
)

const defaultHistoryLimit = 10

// Send uploads the current selection as one transfer. On success the
// selection is cleared; on failure it is kept so the user can retry.
func (a *App) Send(ctx context.Context) error {
	files := a.files
	recipients := a.recipients.List()

	id, err := a.orch.CreateTransfer(ctx, files, recipients, a.message, a.expiresInDays)
	a.record(ctx, id, recipients, files, err)

	if err != nil {
		a.reportFailure(id, err)
		return err
	}

	fmt.Fprintf(a.out, "Transfer %s created: %d file(s), %s, sent to %s\n",
		id, len(files), transfer.FormatSize(transfer.TotalSize(files)), strings.Join(recipients, ", "))
	_ = a.Clear(ctx)
	return nil
}

func (a *App) reportFailure(id string, err error) {
	switch {
	case errors.Is(err, transfer.ErrEmptyFileList):
		fmt.Fprintln(a.out, "Please add at least one file")
	case errors.Is(err, transfer.ErrEmptyRecipientList):
		fmt.Fprintln(a.out, "Please add at least one recipient")
	case errors.Is(err, transfer.ErrValidation):
		fmt.Fprintln(a.out, "Cannot send:", err)
	default:
		fmt.Fprintln(a.out, "Failed to create transfer:", err)
	}

	if errors.Is(err, api.ErrUnauthorized) {
		fmt.Fprintln(a.out, "The server rejected the session. Use 'token' to set a new session token.")
	}
	if id != "" {
		fmt.Fprintf(a.out, "Transfer %s was created but not finalized\n", id)
	}
}

// record journals the attempt. Validation failures never reached the server
// and are not recorded.
func (a *App) record(ctx context.Context, id string, recipients []string, files []transfer.File, err error) {
	if a.history == nil || (err != nil && errors.Is(err, transfer.ErrValidation)) {
		return
	}

	fr := make([]history.FileRecord, len(files))
	for i, f := range files {
		fr[i] = history.FileRecord{Name: f.Name(), Size: f.Size(), MimeType: f.MimeType()}
	}

	rec := history.NewRecord(id, recipients, a.message, a.expiresInDays, fr, err)
	if serr := a.history.Save(ctx, rec); serr != nil {
		a.logger.Warn(ctx, "failed to save history record", "transfer_id", id, "error", serr)
	}
}

// History prints the most recent transfer attempts.
func (a *App) History(ctx context.Context, args []string) error {
	if a.history == nil {
		fmt.Fprintln(a.out, "History is disabled")
		return nil
	}

	limit := defaultHistoryLimit
	if len(args) == 1 {
		if _, err := fmt.Sscan(args[0], &limit); err != nil {
			fmt.Fprintln(a.out, "Usage: history [count]")
			return errUsage
		}
	}

	records, err := a.history.List(ctx, limit)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot read history:", err)
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No transfers yet")
		return nil
	}

	for _, r := range records {
		id := r.TransferID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(a.out, "%s  %-9s  %s  %d file(s), %s -> %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Status, id,
			len(r.Files), transfer.FormatSize(r.TotalSize()), strings.Join(r.Recipients, ", "))
		if r.Error != "" {
			fmt.Fprintf(a.out, "    %s\n", r.Error)
		}
	}
	return nil
}
