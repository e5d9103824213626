package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sharefile/internal/client/transfer"
)

var errUsage = errors.New("usage")

// newLocalFile is a test seam for transfer.NewLocalFile.
var newLocalFile = func(path string) (transfer.File, error) {
	return transfer.NewLocalFile(path)
}

// AddFiles adds the files at the given paths, prompting for one when none is
// given. The batch is rejected as a whole when any file is unreadable or
// over the size limit.
func (a *App) AddFiles(ctx context.Context, args []string) error {
	paths := args
	if len(paths) == 0 {
		p, err := GetSimpleText(a.reader, "File path:", a.out)
		if err != nil {
			return err
		}
		if p == "" {
			return nil
		}
		paths = []string{p}
	}

	batch := make([]transfer.File, 0, len(paths))
	for _, p := range paths {
		f, err := newLocalFile(p)
		if err != nil {
			fmt.Fprintf(a.out, "Cannot add %s: %v\n", p, err)
			return err
		}
		batch = append(batch, f)
	}

	if err := transfer.CheckFileSizes(batch, a.config.MaxFileSize); err != nil {
		fmt.Fprintln(a.out, "Some files exceed the size limit:", err)
		return err
	}

	a.files = append(a.files, batch...)
	fmt.Fprintf(a.out, "Added %d file(s). Selected: %d, total %s\n",
		len(batch), len(a.files), transfer.FormatSize(transfer.TotalSize(a.files)))
	return nil
}

func (a *App) ListFiles(ctx context.Context) error {
	if len(a.files) == 0 {
		fmt.Fprintln(a.out, "No files selected")
		return nil
	}
	for i, f := range a.files {
		fmt.Fprintf(a.out, "%2d. %s (%s, %s)\n", i+1, f.Name(), transfer.FormatSize(f.Size()), f.MimeType())
	}
	fmt.Fprintf(a.out, "Total: %s\n", transfer.FormatSize(transfer.TotalSize(a.files)))
	return nil
}

func (a *App) RemoveFile(ctx context.Context, args []string) error {
	i, err := parsePosition(args, len(a.files))
	if err != nil {
		fmt.Fprintln(a.out, "Usage: rm <file number>")
		return err
	}
	name := a.files[i].Name()
	a.files = append(a.files[:i], a.files[i+1:]...)
	fmt.Fprintf(a.out, "Removed %s\n", name)
	return nil
}

// AddRecipients adds every address in args, prompting for one when none is
// given. Rejected addresses are reported and the rest are still added.
func (a *App) AddRecipients(ctx context.Context, args []string) error {
	emails := args
	if len(emails) == 0 {
		e, err := GetSimpleText(a.reader, "Recipient email:", a.out)
		if err != nil {
			return err
		}
		emails = []string{e}
	}

	var errs []error
	for _, e := range emails {
		if err := a.recipients.Add(e); err != nil {
			fmt.Fprintln(a.out, recipientMessage(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func recipientMessage(err error) string {
	switch {
	case errors.Is(err, transfer.ErrDuplicateRecipient):
		return "This email has already been added"
	case errors.Is(err, transfer.ErrInvalidEmail):
		return "Please enter a valid email address"
	}
	return err.Error()
}

func (a *App) ListRecipients(ctx context.Context) error {
	if a.recipients.Len() == 0 {
		fmt.Fprintln(a.out, "No recipients")
		return nil
	}
	for i, r := range a.recipients.List() {
		fmt.Fprintf(a.out, "%2d. %s\n", i+1, r)
	}
	return nil
}

func (a *App) RemoveRecipient(ctx context.Context, args []string) error {
	i, err := parsePosition(args, a.recipients.Len())
	if err != nil {
		fmt.Fprintln(a.out, "Usage: unto <recipient number>")
		return err
	}
	return a.recipients.Remove(i)
}

// SetMessage sets the message from args or, without args, from a multi-line
// prompt. "-" clears it.
func (a *App) SetMessage(ctx context.Context, args []string) error {
	if len(args) == 1 && args[0] == "-" {
		a.message = ""
		fmt.Fprintln(a.out, "Message cleared")
		return nil
	}

	if len(args) > 0 {
		a.message = strings.Join(args, " ")
		return nil
	}

	msg, err := GetMultiline(a.reader, "Message for recipients:", a.out)
	if err != nil {
		return err
	}
	a.message = msg
	return nil
}

func (a *App) SetExpiry(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintf(a.out, "Expiry: %d day(s). Usage: expiry <1-30>\n", a.expiresInDays)
		return errUsage
	}
	days, err := strconv.Atoi(args[0])
	if err != nil || days < 1 || days > 30 {
		fmt.Fprintln(a.out, "Expiry must be a number of days between 1 and 30")
		return fmt.Errorf("%w: expiry %q", errUsage, args[0])
	}
	a.expiresInDays = days
	return nil
}

// Clear drops the current selection; the expiry is kept.
func (a *App) Clear(ctx context.Context) error {
	a.files = nil
	a.recipients.Clear()
	a.message = ""
	return nil
}

// parsePosition turns a 1-based position argument into an index below n.
func parsePosition(args []string, n int) (int, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errUsage, err)
	}
	if pos < 1 || pos > n {
		return 0, fmt.Errorf("%w: %d", transfer.ErrIndexOutOfRange, pos)
	}
	return pos - 1, nil
}
