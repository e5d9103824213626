package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	var parts []string
	if a.identity != "" {
		parts = append(parts, a.identity)
	}
	if m := a.Mode(); m != "" {
		parts = append(parts, string(m))
	}
	if len(a.files) > 0 || a.recipients.Len() > 0 {
		parts = append(parts, fmt.Sprintf("%d file(s) -> %d recipient(s)", len(a.files), a.recipients.Len()))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ") "
}

// Root runs the interactive client until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to sharefile (type 'help' for commands)")

	for _, r := range a.config.Recipients {
		if err := a.recipients.Add(r); err != nil {
			fmt.Fprintln(a.out, recipientMessage(err)+":", r)
		}
	}

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// RunOnce sends paths to the configured recipients as a single transfer.
func (a *App) RunOnce(ctx context.Context, paths []string) error {
	if err := a.AddFiles(ctx, paths); err != nil {
		return err
	}
	for _, r := range a.config.Recipients {
		if err := a.recipients.Add(r); err != nil {
			fmt.Fprintln(a.out, recipientMessage(err)+":", r)
			return err
		}
	}
	return a.Send(ctx)
}

// Run starts the REPL, or sends files in one shot when any are given.
func (a *App) Run(ctx context.Context, files []string) error {
	if len(files) > 0 {
		return a.RunOnce(ctx, files)
	}
	a.Root(ctx)
	return nil
}
