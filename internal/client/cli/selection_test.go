package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/sharefile/internal/client/config"
	"github.com/dmitrijs2005/sharefile/internal/client/transfer"
)

func TestAddFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", 10)
	b := writeFile(t, dir, "b.txt", 1536)

	app := newTestApp(t, "")
	require.NoError(t, app.AddFiles(context.Background(), []string{a, b}))

	require.Len(t, app.files, 2)
	assert.Equal(t, "a.txt", app.files[0].Name())
	assert.Contains(t, app.buf.String(), "Added 2 file(s)")

	app.buf.Reset()
	require.NoError(t, app.ListFiles(context.Background()))
	assert.Contains(t, app.buf.String(), " 1. a.txt (10 Bytes")
	assert.Contains(t, app.buf.String(), " 2. b.txt (1.5 KB")
	assert.Contains(t, app.buf.String(), "Total: 1.51 KB")
}

func TestAddFiles_PromptsForPath(t *testing.T) {
	p := writeFile(t, t.TempDir(), "prompted.bin", 3)

	app := newTestApp(t, p+"\n")
	require.NoError(t, app.AddFiles(context.Background(), nil))
	require.Len(t, app.files, 1)
	assert.Equal(t, "prompted.bin", app.files[0].Name())
}

func TestAddFiles_RejectsBatchOverLimit(t *testing.T) {
	dir := t.TempDir()
	small := writeFile(t, dir, "small.bin", 10)
	big := writeFile(t, dir, "big.bin", 200)

	app := newTestApp(t, "", func(c *config.Config) { c.MaxFileSize = 100 })
	err := app.AddFiles(context.Background(), []string{small, big})
	require.ErrorIs(t, err, transfer.ErrFileTooLarge)

	assert.Empty(t, app.files, "whole batch rejected")
	assert.Contains(t, app.buf.String(), "big.bin")
}

func TestAddFiles_Missing(t *testing.T) {
	app := newTestApp(t, "")
	err := app.AddFiles(context.Background(), []string{filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
	assert.Empty(t, app.files)
	assert.Contains(t, app.buf.String(), "Cannot add")
}

func TestRemoveFile(t *testing.T) {
	dir := t.TempDir()
	app := newTestApp(t, "")
	require.NoError(t, app.AddFiles(context.Background(), []string{
		writeFile(t, dir, "a", 1), writeFile(t, dir, "b", 1), writeFile(t, dir, "c", 1),
	}))

	require.NoError(t, app.RemoveFile(context.Background(), []string{"2"}))
	require.Len(t, app.files, 2)
	assert.Equal(t, "a", app.files[0].Name())
	assert.Equal(t, "c", app.files[1].Name())

	require.ErrorIs(t, app.RemoveFile(context.Background(), []string{"3"}), transfer.ErrIndexOutOfRange)
	require.ErrorIs(t, app.RemoveFile(context.Background(), nil), errUsage)
	require.ErrorIs(t, app.RemoveFile(context.Background(), []string{"x"}), errUsage)
}

func TestRecipients(t *testing.T) {
	app := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, app.AddRecipients(ctx, []string{" A@B.com "}))
	err := app.AddRecipients(ctx, []string{"a@b.com", "c@d.org", "broken"})
	require.ErrorIs(t, err, transfer.ErrDuplicateRecipient)
	require.ErrorIs(t, err, transfer.ErrInvalidEmail)

	assert.Equal(t, []string{"a@b.com", "c@d.org"}, app.recipients.List())
	assert.Contains(t, app.buf.String(), "This email has already been added")
	assert.Contains(t, app.buf.String(), "Please enter a valid email address")

	app.buf.Reset()
	require.NoError(t, app.ListRecipients(ctx))
	assert.Equal(t, " 1. a@b.com\n 2. c@d.org\n", app.buf.String())

	require.NoError(t, app.RemoveRecipient(ctx, []string{"1"}))
	assert.Equal(t, []string{"c@d.org"}, app.recipients.List())
	require.Error(t, app.RemoveRecipient(ctx, []string{"5"}))
}

func TestRecipients_Prompt(t *testing.T) {
	app := newTestApp(t, "x@y.com\n")
	require.NoError(t, app.AddRecipients(context.Background(), nil))
	assert.Equal(t, []string{"x@y.com"}, app.recipients.List())
}

func TestSetMessage(t *testing.T) {
	app := newTestApp(t, "line one\nline two\n\n")
	ctx := context.Background()

	require.NoError(t, app.SetMessage(ctx, []string{"hello", "there"}))
	assert.Equal(t, "hello there", app.message)

	require.NoError(t, app.SetMessage(ctx, []string{"-"}))
	assert.Empty(t, app.message)

	require.NoError(t, app.SetMessage(ctx, nil))
	assert.Equal(t, "line one\nline two", app.message)
}

func TestSetExpiry(t *testing.T) {
	app := newTestApp(t, "")
	ctx := context.Background()
	assert.Equal(t, 7, app.expiresInDays)

	require.NoError(t, app.SetExpiry(ctx, []string{"14"}))
	assert.Equal(t, 14, app.expiresInDays)

	require.ErrorIs(t, app.SetExpiry(ctx, []string{"31"}), errUsage)
	require.ErrorIs(t, app.SetExpiry(ctx, []string{"zero"}), errUsage)
	require.ErrorIs(t, app.SetExpiry(ctx, nil), errUsage)
	assert.Equal(t, 14, app.expiresInDays)
}

func TestClear(t *testing.T) {
	app := newTestApp(t, "")
	ctx := context.Background()
	require.NoError(t, app.AddFiles(ctx, []string{writeFile(t, t.TempDir(), "a", 1)}))
	require.NoError(t, app.AddRecipients(ctx, []string{"a@b.com"}))
	app.message = "m"

	require.NoError(t, app.Clear(ctx))
	assert.Empty(t, app.files)
	assert.Equal(t, 0, app.recipients.Len())
	assert.Empty(t, app.message)
}
