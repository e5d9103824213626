package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/sharefile/internal/client/api"
	"github.com/dmitrijs2005/sharefile/internal/client/config"
	"github.com/dmitrijs2005/sharefile/internal/client/history"
	"github.com/dmitrijs2005/sharefile/internal/client/transfer"
	"github.com/dmitrijs2005/sharefile/internal/common"
	"github.com/dmitrijs2005/sharefile/internal/logging"
)

// ---- fake api client ----

// fakeClient implements api.Client; unset behaviour succeeds.
type fakeClient struct {
	api.Client

	mu          sync.Mutex
	createErr   error
	finalizeErr error
	pingErr     error

	created   []api.CreateTransferRequest
	uploads   []string
	finalized []string
}

func (f *fakeClient) CreateTransfer(_ context.Context, req api.CreateTransferRequest) (*api.CreateTransferResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &api.CreateTransferResponse{ID: "tr-1"}, nil
}

func (f *fakeClient) RequestSlot(_ context.Context, id string, req api.FileSlotRequest) (*api.FileSlotResponse, error) {
	return &api.FileSlotResponse{UploadURL: "https://blob.example/" + id + "/" + req.FileName}, nil
}

func (f *fakeClient) UploadBlob(_ context.Context, url, _ string, body io.Reader, _ int64) error {
	_, _ = io.Copy(io.Discard, body)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, url)
	return nil
}

func (f *fakeClient) Finalize(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finalized = append(f.finalized, id)
	return f.finalizeErr
}

func (f *fakeClient) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pingErr
}

// ---- fake history ----

type fakeHistory struct {
	records []*history.Record
	saveErr error
	listErr error
}

func (h *fakeHistory) Save(_ context.Context, r *history.Record) error {
	if h.saveErr != nil {
		return h.saveErr
	}
	h.records = append(h.records, r)
	return nil
}

func (h *fakeHistory) List(_ context.Context, limit int) ([]*history.Record, error) {
	if h.listErr != nil {
		return nil, h.listErr
	}
	out := make([]*history.Record, 0, len(h.records))
	for i := len(h.records) - 1; i >= 0; i-- {
		out = append(out, h.records[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (h *fakeHistory) Get(_ context.Context, id string) (*history.Record, error) {
	for _, r := range h.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, common.ErrorNotFound
}

// ---- app construction ----

type testApp struct {
	*App
	fc  *fakeClient
	fh  *fakeHistory
	buf *bytes.Buffer
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.HistoryDSN = ""
	return c
}

func newTestApp(t *testing.T, input string, mutate ...func(*config.Config)) *testApp {
	t.Helper()
	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	fc := &fakeClient{}
	fh := &fakeHistory{}
	out := &bytes.Buffer{}
	orch := transfer.NewOrchestrator(fc, transfer.WithMaxFileSize(cfg.MaxFileSize))

	a := newApp(cfg, fc, orch, fh, logging.Nop(), bufio.NewReader(strings.NewReader(input)), out)
	return &testApp{App: a, fc: fc, fh: fh, buf: out}
}

func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, bytes.Repeat([]byte("x"), size), 0o600))
	return p
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}
