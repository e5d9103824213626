package transfer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/dmitrijs2005/sharefile/internal/client/api"
)

// ---- fake file ----

type memFile struct {
	name    string
	data    []byte
	size    int64 // overrides len(data) when > 0
	mime    string
	openErr error
}

func newMemFile(name string, n int) *memFile {
	return &memFile{name: name, data: bytes.Repeat([]byte{'x'}, n), mime: "text/plain"}
}

func (f *memFile) Name() string { return f.name }

func (f *memFile) Size() int64 {
	if f.size > 0 {
		return f.size
	}
	return int64(len(f.data))
}

func (f *memFile) MimeType() string { return f.mime }

func (f *memFile) Open() (io.ReadCloser, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

// ---- fake api client ----

type call struct {
	Op   string
	Arg  string
	Size int64
}

type fakeAPI struct {
	mu    sync.Mutex
	calls []call

	TransferID string
	CreateErr  error

	// SlotErr and UploadErr fail the request for the named file.
	SlotErr   map[string]error
	UploadErr map[string]error

	FinalizeErr error
	PingErr     error

	LastCreate    api.CreateTransferRequest
	LastRequestID string
	Slots         []api.FileSlotRequest
	Uploaded      map[string][]byte
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{TransferID: "tr-1", Uploaded: map[string][]byte{}}
}

func (f *fakeAPI) record(c call) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakeAPI) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func (f *fakeAPI) ops() []string {
	var out []string
	for _, c := range f.Calls() {
		out = append(out, c.Op)
	}
	return out
}

func (f *fakeAPI) CreateTransfer(ctx context.Context, req api.CreateTransferRequest) (*api.CreateTransferResponse, error) {
	f.record(call{Op: "create"})
	f.mu.Lock()
	f.LastCreate = req
	f.LastRequestID = api.RequestIDFromContext(ctx)
	f.mu.Unlock()
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	return &api.CreateTransferResponse{ID: f.TransferID}, nil
}

func (f *fakeAPI) RequestSlot(ctx context.Context, transferID string, req api.FileSlotRequest) (*api.FileSlotResponse, error) {
	f.record(call{Op: "slot", Arg: req.FileName})
	f.mu.Lock()
	f.Slots = append(f.Slots, req)
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := f.SlotErr[req.FileName]; err != nil {
		return nil, err
	}
	return &api.FileSlotResponse{UploadURL: "https://blob.example/" + transferID + "/" + req.FileName}, nil
}

func (f *fakeAPI) UploadBlob(ctx context.Context, uploadURL, _ string, body io.Reader, size int64) error {
	f.record(call{Op: "upload", Arg: uploadURL, Size: size})
	if err := ctx.Err(); err != nil {
		return err
	}
	for name, err := range f.UploadErr {
		if uploadURL == "https://blob.example/"+f.TransferID+"/"+name {
			return err
		}
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.Uploaded[uploadURL] = b
	f.mu.Unlock()
	return nil
}

func (f *fakeAPI) Finalize(_ context.Context, transferID string) error {
	f.record(call{Op: "finalize", Arg: transferID})
	return f.FinalizeErr
}

func (f *fakeAPI) Ping(context.Context) error { return f.PingErr }

var errBoom = errors.New("boom")
