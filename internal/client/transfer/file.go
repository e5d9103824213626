package transfer

import (
	"fmt"
	"io"
	"math"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/dmitrijs2005/sharefile/internal/common"
)

// MaxFileSize is the default per-file limit (500 MiB).
const MaxFileSize int64 = 500 * 1024 * 1024

// File is one selected file. Open may be called more than once: the
// checksum and the upload read the content independently.
type File interface {
	Name() string
	Size() int64
	MimeType() string
	Open() (io.ReadCloser, error)
}

// LocalFile is a File on the local filesystem.
type LocalFile struct {
	path     string
	name     string
	size     int64
	mimeType string
}

// NewLocalFile stats path and resolves its MIME type, first from the
// extension and then by sniffing the content.
func NewLocalFile(path string) (*LocalFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	return &LocalFile{
		path:     path,
		name:     info.Name(),
		size:     info.Size(),
		mimeType: detectMimeType(path),
	}, nil
}

func (f *LocalFile) Name() string     { return f.name }
func (f *LocalFile) Size() int64      { return f.size }
func (f *LocalFile) MimeType() string { return f.mimeType }
func (f *LocalFile) Path() string     { return f.path }

func (f *LocalFile) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}

func detectMimeType(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	if mt, err := mimetype.DetectFile(path); err == nil && mt != nil {
		return mt.String()
	}
	return common.DefaultMimeType
}

// mimeTypeOf falls back to the generic type when a file reports none.
func mimeTypeOf(f File) string {
	if t := f.MimeType(); t != "" {
		return t
	}
	return common.DefaultMimeType
}

// CheckFileSizes rejects the whole batch when any file exceeds max. The
// error names every offending file.
func CheckFileSizes(files []File, max int64) error {
	var tooLarge []string
	for _, f := range files {
		if f.Size() > max {
			tooLarge = append(tooLarge, fmt.Sprintf("%s (%s)", f.Name(), FormatSize(f.Size())))
		}
	}
	if len(tooLarge) > 0 {
		return fmt.Errorf("%w: limit is %s: %s", ErrFileTooLarge, FormatSize(max), strings.Join(tooLarge, ", "))
	}
	return nil
}

func TotalSize(files []File) int64 {
	var total int64
	for _, f := range files {
		total += f.Size()
	}
	return total
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatSize renders a byte count with base-1024 units and at most two
// decimals, e.g. "0 Bytes", "1.5 KB", "500 MB".
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	i := 0
	scaled := float64(bytes)
	for scaled >= 1024 && i < len(sizeUnits)-1 {
		scaled /= 1024
		i++
	}

	v := math.Round(scaled*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}
