package methods

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// DefaultChunkSize is the default streaming chunk size for local-file
// uploads (SPEC_FULL.md §6.5).
const DefaultChunkSize = 64 * 1024

// InputFile is one of the four upload shapes named in SPEC_FULL.md §6.5:
// a file-id, an HTTPS URL, a filesystem path, or an in-memory buffer. The
// first two serialize inline as strings; the latter two produce a
// multipart Part referenced by an attach://{uuid} URI.
type InputFile interface {
	// encode returns the inline string form (for FileID/URL) or, when the
	// value requires multipart upload, an attach:// URI plus the Part to
	// send alongside it.
	encode(fieldName string) (inline string, part *Part, err error)
}

// FileID references a file already known to Telegram.
type FileID string

func (f FileID) encode(string) (string, *Part, error) { return string(f), nil, nil }

// URL references a file Telegram should fetch itself.
type URL string

func (u URL) encode(string) (string, *Part, error) { return string(u), nil, nil }

// Path streams a local file in DefaultChunkSize chunks, buffering reads
// through a *bufio.Reader over the *os.File so the multipart writer never
// pulls more than one chunk into memory at a time (SPEC_FULL.md Design
// Notes §9 "take-once stream").
type Path string

func (p Path) encode(fieldName string) (string, *Part, error) {
	f, err := os.Open(string(p))
	if err != nil {
		return "", nil, fmt.Errorf("methods: open input file: %w", err)
	}
	id := uuid.New().String()
	reader := &chunkedFile{Reader: bufio.NewReaderSize(f, DefaultChunkSize), f: f}
	return "attach://" + id, &Part{FieldName: fieldName, FileName: id, Reader: reader}, nil
}

// chunkedFile pairs the buffered reader Path.encode hands to the multipart
// writer with the underlying *os.File, so a caller that type-asserts Part's
// Reader to io.Closer can release the descriptor once the part is sent.
type chunkedFile struct {
	*bufio.Reader
	f *os.File
}

func (c *chunkedFile) Close() error { return c.f.Close() }

// Bytes uploads an in-memory buffer.
type Bytes struct {
	Name string
	Data []byte
}

func (b Bytes) encode(fieldName string) (string, *Part, error) {
	id := uuid.New().String()
	name := b.Name
	if name == "" {
		name = id
	}
	return "attach://" + id, &Part{FieldName: fieldName, FileName: name, Reader: bytes.NewReader(b.Data)}, nil
}
