package methods

import (
	"io"
	"os"
	"strings"
	"testing"
)

func TestPath_Encode_StreamsContentAndCloses(t *testing.T) {
	t.Parallel()
	f, err := os.CreateTemp(t.TempDir(), "upload-*.txt")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	want := "hello from a local file"
	if _, err := f.WriteString(want); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	inline, part, err := Path(f.Name()).encode("photo")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasPrefix(inline, "attach://") {
		t.Fatalf("inline = %q, want attach:// prefix", inline)
	}

	got, err := io.ReadAll(part.Reader)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != want {
		t.Fatalf("content = %q, want %q", got, want)
	}

	closer, ok := part.Reader.(io.Closer)
	if !ok {
		t.Fatalf("expected Path.encode's Reader to implement io.Closer so the caller can release the file descriptor")
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
