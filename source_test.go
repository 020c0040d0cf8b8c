package huffpack

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
)

func readSource(t *testing.T, src Source) []byte {
	t.Helper()
	r, err := src.Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	return raw
}

func TestBytesSource_Reopen(t *testing.T) {
	src := BytesSource("hello")
	for i := 0; i < 2; i++ {
		if raw := readSource(t, src); string(raw) != "hello" {
			t.Errorf("pass %d: expected %q, got %q", i, "hello", raw)
		}
	}
}

func TestBufferSource(t *testing.T) {
	src, err := BufferSource(iotest.OneByteReader(strings.NewReader("hello")))
	if err != nil {
		t.Fatalf("BufferSource failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if raw := readSource(t, src); string(raw) != "hello" {
			t.Errorf("pass %d: expected %q, got %q", i, "hello", raw)
		}
	}

	_, err = BufferSource(iotest.ErrReader(errBoom))
	if !errors.Is(err, errBoom) {
		t.Errorf("expected errBoom, got %v", err)
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	input := []byte(strings.Repeat("a file with some text in it\n", 100))
	path := filepath.Join(dir, "input.txt")
	if err := ioutil.WriteFile(path, input, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var fromFile bytes.Buffer
	if err := Encode(FileSource(path), &fromFile); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	fromMemory, err := EncodeBytes(input)
	if err != nil {
		t.Fatalf("EncodeBytes failed: %v", err)
	}
	if !bytes.Equal(fromMemory, fromFile.Bytes()) {
		t.Errorf("file and memory sources encoded differently")
	}

	compressed := filepath.Join(dir, "input.huff")
	if err := ioutil.WriteFile(compressed, fromFile.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	f, err := os.Open(compressed)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	var decoded bytes.Buffer
	if err := Decode(f, &decoded); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(input, decoded.Bytes()) {
		t.Errorf("round trip through files failed")
	}
}

func TestFileSource_Missing(t *testing.T) {
	src := FileSource(filepath.Join(t.TempDir(), "missing"))
	err := Encode(src, ioutil.Discard)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
