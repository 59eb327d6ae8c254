package ioutil_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/ioutil"
)

type errorWriter struct {
	failAfter int
	written   int
}

func (ew *errorWriter) Write(p []byte) (n int, err error) {
	if ew.written >= ew.failAfter {
		return 0, errtrace.Wrap(errors.New("write failed"))
	}
	n = len(p)
	if ew.written+n > ew.failAfter {
		n = ew.failAfter - ew.written
	}
	ew.written += n
	if n < len(p) {
		return n, errtrace.Wrap(errors.New("write failed"))
	}
	return n, nil
}

func TestCountingWriter_Write(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.NewCountingWriter(buf)

	n, err := cw.Write([]byte("//"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 bytes written, got %d", n)
	}

	n, err = cw.Write([]byte("example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 11 {
		t.Errorf("expected 11 bytes written, got %d", n)
	}
	if cw.Count() != 13 {
		t.Errorf("expected count 13, got %d", cw.Count())
	}

	if buf.String() != "//example.com" {
		t.Errorf("expected '//example.com', got %q", buf.String())
	}
}

func TestCountingWriter_WriteString(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.NewCountingWriter(buf)

	n, err := cw.WriteString("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 bytes written, got %d", n)
	}
	if cw.Count() != 4 {
		t.Errorf("expected count 4, got %d", cw.Count())
	}
}

func TestCountingWriter_Fprint(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.NewCountingWriter(buf)

	n, err := cw.Fprint("?", "q=1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 bytes written, got %d", n)
	}
	if buf.String() != "?q=1" {
		t.Errorf("expected '?q=1', got %q", buf.String())
	}
}

func TestCountingWriter_Call(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.NewCountingWriter(buf)

	cw.Call(func(w io.Writer) (int, error) {
		return io.WriteString(w, "scheme:")
	})
	num, err := cw.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != 7 {
		t.Errorf("expected result 7, got %d", num)
	}
}

func TestCountingWriter_ErrorSticks(t *testing.T) {
	t.Parallel()

	cw := ioutil.NewCountingWriter(&errorWriter{failAfter: 3})

	if _, err := cw.WriteString("abcdef"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if n, err := cw.WriteString("more"); err == nil || n != 0 {
		t.Errorf("expected sticky error and 0 bytes, got (%d, %v)", n, err)
	}
	if cw.Err() == nil {
		t.Error("expected Err() to report the failure")
	}
	if num, err := cw.Result(); err == nil || num != 3 {
		t.Errorf("expected (3, error), got (%d, %v)", num, err)
	}
}

func TestCountingWriter_Pool(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.GetCountingWriter(&sb)
	if _, err := cw.WriteString("pooled"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cw.Count() != 6 {
		t.Errorf("expected count 6, got %d", cw.Count())
	}
	ioutil.FreeCountingWriter(cw)

	if sb.String() != "pooled" {
		t.Errorf("expected 'pooled', got %q", sb.String())
	}
}
