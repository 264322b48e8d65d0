package validate

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestValidateJSONLStream_SkipsBlankAndCountsSessions(t *testing.T) {
	in := strings.Join([]string{
		lineJSON("s1", "k1", "p1", 2),
		"",
		"   ",
		lineJSON("s2", "k2", "p2", 1),
		lineJSON("s1", "k1", "", 0),
	}, "\n")

	var out bytes.Buffer
	rep, err := ValidateJSONLStream(context.Background(), NewLineValidator(), strings.NewReader(in), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Valid != 3 || rep.Invalid != 0 || rep.Removals != 1 || rep.Sessions != 2 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if n := strings.Count(out.String(), "\n"); n != 3 {
		t.Fatalf("want 3 canonical lines, got %d: %q", n, out.String())
	}
}

func TestValidateJSONLStream_ReportsLineNumbers(t *testing.T) {
	in := strings.Join([]string{
		lineJSON("s1", "k1", "p1", 1),
		`{"session_id":"s1","key":"k2","count":-1}`,
		`{broken`,
	}, "\n")

	rep, err := ValidateJSONLStream(context.Background(), NewLineValidator(), strings.NewReader(in), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Invalid != 2 || len(rep.Errors) != 2 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if rep.Errors[0].Line != 2 || rep.Errors[1].Line != 3 {
		t.Fatalf("unexpected lines: %+v", rep.Errors)
	}
	for _, le := range rep.Errors {
		if !errors.Is(le.Err, ErrInvalidLine) {
			t.Fatalf("line %d: want ErrInvalidLine, got %v", le.Line, le.Err)
		}
	}
}

func TestValidateJSONLStream_WriteError(t *testing.T) {
	in := lineJSON("s1", "k1", "p1", 1)

	_, err := ValidateJSONLStream(context.Background(), NewLineValidator(), strings.NewReader(in), failingWriter{})
	if err == nil || !strings.Contains(err.Error(), "write valid line") {
		t.Fatalf("want write error, got %v", err)
	}
}

func TestValidateJSONLStream_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := ValidateJSONLStream(ctx, NewLineValidator(), strings.NewReader(lineJSON("s", "k", "p", 1)), &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if rep.Valid != 0 {
		t.Fatalf("nothing should be validated after cancel: %+v", rep)
	}
}
