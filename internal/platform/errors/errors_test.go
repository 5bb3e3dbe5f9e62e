package errors

import (
	stderrs "errors"
	"fmt"
	"io"
	"net/http"
	"testing"
)

func TestCodeTable(t *testing.T) {
	cases := []struct {
		code   ErrorCode
		name   string
		status int
	}{
		{ErrorCodeInvalidArgument, "invalid_argument", http.StatusUnprocessableEntity},
		{ErrorCodeUTF8, "utf8", http.StatusUnprocessableEntity},
		{ErrorCodeValidation, "validation", http.StatusBadRequest},
		{ErrorCodeJSON, "json", http.StatusBadRequest},
		{ErrorCodeTooLarge, "too_large", http.StatusRequestEntityTooLarge},
		{ErrorCodeNotFound, "not_found", http.StatusNotFound},
		{ErrorCodeIO, "io", http.StatusInternalServerError},
		{ErrorCodePanic, "panic", http.StatusInternalServerError},
		{ErrorCode(999), "unknown", http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := c.code.String(); got != c.name {
			t.Errorf("String(%d) = %q, want %q", c.code, got, c.name)
		}
		if got := HTTPStatusCode(c.code); got != c.status {
			t.Errorf("HTTPStatusCode(%s) = %d, want %d", c.code, got, c.status)
		}
	}
}

func TestWrappedCodeSurvives(t *testing.T) {
	err := fmt.Errorf("reading stdin: %w", UTF8f("invalid UTF-8 byte 0x%02x", 0xff))

	if !IsCode(err, ErrorCodeUTF8) {
		t.Fatalf("CodeOf = %v, want utf8", CodeOf(err))
	}
	if HTTPStatus(err) != http.StatusUnprocessableEntity {
		t.Fatalf("HTTPStatus = %d", HTTPStatus(err))
	}
	w := WireFrom(err)
	if w.Message != "invalid UTF-8 byte 0xff" {
		t.Fatalf("wire message %q", w.Message)
	}
}

func TestIOfKeepsCause(t *testing.T) {
	err := IOf(io.ErrUnexpectedEOF, "read %s", "doc.txt")

	if got := err.Error(); got != "read doc.txt: unexpected EOF" {
		t.Fatalf("Error() = %q", got)
	}
	if !stderrs.Is(err, io.ErrUnexpectedEOF) {
		t.Fatal("cause lost")
	}
	if Root(err) != io.ErrUnexpectedEOF {
		t.Fatalf("Root = %v", Root(err))
	}
	if WireFrom(err).Message != "read doc.txt" {
		t.Fatalf("wire leaks cause: %q", WireFrom(err).Message)
	}
}

func TestWithFieldCopies(t *testing.T) {
	base := InvalidArgf("unsupported language %q", "haw")
	tagged := WithOp(WithField(base, "only[1]"), "detect.filter")

	e, ok := As(tagged)
	if !ok {
		t.Fatal("As failed")
	}
	if e.Field() != "only[1]" || e.Op() != "detect.filter" {
		t.Fatalf("field=%q op=%q", e.Field(), e.Op())
	}
	if b, _ := As(base); b.Field() != "" {
		t.Fatal("base error was mutated")
	}
	if WireFrom(tagged).Field != "only[1]" {
		t.Fatal("field missing from wire")
	}
}

func TestForeignErrors(t *testing.T) {
	plain := stderrs.New("boom")

	if WithField(plain, "x") != plain {
		t.Fatal("foreign error should pass through")
	}
	if CodeOf(plain) != ErrorCodeUnknown {
		t.Fatal("foreign error should be unknown")
	}
	if w := WireFrom(plain); w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("wire = %+v", w)
	}
	if WireFrom(nil) != (Wire{}) {
		t.Fatal("nil should give zero wire")
	}

	var e *Error
	if e.Error() != "<nil>" {
		t.Fatal("nil *Error render")
	}
}
