// Package reader decodes UTF-8 text from a byte stream into raw characters.
//
// The stream is read in fixed-size chunks; a character split across a chunk
// boundary is carried over and decoded once the rest of it arrives. Offsets
// are absolute byte positions from the start of the stream
package reader

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"wordlang/internal/core/normalize"
	perr "wordlang/internal/platform/errors"
)

// DefaultChunkSize is used when New is given a size below utf8.UTFMax
const DefaultChunkSize = 64 * 1024

// Reader implements normalize.Source over an io.Reader
type Reader struct {
	r   io.Reader
	c   io.Closer
	buf []byte
	pos int // next undecoded byte in buf
	n   int // valid bytes in buf
	off int // absolute offset of buf[pos]
	eof bool
	err error

	chars int
}

// New returns a reader pulling chunkSize bytes at a time from r
func New(r io.Reader, chunkSize int) *Reader {
	if chunkSize < utf8.UTFMax {
		chunkSize = DefaultChunkSize
	}
	return &Reader{r: r, buf: make([]byte, chunkSize)}
}

// Open reads a file, transparently gunzipping names ending in .gz.
// "-" reads standard input
func Open(path string, chunkSize int) (*Reader, error) {
	if path == "-" {
		return New(bufio.NewReader(os.Stdin), chunkSize), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.IOf(err, "open %s", path)
	}
	if !strings.HasSuffix(path, ".gz") {
		rd := New(f, chunkSize)
		rd.c = f
		return rd, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		if cerr := f.Close(); cerr != nil {
			return nil, perr.IOf(errors.Join(err, cerr), "gunzip %s", path)
		}
		return nil, perr.IOf(err, "gunzip %s", path)
	}
	rd := New(gz, chunkSize)
	rd.c = closers{gz, f}
	return rd, nil
}

type closers []io.Closer

func (cs closers) Close() error {
	var errs []error
	for _, c := range cs {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Next implements normalize.Source. It returns false at end of input or once
// decoding fails; Err tells the two apart. Characters buffered before a read
// error are still delivered
func (rd *Reader) Next() (normalize.Raw, bool) {
	rd.fill()
	if rd.pos == rd.n {
		return normalize.Raw{}, false
	}

	window := rd.buf[rd.pos:rd.n]
	if !utf8.FullRune(window) {
		// fill stops short only at end of input or on a read error
		rd.fail(perr.UTF8f("reader: truncated UTF-8 sequence at byte %d", rd.off))
		return normalize.Raw{}, false
	}
	r, size := utf8.DecodeRune(window)
	if r == utf8.RuneError && size == 1 {
		rd.fail(perr.UTF8f("reader: invalid UTF-8 byte 0x%02x at byte %d", window[0], rd.off))
		return normalize.Raw{}, false
	}

	c := normalize.Raw{Offset: rd.off, Rune: r, Size: size}
	rd.pos += size
	rd.off += size
	rd.chars++
	return c, true
}

// fail keeps the first error and stops the stream
func (rd *Reader) fail(err error) {
	if rd.err == nil {
		rd.err = err
	}
	rd.eof = true
	rd.pos = rd.n
}

// fill tops the window up to at least one full character when the stream allows
func (rd *Reader) fill() {
	if rd.eof || rd.n-rd.pos >= utf8.UTFMax {
		return
	}
	rd.n = copy(rd.buf, rd.buf[rd.pos:rd.n])
	rd.pos = 0

	for empty := 0; !rd.eof && rd.n < utf8.UTFMax; {
		m, err := rd.r.Read(rd.buf[rd.n:])
		rd.n += m
		switch {
		case errors.Is(err, io.EOF):
			rd.eof = true
		case err != nil:
			rd.eof = true
			rd.err = perr.IOf(err, "reader: read failed at byte %d", rd.off+rd.n)
		case m == 0:
			empty++
			if empty >= 100 {
				rd.eof = true
				rd.err = perr.IOf(io.ErrNoProgress, "reader: read failed at byte %d", rd.off+rd.n)
			}
		}
	}
}

// Err returns the first IO or UTF8 error encountered, nil at a clean end
func (rd *Reader) Err() error { return rd.err }

// Offset is the number of bytes decoded so far
func (rd *Reader) Offset() int { return rd.off }

// Chars is the number of characters decoded so far
func (rd *Reader) Chars() int { return rd.chars }

// Close closes the underlying file when the reader owns one
func (rd *Reader) Close() error {
	if rd.c == nil {
		return nil
	}
	return rd.c.Close()
}
