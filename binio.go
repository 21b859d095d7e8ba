package gir

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

// C13: binary serialization layer. Every persisted structure in §6.1 is a
// sequence of length-prefixed primitives written in a single fixed order
// that writer and reader agree on; the teacher's own persistence code
// (poster.go) uses binary.Write/binary.Read with a fixed byte order for
// exactly this reason.

// WriteString writes a length-prefixed UTF-8 string: an int32 byte count
// followed by the raw bytes.
func WriteString(w io.Writer, s string) error {
	b := []byte(s)
	if err := WriteInt32(w, int32(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// ReadString reads a string previously written by WriteString.
func ReadString(r io.Reader) (string, error) {
	n, err := ReadInt32(r)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// WriteInt32 writes a little-endian int32.
func WriteInt32(w io.Writer, v int32) error {
	return binary.Write(w, binary.LittleEndian, v)
}

// ReadInt32 reads a little-endian int32.
func ReadInt32(r io.Reader) (int32, error) {
	var v int32
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

// WriteInt64 writes a little-endian int64 ("long" in §6.1).
func WriteInt64(w io.Writer, v int64) error {
	return binary.Write(w, binary.LittleEndian, v)
}

// ReadInt64 reads a little-endian int64.
func ReadInt64(r io.Reader) (int64, error) {
	var v int64
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

// WriteFloat64 writes a little-endian double.
func WriteFloat64(w io.Writer, v float64) error {
	return binary.Write(w, binary.LittleEndian, v)
}

// ReadFloat64 reads a little-endian double.
func ReadFloat64(r io.Reader) (float64, error) {
	var v float64
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

// CreateArtifactFile opens path for writing, wrapping it in a buffered
// writer, and in a parallel-gzip writer (pgzip, BestSpeed) when path ends
// in ".gz" — the teacher applies the same "zipp" switch to every persisted
// file in merge.go/poster.go, citing parallel gzip for large-file speed.
// The returned Closer must be closed to flush the gzip trailer.
func CreateArtifactFile(path string) (io.Writer, io.Closer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	bw := bufio.NewWriter(f)

	if strings.HasSuffix(path, ".gz") {
		zw, err := pgzip.NewWriterLevel(bw, pgzip.BestSpeed)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return zw, multiCloser{zw, bw, f}, nil
	}

	return bw, multiCloser{bw, f}, nil
}

// OpenArtifactFile opens path for reading, transparently decompressing it
// with pgzip when path ends in ".gz".
func OpenArtifactFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	br := bufio.NewReader(f)

	if strings.HasSuffix(path, ".gz") {
		zr, err := pgzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return zr, multiCloser{zr, f}, nil
	}

	return br, f, nil
}

// multiCloser closes each closeable member in order, tolerating members
// (like a *bufio.Writer) that do not implement io.Closer.
type multiCloser []interface{}

func (m multiCloser) Close() error {
	var first error
	for _, c := range m {
		if bw, ok := c.(*bufio.Writer); ok {
			if err := bw.Flush(); err != nil && first == nil {
				first = err
			}
			continue
		}
		if cl, ok := c.(io.Closer); ok {
			if err := cl.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
