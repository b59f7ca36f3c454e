package osc

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

////
// De/Encoding functions
////

const bit32Size = 4

// padding is the source of NUL bytes for alignment.
var padding [bit32Size]byte

// reader is the byte source used while decoding. It never reads ahead of
// what the decoder asks for, so whatever follows a message stays in the
// underlying io.Reader.
type reader struct {
	r       io.Reader
	br      io.ByteReader
	n       int64
	scratch [bit32Size]byte
}

func newReader(r io.Reader) *reader {
	if rr, ok := r.(*reader); ok {
		return rr
	}
	br, _ := r.(io.ByteReader)
	return &reader{r: r, br: br}
}

// Read implements io.Reader.
func (r *reader) Read(b []byte) (int, error) {
	n, err := r.r.Read(b)
	r.n += int64(n)
	return n, err
}

// ReadByte implements io.ByteReader.
func (r *reader) ReadByte() (byte, error) {
	if r.br != nil {
		c, err := r.br.ReadByte()
		if err == nil {
			r.n++
		}
		return c, err
	}
	if _, err := io.ReadFull(r, r.scratch[:1]); err != nil {
		return 0, err
	}
	return r.scratch[0], nil
}

// discard consumes n bytes.
func (r *reader) discard(n int) error {
	for ; n > 0; n-- {
		if _, err := r.ReadByte(); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return err
		}
	}
	return nil
}

// readPaddedString reads a padded string from the given reader and returns
// the string and the number of bytes read.
func readPaddedString(r *reader) (string, int, error) {
	var str []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && len(str) > 0 {
				err = io.ErrUnexpectedEOF
			}
			return "", len(str), fmt.Errorf("readPaddedString: %w", err)
		}
		if c == 0 {
			break
		}
		str = append(str, c)
	}

	n := len(str) + 1
	if err := r.discard(padBytesNeeded(n)); err != nil {
		return "", n, fmt.Errorf("readPaddedString: %w", err)
	}
	n += padBytesNeeded(n)

	if !utf8.Valid(str) {
		return "", n, fmt.Errorf("readPaddedString: %w", ErrInvalidEncoding)
	}

	return string(str), n, nil
}

// writePaddedString writes a string with padding bytes to w.
// Returns the number of written bytes and an error if any.
func writePaddedString(w io.Writer, str string) (int, error) {
	n, err := io.WriteString(w, str)
	if err != nil {
		return n, err
	}

	// The terminator plus whatever is needed to reach a 4 byte boundary.
	m, err := w.Write(padding[:1+padBytesNeeded(n+1)])
	return n + m, err
}

// readInt32 reads a big-endian int32.
func readInt32(r *reader) (int32, error) {
	if _, err := io.ReadFull(r, r.scratch[:]); err != nil {
		return 0, fmt.Errorf("readInt32: %w", err)
	}
	return int32(binary.BigEndian.Uint32(r.scratch[:])), nil
}

// writeInt32 writes i as 4 big-endian bytes.
func writeInt32(w io.Writer, i int32) (int, error) {
	var b [bit32Size]byte
	binary.BigEndian.PutUint32(b[:], uint32(i))
	return w.Write(b[:])
}

// readFloat32 reads a big-endian IEEE 754 single.
func readFloat32(r *reader) (float32, error) {
	if _, err := io.ReadFull(r, r.scratch[:]); err != nil {
		return 0, fmt.Errorf("readFloat32: %w", err)
	}
	return math.Float32frombits(binary.BigEndian.Uint32(r.scratch[:])), nil
}

// writeFloat32 writes the bit pattern of f as 4 big-endian bytes.
func writeFloat32(w io.Writer, f float32) (int, error) {
	var b [bit32Size]byte
	binary.BigEndian.PutUint32(b[:], math.Float32bits(f))
	return w.Write(b[:])
}

// readBlob reads an OSC blob. When pad is set the alignment bytes following
// the payload are consumed and not returned.
func readBlob(r *reader, pad bool) ([]byte, int, error) {
	// First, get the length
	blobLen, err := readInt32(r)
	if err != nil {
		return nil, 0, fmt.Errorf("readBlob: %w", err)
	}
	if blobLen < 0 {
		return nil, bit32Size, fmt.Errorf("readBlob: %w: %d", ErrInvalidBlobLength, blobLen)
	}

	// The length is untrusted, so let the buffer grow with what actually arrives.
	data, err := io.ReadAll(io.LimitReader(r, int64(blobLen)))
	n := bit32Size + len(data)
	if err != nil {
		return nil, n, fmt.Errorf("readBlob: %w", err)
	}
	if len(data) < int(blobLen) {
		return nil, n, fmt.Errorf("readBlob: %w", io.ErrUnexpectedEOF)
	}
	if data == nil {
		data = []byte{}
	}

	if pad {
		if err := r.discard(padBytesNeeded(len(data))); err != nil {
			return nil, n, fmt.Errorf("readBlob: %w", err)
		}
		n += padBytesNeeded(len(data))
	}

	return data, n, nil
}

// writeBlob writes data as an OSC blob into w. If pad is set and the length
// of data isn't 32-bit aligned, padding bytes will be added.
func writeBlob(w io.Writer, data []byte, pad bool) (int, error) {
	// Add the size of the blob
	n, err := writeInt32(w, int32(len(data)))
	if err != nil {
		return n, err
	}

	// Write the data
	m, err := w.Write(data)
	n += m
	if err != nil || !pad {
		return n, err
	}

	m, err = w.Write(padding[:padBytesNeeded(len(data))])
	return n + m, err
}

// padBytesNeeded determines how many bytes are needed to fill up to the next 4
// byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}
