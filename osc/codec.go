package osc

import (
	"fmt"
	"io"
)

// Codec encodes and decodes OSC messages. A Codec holds no state between
// calls and can be shared by any number of goroutines, as long as each call
// has its own source or sink.
type Codec struct {
	// PadBlobs aligns blob payloads to 4 bytes as the OSC 1.0 specification
	// describes. It is off by default: blobs are written as the length
	// followed by the raw bytes and nothing else.
	PadBlobs bool
}

// DefaultCodec is the Codec used by Encode and Decode.
var DefaultCodec = Codec{}

// Encode writes m to w using DefaultCodec.
func Encode(w io.Writer, m *Message) error {
	return DefaultCodec.Encode(w, m)
}

// Decode reads a single message from r using DefaultCodec.
func Decode(r io.Reader) (*Message, error) {
	return DefaultCodec.Decode(r)
}

// Encode writes m to w: the address, the typetag string, then every argument.
// Bytes already written when an error occurs are not taken back.
func (c Codec) Encode(w io.Writer, m *Message) error {
	_, err := c.encode(w, m)
	return err
}

func (c Codec) encode(w io.Writer, m *Message) (int64, error) {
	if m == nil {
		return 0, fmt.Errorf("Encode: %w", ErrNilMessage)
	}

	// Nothing is written for a message that can't be encoded completely.
	for i, arg := range m.Arguments {
		if ToTypeTag(arg) == TypeInvalid {
			return 0, fmt.Errorf("Encode: argument %d: %w", i, ErrInvalidArgument)
		}
	}

	var total int64
	n, err := writePaddedString(w, m.Address)
	total += int64(n)
	if err != nil {
		return total, fmt.Errorf("Encode: address: %w", err)
	}

	// Write the type tag string
	n, err = writePaddedString(w, GetTypeTag(m.Arguments))
	total += int64(n)
	if err != nil {
		return total, fmt.Errorf("Encode: typetags: %w", err)
	}

	// Write the payload (OSC arguments)
	for i, arg := range m.Arguments {
		switch t := arg.(type) {
		default:
			return total, fmt.Errorf("Encode: argument %d: unsupported type: %T", i, t)
		case String:
			n, err = writePaddedString(w, string(t))
		case Int32:
			n, err = writeInt32(w, int32(t))
		case Float32:
			n, err = writeFloat32(w, float32(t))
		case Blob:
			n, err = writeBlob(w, t, c.PadBlobs)
		}
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("Encode: argument %d: %w", i, err)
		}
	}

	return total, nil
}

// Decode reads exactly one message from r. Nothing beyond the end of the
// message is consumed.
func (c Codec) Decode(r io.Reader) (*Message, error) {
	m, _, err := c.decode(newReader(r))
	return m, err
}

func (c Codec) decode(r *reader) (*Message, int64, error) {
	start := r.n

	// First, read the OSC address
	addr, _, err := readPaddedString(r)
	if err != nil {
		return nil, r.n - start, fmt.Errorf("Decode: address: %w", err)
	}

	// Read the type tag string
	typetags, _, err := readPaddedString(r)
	if err != nil {
		return nil, r.n - start, fmt.Errorf("Decode: typetags: %w", err)
	}

	// If the typetag doesn't start with ',', it's not valid
	if len(typetags) == 0 || typetags[0] != typeTagPrefix {
		return nil, r.n - start, fmt.Errorf("Decode: %w: %q", ErrMalformedTypeTags, typetags)
	}

	m := &Message{Address: addr, Arguments: make([]Value, 0, len(typetags)-1)}
	for i, tag := range []rune(typetags[1:]) {
		decode, err := decoderFor(TypeTag(tag))
		if err != nil {
			return nil, r.n - start, fmt.Errorf("Decode: argument %d: %w", i, err)
		}
		v, err := decode(r, c)
		if err != nil {
			return nil, r.n - start, fmt.Errorf("Decode: argument %d: %w", i, err)
		}
		m.Arguments = append(m.Arguments, v)
	}

	return m, r.n - start, nil
}
