package osc

import (
	"bytes"
	"fmt"
	"io"
)

// Message represents a single OSC message. An OSC message consists of an OSC
// address and zero or more arguments.
type Message struct {
	Address   string
	Arguments []Value
}

// Verify that Message implements the io.WriterTo interface.
var _ io.WriterTo = (*Message)(nil)

// NewMessage returns a new Message. The address parameter is the OSC address.
func NewMessage(addr string, args ...Value) *Message {
	return &Message{Address: addr, Arguments: args}
}

// Append appends the given arguments to the arguments list.
func (m *Message) Append(args ...Value) error {
	for i, a := range args {
		if a == nil {
			return fmt.Errorf("Append: argument %d: %w", i, ErrInvalidArgument)
		}
	}
	m.Arguments = append(m.Arguments, args...)
	return nil
}

// Clear removes the address and all arguments.
func (m *Message) Clear() {
	m.Address = ""
	m.Arguments = m.Arguments[:0]
}

// Equals returns true if both messages have the same address and the same
// arguments in the same order.
func (m *Message) Equals(o *Message) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.Address != o.Address || len(m.Arguments) != len(o.Arguments) {
		return false
	}
	for i := range m.Arguments {
		if !valueEqual(m.Arguments[i], o.Arguments[i]) {
			return false
		}
	}
	return true
}

// TypeTags returns the type tag string.
func (m *Message) TypeTags() string {
	if m == nil {
		return ""
	}
	return GetTypeTag(m.Arguments)
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	strBuf := bufPool.Get().(*bytes.Buffer)
	defer bufPool.Put(strBuf)
	strBuf.Reset()

	strBuf.WriteString(m.Address)
	strBuf.WriteByte(' ')
	strBuf.WriteString(m.TypeTags())

	for _, arg := range m.Arguments {
		switch arg := arg.(type) {
		case String, Int32, Float32:
			fmt.Fprintf(strBuf, " %v", arg)

		case Blob:
			fmt.Fprintf(strBuf, " blob(%d)", len(arg))
		}
	}

	return strBuf.String()
}

// WriteTo implements the io.WriterTo interface using DefaultCodec.
func (m *Message) WriteTo(w io.Writer) (int64, error) {
	return DefaultCodec.encode(w, m)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (m *Message) MarshalBinary() ([]byte, error) {
	return DefaultCodec.Marshal(m)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. The
// whole of data must be one message.
func (m *Message) UnmarshalBinary(data []byte) error {
	msg, err := DefaultCodec.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("UnmarshalBinary: %w", err)
	}
	*m = *msg
	return nil
}

// NewMessageFromData parses data as a single message.
func NewMessageFromData(data []byte) (*Message, error) {
	return DefaultCodec.Unmarshal(data)
}

// Marshal returns the encoding of m.
func (c Codec) Marshal(m *Message) ([]byte, error) {
	data := bufPool.Get().(*bytes.Buffer)
	defer bufPool.Put(data)
	data.Reset()

	if err := c.Encode(data, m); err != nil {
		return nil, err
	}
	return append([]byte(nil), data.Bytes()...), nil
}

// Unmarshal decodes data, which must hold exactly one message.
func (c Codec) Unmarshal(data []byte) (*Message, error) {
	r := bytes.NewReader(data)
	m, err := c.Decode(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("Unmarshal: %d trailing bytes after message", r.Len())
	}
	return m, nil
}
