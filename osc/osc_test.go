package osc

import (
	"errors"
	"io"
)

const zero = string(byte(0))

// nulls returns a string of `i` nulls.
func nulls(i int) string {
	s := ""
	for j := 0; j < i; j++ {
		s += zero
	}
	return s
}

type testCase struct {
	name    string
	obj     *Message
	raw     []byte
	wantErr bool
}

var messageTestCases = []testCase{
	{
		"no_arguments",
		&Message{Address: "/a", Arguments: []Value{}},
		[]byte("/a" + nulls(2) + "," + nulls(3)),
		false,
	},
	{
		"two_strings",
		&Message{Address: "/test/do", Arguments: []Value{String("Hello"), String("world")}},
		[]byte("/test/do" + nulls(4) + ",ss" + nulls(1) + "Hello" + nulls(3) + "world" + nulls(3)),
		false,
	},
	{
		"int32",
		&Message{Address: "/i", Arguments: []Value{Int32(0x00112233)}},
		[]byte("/i" + nulls(2) + ",i" + nulls(2) + "\x00\x11\x22\x33"),
		false,
	},
	{
		"negative_int32",
		&Message{Address: "/i", Arguments: []Value{Int32(-1)}},
		[]byte("/i" + nulls(2) + ",i" + nulls(2) + "\xff\xff\xff\xff"),
		false,
	},
	{
		"float32",
		&Message{Address: "/f", Arguments: []Value{Float32(1.234)}},
		[]byte("/f" + nulls(2) + ",f" + nulls(2) + "\x3f\x9d\xf3\xb6"),
		false,
	},
	{
		"blob_unpadded",
		&Message{Address: "/b", Arguments: []Value{Blob{1, 2, 3, 4, 5}}},
		[]byte("/b" + nulls(2) + ",b" + nulls(2) + "\x00\x00\x00\x05\x01\x02\x03\x04\x05"),
		false,
	},
	{
		"mixed",
		&Message{Address: "/test", Arguments: []Value{String("Hello"), Int32(4), Float32(0.5), Blob{0xaa, 0xbb, 0xcc, 0xdd}}},
		[]byte("/test" + nulls(3) + ",sifb" + nulls(3) + "Hello" + nulls(3) + "\x00\x00\x00\x04" + "\x3f\x00\x00\x00" + "\x00\x00\x00\x04\xaa\xbb\xcc\xdd"),
		false,
	},
	{
		"empty_string_argument",
		&Message{Address: "/s", Arguments: []Value{String("")}},
		[]byte("/s" + nulls(2) + ",s" + nulls(2) + nulls(4)),
		false,
	},
	{
		"unicode_address",
		&Message{Address: "/ünï", Arguments: []Value{String("çå")}},
		[]byte("/ünï" + nulls(2) + ",s" + nulls(2) + "çå" + nulls(4)),
		false,
	},
}

// errWriter accepts limit bytes and then fails.
type errWriter struct {
	limit   int
	written []byte
}

var errSinkClosed = errors.New("sink closed")

func (w *errWriter) Write(b []byte) (int, error) {
	if len(w.written)+len(b) > w.limit {
		n := w.limit - len(w.written)
		w.written = append(w.written, b[:n]...)
		return n, errSinkClosed
	}
	w.written = append(w.written, b...)
	return len(b), nil
}

// oneByteReader hides any io.ByteReader implementation and returns a single
// byte per Read call.
type oneByteReader struct {
	r io.Reader
}

func (o *oneByteReader) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	return o.r.Read(b[:1])
}
