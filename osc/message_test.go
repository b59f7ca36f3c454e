package osc

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_Append(t *testing.T) {
	oscAddress := "/address"
	message := NewMessage(oscAddress)

	message.Append(String("string argument"))
	message.Append(Int32(123456789))
	message.Append(Blob{1, 2, 3})

	if len(message.Arguments) != 3 {
		t.Errorf("Number of arguments should be %d and is %d", 3, len(message.Arguments))
	}

	if err := message.Append(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Append(nil) error = %v, want ErrInvalidArgument", err)
	}
	if len(message.Arguments) != 3 {
		t.Errorf("a failed Append must not change the arguments; got %d", len(message.Arguments))
	}
}

func TestMessage_TypeTags(t *testing.T) {
	tc := []struct {
		desc string
		args []Value
		want string
	}{
		{"no arguments", nil, ","},
		{"one string", []Value{String("a")}, ",s"},
		{"all kinds", []Value{String("a"), Int32(1), Float32(1), Blob{1}}, ",sifb"},
		{"order matters", []Value{Blob{}, Int32(1), String("")}, ",bis"},
	}

	for _, tt := range tc {
		got := NewMessage("/a", tt.args...).TypeTags()
		if got != tt.want {
			t.Errorf("%s: TypeTags() = %q, want %q", tt.desc, got, tt.want)
		}
	}
}

func TestMessage_String(t *testing.T) {
	msg := NewMessage("/test", String("Hello"), Int32(4), Float32(0.5), Blob{1, 2})
	assert.Equal(t, "/test ,sifb Hello 4 0.5 blob(2)", msg.String())
	assert.Equal(t, "", (*Message)(nil).String())
}

func TestMessage_Equals(t *testing.T) {
	a := NewMessage("/a", String("x"), Blob{1, 2})
	assert.True(t, a.Equals(NewMessage("/a", String("x"), Blob{1, 2})))
	assert.False(t, a.Equals(NewMessage("/a", String("x"), Blob{1, 3})))
	assert.False(t, a.Equals(NewMessage("/b", String("x"), Blob{1, 2})))
	assert.False(t, a.Equals(NewMessage("/a", String("x"))))
	assert.False(t, a.Equals(NewMessage("/a", Int32(1), Blob{1, 2})))
	assert.False(t, a.Equals(nil))
	assert.True(t, (*Message)(nil).Equals(nil))
}

func TestMessage_Clear(t *testing.T) {
	msg := NewMessage("/a", Int32(1))
	msg.Clear()
	assert.Empty(t, msg.Address)
	assert.Empty(t, msg.Arguments)
}

func TestMessage_MarshalBinary(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.obj.MarshalBinary()
			if (err != nil) != tt.wantErr {
				t.Errorf("MarshalBinary() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.raw) {
				t.Errorf("MarshalBinary() got = %q, want %q", got, tt.raw)
			}
		})
	}
}

func TestMessage_UnmarshalBinary(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			m := new(Message)
			if err := m.UnmarshalBinary(tt.raw); (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalBinary() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !m.Equals(tt.obj) {
				t.Errorf("UnmarshalBinary() got = %v, want %v", m, tt.obj)
			}
		})
	}
}

func TestMessage_UnmarshalBinaryTrailingData(t *testing.T) {
	raw := append([]byte("/a"+nulls(2)+","+nulls(3)), 0, 0, 0, 0)
	m := new(Message)
	assert.Error(t, m.UnmarshalBinary(raw))
}

func TestMessage_WriteTo(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			w := &errWriter{limit: len(tt.raw)}
			n, err := tt.obj.WriteTo(w)
			assert.NoError(t, err)
			assert.EqualValues(t, len(tt.raw), n)
			assert.Equal(t, tt.raw, w.written)
		})
	}
}

var result interface{}

var temp = &Message{Address: "/composition/layers/1/clips/1/transport/position", Arguments: []Value{Float32(0.123456789), String("hello world")}}

func BenchmarkMessageMarshalBinary(b *testing.B) {
	var buf []byte
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		buf, _ = temp.MarshalBinary()
	}
	result = buf
}
