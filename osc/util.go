package osc

import (
	"bytes"
	"sync"
)

////
// Utility and helper functions
////

// MaxPacketSize is the largest UDP payload, and the initial capacity of
// pooled encode buffers.
const MaxPacketSize = 65535

var bufPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, MaxPacketSize))
	},
}
