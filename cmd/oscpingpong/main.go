// Command oscpingpong binds a local UDP port, connects it to a second port
// and then exchanges OSC messages: every interval it sends
// `/test "Hello" 4`, and it logs every message it receives.
//
// Run two of them against each other:
//
//	oscpingpong 9000 9001
//	oscpingpong 9001 9000
package main

import (
	"os"
	"path/filepath"
)

func main() {
	name := filepath.Base(os.Args[0])
	opts, err := ParseFlags(name, os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	os.Exit(run(opts))
}
