// Command osctool converts OSC messages between their binary wire form and
// a YAML description.
//
//	osctool encode msg.yaml > msg.osc
//	osctool decode msg.osc
//
// Without a file argument, or with "-", the input is read from stdin.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
