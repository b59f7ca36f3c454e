// Package oscnet carries OSC messages over UDP, one message per datagram.
//
// The osc package decodes from any io.Reader. A datagram socket can't be
// read a few bytes at a time without losing the rest of the datagram, so
// oscnet reads whole datagrams and hands the codec an in-memory source.
//
// Counters for sent, received and undecodable messages are exported through
// Prometheus once RegisterMetrics has been called.
package oscnet
