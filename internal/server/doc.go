// Package server wires and runs the bot keeper's transport servers.
//
// It owns the HTTP management API listener and the optional gRPC health
// listener, reacts to termination signals, and on shutdown stops every
// running Matrix client once both transports have drained.
package server
