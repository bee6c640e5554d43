// Package http implements the management API of go-bot-keeper.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, panic recovery and bearer token authentication
// are handled in this package before requests are delegated to the service
// layer. Every failed call is answered with a JSON [models.ErrorResponse]
// whose errcode names the failure kind.
package http
