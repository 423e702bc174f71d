// Package errors defines error types for the Corrosion admin client.
//
// This package provides structured error types for the four failure classes of
// an admin exchange: connecting to the endpoint, moving bytes over the
// transport, violating the wire protocol, and the endpoint answering a command
// with an explicit error. All error types support error unwrapping and can be
// checked using errors.Is, errors.As, and errors.AsType.
package errors
