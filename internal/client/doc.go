// Package client implements the admin Client: one connection, one command at a time.
//
// SendCommand submits a command and drives the reply stream until a terminal
// response arrives. Log responses are forwarded to the event logger, Data
// responses are rendered to the output writer, and Error or Success end the
// exchange. The connection may be reused after a terminal response; any
// transport or protocol failure leaves it broken.
package client
