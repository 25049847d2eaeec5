// Package errors defines the closed error taxonomy shared by every layer of
// the picacg client.
//
// Each failure is an *Error carrying a stable Kind for programmatic branching
// and a free-text Message for display. Transport, decode, parameter, file and
// lock failures all surface through this one type.
package errors
