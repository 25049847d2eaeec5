// Package session holds the bearer token of the signed-in user.
//
// A Store is owned by the composing application and shared by every request
// issued through a client. Reads happen immediately before each request;
// writes happen on login, logout and when a persisted session is restored.
// The empty string means "not signed in".
package session
