// Package registry implements the token registry state machine: identifier
// allocation, ownership tracking and the owner checks that gate mutation.
//
// A Registry holds no state of its own besides its collaborators. Tokens and
// the next identifier live in a Store; ownership changes are reported to a
// Notifier. The host is expected to run each call against a Store that either
// commits every write of the call or none of them, and to serialize calls.
package registry
