// Package client talks to the tokenkeeper server over gRPC.
//
// GRPCClient keeps the caller's access and refresh tokens, attaches the
// access token to every call and, when the server answers "token expired",
// rotates the pair once and retries. Server failures are mapped back to
// the values callers already know: registry errors match the registry.Err*
// sentinels, identity failures match the common sentinels, and transport
// trouble becomes ErrUnavailable.
package client
