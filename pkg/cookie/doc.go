// Package cookie provides a small cookie manager with immutable defaults
// and per-call overrides. It backs both the session transport (opaque token,
// HTTP-only) and the consent record (JSON blob readable by the client).
package cookie
