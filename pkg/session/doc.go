// Package session manages authenticated browser sessions.
//
// A Session is a random UUID v4 identifier mapped to a user with an expiry.
// The Manager mediates between the client cookie and a Store; the
// FailoverStore implementation routes between the durable Postgres store and
// a process-local in-memory fallback based on a connectivity selector, so a
// database outage degrades sign-in to non-durable sessions instead of
// failing it outright.
//
// Expiry is lazy: an expired session is removed the next time it is read.
// Stores additionally expose DeleteExpired for periodic reaping, and the
// durable store enforces at most one active session per user.
package session
