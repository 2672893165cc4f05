// Package httpx holds the request/response plumbing shared by all HTTP
// handlers: a size-limited JSON body decoder and the {"success": true} /
// {"error": "..."} response envelopes every endpoint uses.
package httpx
