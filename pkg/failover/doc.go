// Package failover decides, cheaply, whether session and content operations
// should hit the durable store or a process-local in-memory fallback.
//
// A Selector wraps a connectivity probe and caches its verdict for a short
// freshness window, collapsing bursts of calls into one probe during an
// outage. A stale verdict within the window is the accepted trade-off for
// not hammering an unreachable database.
package failover
