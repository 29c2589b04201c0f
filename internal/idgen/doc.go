// Package idgen mints identifier payloads and wraps them in typed
// identifiers.
//
// Two payload sources are provided:
//   - Sequence: monotonic int64 payloads for phantom.ID
//   - UUIDGenerator: UUID payloads for uuidid.UUID (UUIDv7 in production,
//     FixedGenerator in tests)
//
// The typed helpers (NextID, NextUUID) carry the same recursive bound as the
// constructors they call, so a generator can only mint identifiers for
// entity kinds that declare them.
//
// Thread-safety: every generator here is safe for concurrent use.
package idgen
