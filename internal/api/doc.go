// Package api implements the HTTP client for a ByteStash server: the two-step
// login exchange, the six snippet operations, multipart upload construction,
// and the shared response classification that maps HTTP statuses onto the
// error taxonomy in internal/common.
//
// Every operation is a single synchronous round trip. There are no retries,
// no caching, and no concurrency; a request either returns a decoded payload
// or one of the typed errors.
package api
