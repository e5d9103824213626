// Package transfer drives a multi-file transfer through the sharefile
// upload protocol: create the transfer, then for every file compute a
// checksum, request an upload slot and PUT the bytes, and finally finalize
// the transfer once every file is stored.
//
// # Key Types
//
//   - RecipientList: normalized, de-duplicated recipient addresses
//   - Task:          one file's journey; a forward-only state machine
//   - Session:       in-flight aggregate (busy flag, percent complete)
//   - Orchestrator:  validation, sequencing and fail-fast abort
//
// # Failure Semantics
//
// Validation errors (ErrValidation and everything wrapping it) are detected
// before any network call. Any other failure aborts the run: no further
// files are attempted and the transfer is never finalized. Nothing is
// retried and nothing created so far is rolled back.
package transfer
