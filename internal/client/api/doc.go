// Package api is the client side of the sharefile REST protocol.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     calls made by the upload orchestrator: CreateTransfer, RequestSlot,
//     UploadBlob, Finalize, plus a Ping used for connectivity checks.
//  2. A net/http implementation (see HTTPClient). API calls go through the
//     authenticated channel handed in with WithHTTPClient; blob uploads go to
//     the opaque storage URL through a separate client that carries no
//     session cookies.
//
// # Endpoints
//
//	POST {base}/api/transfers                 CreateTransferRequest -> {id}
//	POST {base}/api/transfers/{id}/files      FileSlotRequest       -> {uploadUrl}
//	PUT  {uploadUrl}                          raw bytes, x-ms-blob-type: BlockBlob
//	POST {base}/api/transfers/{id}/finalize   empty body
//	GET  {base}/api/health
//
// # Error Handling
//
// Responses are mapped to sentinel errors matched with errors.Is:
// ErrUnauthorized (401, 403), ErrUnavailable (502, 503, 504 and transport
// failures) and ErrMalformedResponse. Any other non-2xx status is returned
// as *StatusError.
package api
