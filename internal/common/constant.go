// Package common contains shared constants and sentinel errors used across
// sharefile client components.
package common

// RequestIDHeaderName carries the per-run correlation id on outbound API
// requests.
const RequestIDHeaderName = "X-Request-ID"

// Header names and values expected by the blob storage behind upload slots.
const (
	BlobTypeHeaderName = "x-ms-blob-type"
	BlobTypeBlockBlob  = "BlockBlob"
)

// CSRF cookie/header pair issued by the sharefile backend.
const (
	CSRFCookieName = "csrf-token"
	CSRFHeaderName = "X-CSRF-TOKEN"
)

// DefaultMimeType is sent when a file's type is unknown.
const DefaultMimeType = "application/octet-stream"
