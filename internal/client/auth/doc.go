// Package auth carries the browser-style session to the transfer API: the
// session cookie, the CSRF double-submit header, and a read-only view of the
// session token's claims.
package auth
