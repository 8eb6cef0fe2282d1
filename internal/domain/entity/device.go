// Package entity contains the core business objects of the project.
package entity

// Device identifies the client context a request arrived from. The hash is a
// digest of connection metadata, not a cryptographic device attestation: two
// clients with identical headers behind the same address are
// indistinguishable. It is stable enough to bind sessions and tokens to, and
// that is all it promises.
type Device struct {
	Hash           string // SHA-256 over ip|user-agent|accept-language|accept-encoding.
	Name           string // Best-effort label parsed from the user-agent.
	IP             string // Connection address.
	UserAgent      string // Raw User-Agent header.
	AcceptLanguage string // Raw Accept-Language header.
	AcceptEncoding string // Raw Accept-Encoding header.
}
