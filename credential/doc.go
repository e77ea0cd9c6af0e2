// Package credential decodes transport-encoded credential pairs and digests
// secrets for storage comparison.
//
// Decode handles the value following the "Basic " scheme prefix of an
// Authorization header: standard base64 over an identifier:secret pair,
// split on the first colon so the secret itself may contain colons.
//
// Digest is a deterministic unsalted single-round SHA-1, kept bit-compatible
// with digests already present in the user store. That construction is a
// known weakness of the stored record format; do not reuse it for new
// secret material outside this store.
package credential
