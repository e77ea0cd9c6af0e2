package credential

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is returned by [Decode] when the blob is not valid base64 or
// the decoded text carries no identifier/secret separator.
var ErrMalformed = errors.New("malformed credential payload")

// Credential is a decoded identifier/secret pair. It is transient: produced
// once per authentication attempt and never persisted.
type Credential struct {
	Identifier string
	Secret     string
}

// Decode parses the base64 blob that follows the scheme prefix of a Basic
// authorization header into a [Credential]. The decoded text is split on the
// first colon only, so secrets may themselves contain colons. Either segment
// may be empty; absence of a separator is the only structural failure.
//
// Decode is a pure function with no side effects.
func Decode(blob string) (Credential, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return Credential{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	identifier, secret, found := strings.Cut(string(raw), ":")
	if !found {
		return Credential{}, ErrMalformed
	}

	return Credential{
		Identifier: identifier,
		Secret:     secret,
	}, nil
}
