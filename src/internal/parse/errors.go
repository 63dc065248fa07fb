package parse

import "errors"

// ErrUnrecognizedFormat means no grammar's top-level structure matched the
// input. The only recovery is a corrected input string.
var ErrUnrecognizedFormat = errors.New("unrecognized citation format")

// ErrMalformedGrammar means a grammar matched structurally but a mandatory
// delimiter or sub-field inside it is missing.
var ErrMalformedGrammar = errors.New("malformed citation")
