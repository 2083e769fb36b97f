package detect

import "errors"

// errDecodeFailure is the internal sentinel for a sub-walker hitting
// malformed structure it can't interpret (e.g. an EBML vint wider than 8
// bytes). It is always swallowed locally by the probe
// that produced it; DetectFromTokenizer never sees it escape.
var errDecodeFailure = errors.New("detect: malformed container structure")
