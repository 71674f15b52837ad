package encode

import "errors"

// ErrEncoding wraps failures to render a node.
var ErrEncoding = errors.New("encoding error")
