package query

import "errors"

// ErrUnsupportedReconfiguration is returned by CHQuery.SetWeighting: a
// contraction hierarchy is only valid for the weighting it was built with,
// and re-weighting a built query is refused explicitly rather than silently
// ignored (spec.md's Open Question on this, resolved towards surfacing a
// failure instead of a silent no-op).
var ErrUnsupportedReconfiguration = errors.New("query: cannot change weighting on a built CHQuery")
