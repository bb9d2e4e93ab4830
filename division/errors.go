package division

import "errors"

// ErrNonManifoldRing is returned when the parent's ring has fewer than
// 3 links and so cannot carry a cleavage plane at all.
var ErrNonManifoldRing = errors.New("division: ring too small to divide")
