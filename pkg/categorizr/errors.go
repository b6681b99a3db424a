package categorizr

import "errors"

// ErrUnknownCategory is returned by ParseCategory for tags outside the four
// known categories. Detect never fails.
var ErrUnknownCategory = errors.New("unknown device category")
