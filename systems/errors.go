package systems

import "errors"

var errNoStore = errors.New("level has no store")
