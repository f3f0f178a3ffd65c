package environment

import "errors"

// ErrUnknownEnvironment is returned by Parse for names outside the known set.
var ErrUnknownEnvironment = errors.New("unknown environment")
