package override

import "errors"

var (
	ErrBadConfig = errors.New("bad config")
	ErrNotExist  = errors.New("not exist")
	ErrNotReady  = errors.New("not ready")
	ErrNotValid  = errors.New("invalid")
)
