package models

import "errors"

// ErrUnknownStatus is returned for unrecognized offer status values
var ErrUnknownStatus = errors.New("unknown offer status")
