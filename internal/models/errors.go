package models

import "errors"

// ErrValidation marks a field constraint violation caught at write time.
var ErrValidation = errors.New("validation failed")
