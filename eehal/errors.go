package eehal

import "errors"

var (
	ErrorInvalidConfig = errors.New("Page size or capacity is invalid")
	ErrorOutOfRange    = errors.New("Access crosses the end of the device")
	ErrorTimeout       = errors.New("The operation did not complete in time")
	ErrorWriteTooLong  = errors.New("Write does not fit in a single page")
)
