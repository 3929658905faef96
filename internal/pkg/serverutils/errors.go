package serverutils

import "errors"

var (
	ErrNotFound    = errors.New("the requested resource was not found")
	ErrMalformedId = errors.New("the provided id is not a valid identifier")
	ErrBadRequest  = errors.New("the request could not be processed due to invalid input")
	ErrInternal    = errors.New("something went wrong on our end, please try again later")
)
