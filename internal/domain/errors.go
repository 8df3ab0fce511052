package domain

import "errors"

var (
	ErrCartEmpty      = errors.New("no items in cart")
	ErrInvalidInput   = errors.New("invalid input")
	ErrCheckoutFailed = errors.New("checkout failed")
	ErrFulfillFailed  = errors.New("fulfillment failed")
)
