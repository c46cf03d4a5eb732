package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single error kind of the checkout flow.
// Every precondition failure wraps it, so callers may match either the
// kind or the specific condition with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrNonPositiveQuantity = fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
	ErrExceedsStock        = fmt.Errorf("%w: quantity exceeds available stock", ErrInvalidArgument)
	ErrCartEmpty           = fmt.Errorf("%w: cart is empty", ErrInvalidArgument)
	ErrProductExpired      = fmt.Errorf("%w: product is expired", ErrInvalidArgument)
	ErrOutOfStock          = fmt.Errorf("%w: out of stock", ErrInvalidArgument)
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrInvalidArgument)
)
