package services

import "errors"

// Recoverable, user-facing conditions. The attempted mutation never takes
// effect and the system stays in its prior state.
var (
	ErrEmptyCart           = errors.New("cart is empty, nothing to suspend")
	ErrEmptyCheckout       = errors.New("cart is empty, nothing to pay")
	ErrInsufficientPayment = errors.New("cash received is less than the total")
	ErrInvalidPrice        = errors.New("price must be greater than zero")
	ErrNotFound            = errors.New("record not found")
	ErrImportFormatInvalid = errors.New("backup file is missing required arrays")
	ErrCategoryInUse       = errors.New("category is still used by one or more products")
)
