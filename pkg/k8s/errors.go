package k8s

import "fmt"

// InvalidQuantityError is returned when a quantity does not end with a known suffix
// or its numeric part cannot be parsed
type InvalidQuantityError struct {
	quantity string
}

func NewInvalidQuantityError(quantity string) InvalidQuantityError {
	return InvalidQuantityError{
		quantity: quantity,
	}
}

func (e InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %q", e.quantity)
}
