package planning

import "errors"

var (
	ErrDayOutOfRange        = errors.New("meal plan day outside requested range")
	ErrEmptyMealName        = errors.New("meal name cannot be empty")
	ErrShoppingFlagMismatch = errors.New("requires_shopping does not reflect additional ingredients")
)
