package catalog

import "errors"

// Domain errors for catalog entries and coercions

var (
	ErrEmptyName         = errors.New("catalog entry name is required")
	ErrUnknownCategory   = errors.New("unknown ingredient category")
	ErrUnknownUnit       = errors.New("unknown unit of measure")
	ErrUnknownMealType   = errors.New("unknown meal type")
	ErrUnknownDifficulty = errors.New("unknown difficulty level")
	ErrUnknownCuisine    = errors.New("unknown cuisine type")
)
