package catalog

import "strings"

// Category classifies a catalog ingredient for grouping and matching.
type Category string

const (
	CategoryProduce   Category = "produce"
	CategoryMeat      Category = "meat"
	CategorySeafood   Category = "seafood"
	CategoryDairy     Category = "dairy"
	CategoryBakery    Category = "bakery"
	CategoryPantry    Category = "pantry"
	CategorySpices    Category = "spices"
	CategoryBeverages Category = "beverages"
	CategoryFrozen    Category = "frozen"
	CategorySnacks    Category = "snacks"
	CategoryOther     Category = "other"
)

// Valid reports whether the category is part of the enumerated set.
func (c Category) Valid() bool {
	switch c {
	case CategoryProduce, CategoryMeat, CategorySeafood, CategoryDairy,
		CategoryBakery, CategoryPantry, CategorySpices, CategoryBeverages,
		CategoryFrozen, CategorySnacks, CategoryOther:
		return true
	}
	return false
}

// ParseCategory coerces a loose string into a Category. An empty string falls
// back to CategoryOther, mirroring the lenient treatment of absent categories
// in generated content; any other unknown value is an error.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryOther, nil
	}
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// Unit is a unit of measure for ingredient quantities. Quantities in different
// units are never converted or merged.
type Unit string

const (
	// Weight
	UnitGram     Unit = "gram"
	UnitKilogram Unit = "kilogram"
	UnitOunce    Unit = "ounce"
	UnitPound    Unit = "pound"

	// Volume
	UnitMilliliter Unit = "milliliter"
	UnitLiter      Unit = "liter"
	UnitTeaspoon   Unit = "teaspoon"
	UnitTablespoon Unit = "tablespoon"
	UnitCup        Unit = "cup"
	UnitPint       Unit = "pint"
	UnitQuart      Unit = "quart"
	UnitGallon     Unit = "gallon"

	// Count
	UnitPiece   Unit = "piece"
	UnitSlice   Unit = "slice"
	UnitClove   Unit = "clove"
	UnitPackage Unit = "package"
	UnitCan     Unit = "can"
	UnitBunch   Unit = "bunch"

	// Unmeasured
	UnitToTaste  Unit = "to_taste"
	UnitAsNeeded Unit = "as_needed"
)

// Valid reports whether the unit is part of the enumerated set.
func (u Unit) Valid() bool {
	switch u {
	case UnitGram, UnitKilogram, UnitOunce, UnitPound,
		UnitMilliliter, UnitLiter, UnitTeaspoon, UnitTablespoon, UnitCup,
		UnitPint, UnitQuart, UnitGallon,
		UnitPiece, UnitSlice, UnitClove, UnitPackage, UnitCan, UnitBunch,
		UnitToTaste, UnitAsNeeded:
		return true
	}
	return false
}

// Unmeasured reports whether the unit carries no meaningful quantity
// (seasoning-style amounts like "to taste").
func (u Unit) Unmeasured() bool {
	return u == UnitToTaste || u == UnitAsNeeded
}

// ParseUnit coerces a loose string into a Unit. Unlike categories, a unit has
// no safe fallback: a quantity without a known unit is meaningless, so unknown
// values fail.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", ErrUnknownUnit
	}
	return u, nil
}

// MealType identifies a slot in the day's plan.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// Valid reports whether the meal type is part of the enumerated set.
func (m MealType) Valid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// ParseMealType coerces a loose string into a MealType.
func ParseMealType(s string) (MealType, error) {
	m := MealType(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", ErrUnknownMealType
	}
	return m, nil
}

// DifficultyLevel grades how demanding a recipe is to cook.
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// Valid reports whether the difficulty is part of the enumerated set.
func (d DifficultyLevel) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty coerces a loose string into a DifficultyLevel. The field is
// optional in generated recipes, so an empty string stays empty; any other
// unknown value is an error.
func ParseDifficulty(s string) (DifficultyLevel, error) {
	if s == "" {
		return "", nil
	}
	d := DifficultyLevel(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", ErrUnknownDifficulty
	}
	return d, nil
}

// CuisineType categorizes recipes by culinary tradition.
type CuisineType string

const (
	CuisineItalian       CuisineType = "italian"
	CuisineChinese       CuisineType = "chinese"
	CuisineMexican       CuisineType = "mexican"
	CuisineIndian        CuisineType = "indian"
	CuisineJapanese      CuisineType = "japanese"
	CuisineAmerican      CuisineType = "american"
	CuisineFrench        CuisineType = "french"
	CuisineThai          CuisineType = "thai"
	CuisineMediterranean CuisineType = "mediterranean"
	CuisineMiddleEastern CuisineType = "middle_eastern"
	CuisineKorean        CuisineType = "korean"
	CuisineVietnamese    CuisineType = "vietnamese"
	CuisineOther         CuisineType = "other"
)

// Valid reports whether the cuisine is part of the enumerated set.
func (c CuisineType) Valid() bool {
	switch c {
	case CuisineItalian, CuisineChinese, CuisineMexican, CuisineIndian,
		CuisineJapanese, CuisineAmerican, CuisineFrench, CuisineThai,
		CuisineMediterranean, CuisineMiddleEastern, CuisineKorean,
		CuisineVietnamese, CuisineOther:
		return true
	}
	return false
}

// ParseCuisine coerces a loose string into a CuisineType. Like difficulty,
// an empty string stays empty and unknown values fail.
func ParseCuisine(s string) (CuisineType, error) {
	if s == "" {
		return "", nil
	}
	c := CuisineType(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", ErrUnknownCuisine
	}
	return c, nil
}
