package enums

import "fmt"

// MenuCategory partitions a restaurant menu. Values match the storefront's
// Turkish category keys.
type MenuCategory string

const (
	MenuCategoryMain      MenuCategory = "anaYemek"
	MenuCategorySalad     MenuCategory = "salata"
	MenuCategoryBreakfast MenuCategory = "kahvalti"
	MenuCategoryDessert   MenuCategory = "tatli"
)

// MenuCategoryAll is the pseudo-category that selects every item.
const MenuCategoryAll = "tumunu"

var validMenuCategories = []MenuCategory{
	MenuCategoryMain,
	MenuCategorySalad,
	MenuCategoryBreakfast,
	MenuCategoryDessert,
}

// String implements fmt.Stringer.
func (m MenuCategory) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MenuCategory.
func (m MenuCategory) IsValid() bool {
	for _, candidate := range validMenuCategories {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMenuCategory converts raw input into a MenuCategory.
func ParseMenuCategory(value string) (MenuCategory, error) {
	for _, candidate := range validMenuCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid menu category %q", value)
}
