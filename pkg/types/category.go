package types

import "fmt"

// Category is one facet of the project directory.
type Category uint8

const (
	CategoryNeed Category = iota
	CategoryCraft
	CategoryMaterialType
	CategoryCategory
	CategoryLocation
	CategoryApproximateTime
)

// Categories lists every facet in display order.
var Categories = []Category{
	CategoryNeed,
	CategoryCraft,
	CategoryMaterialType,
	CategoryCategory,
	CategoryLocation,
	CategoryApproximateTime,
}

type categoryInfo struct {
	key      string
	label    string
	tagLabel string
}

var categoryInfos = [...]categoryInfo{
	CategoryNeed:            {key: "need", label: "Urgency", tagLabel: "Urgency"},
	CategoryCraft:           {key: "craft", label: "Craft Skill", tagLabel: "Craft skill"},
	CategoryMaterialType:    {key: "materialType", label: "Materials", tagLabel: "Materials"},
	CategoryCategory:        {key: "category", label: "Cause Category", tagLabel: "Category"},
	CategoryLocation:        {key: "location", label: "Location", tagLabel: "Location"},
	CategoryApproximateTime: {key: "approximateTime", label: "Time Required", tagLabel: "Time Required"},
}

func (c Category) valid() bool {
	return int(c) < len(categoryInfos)
}

// Key is the wire name used in query strings and JSON.
func (c Category) Key() string {
	if !c.valid() {
		return fmt.Sprintf("category(%d)", c)
	}
	return categoryInfos[c].key
}

// Label is the heading shown above the option list.
func (c Category) Label() string {
	if !c.valid() {
		return c.Key()
	}
	return categoryInfos[c].label
}

// TagLabel is the shorter name used on active filter tags.
func (c Category) TagLabel() string {
	if !c.valid() {
		return c.Key()
	}
	return categoryInfos[c].tagLabel
}

func (c Category) String() string {
	return c.Key()
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("unknown category %d", c)
	}
	return []byte(c.Key()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, ok := ParseCategory(string(text))
	if !ok {
		return fmt.Errorf("unknown category %q", text)
	}
	*c = parsed
	return nil
}

func ParseCategory(key string) (Category, bool) {
	for _, c := range Categories {
		if categoryInfos[c].key == key {
			return c, true
		}
	}
	return 0, false
}
