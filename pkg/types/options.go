package types

// FilterOptions holds, per category, the sorted distinct values found in a
// project collection. It is derived data and never edited directly.
type FilterOptions struct {
	Need            []string `json:"need"`
	Craft           []string `json:"craft"`
	MaterialType    []string `json:"materialType"`
	Category        []string `json:"category"`
	Location        []string `json:"location"`
	ApproximateTime []string `json:"approximateTime"`
}

func (o *FilterOptions) Get(c Category) []string {
	switch c {
	case CategoryNeed:
		return o.Need
	case CategoryCraft:
		return o.Craft
	case CategoryMaterialType:
		return o.MaterialType
	case CategoryCategory:
		return o.Category
	case CategoryLocation:
		return o.Location
	case CategoryApproximateTime:
		return o.ApproximateTime
	}
	return nil
}

func (o *FilterOptions) Set(c Category, values []string) {
	switch c {
	case CategoryNeed:
		o.Need = values
	case CategoryCraft:
		o.Craft = values
	case CategoryMaterialType:
		o.MaterialType = values
	case CategoryCategory:
		o.Category = values
	case CategoryLocation:
		o.Location = values
	case CategoryApproximateTime:
		o.ApproximateTime = values
	}
}
