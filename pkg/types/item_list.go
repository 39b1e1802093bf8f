package types

import "maps"

// ItemList is a set of project positions within a collection.
type ItemList map[int]struct{}

func NewItemList() *ItemList {
	return &ItemList{}
}

func (i ItemList) AddId(id int) {
	i[id] = struct{}{}
}

func (i ItemList) Contains(id int) bool {
	_, ok := i[id]
	return ok
}

func (i ItemList) Len() int {
	return len(i)
}

func (i ItemList) IsEmpty() bool {
	return len(i) == 0
}

func (a ItemList) Intersect(b ItemList) {
	for id := range a {
		_, ok := b[id]
		if !ok {
			delete(a, id)
		}
	}
}

func (i ItemList) Merge(other *ItemList) {
	if other == nil {
		return
	}
	maps.Copy(i, *other)
}

func (i ItemList) Clone() *ItemList {
	ret := maps.Clone(i)
	if ret == nil {
		ret = ItemList{}
	}
	return &ret
}
