package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/matst80/craft-finder/pkg/common/jsoncompat"
	"github.com/matst80/craft-finder/pkg/types"
)

var errMethodNotAllowed = errors.New("method not allowed")

const clearAll = "all"

// SearchRequest is the query string form of a filter state. Every category
// takes repeated values, clear names a category key or "all".
type SearchRequest struct {
	Query           string   `schema:"q"`
	Need            []string `schema:"need"`
	Craft           []string `schema:"craft"`
	MaterialType    []string `schema:"materialType"`
	Category        []string `schema:"category"`
	Location        []string `schema:"location"`
	ApproximateTime []string `schema:"approximateTime"`
	Clear           []string `schema:"clear"`
}

func (s *SearchRequest) values(c types.Category) []string {
	switch c {
	case types.CategoryNeed:
		return s.Need
	case types.CategoryCraft:
		return s.Craft
	case types.CategoryMaterialType:
		return s.MaterialType
	case types.CategoryCategory:
		return s.Category
	case types.CategoryLocation:
		return s.Location
	case types.CategoryApproximateTime:
		return s.ApproximateTime
	}
	return nil
}

// FilterState replays the request onto an empty state: the query, one toggle
// per value and finally the clears. A value given twice toggles back off.
func (s *SearchRequest) FilterState() (*types.FilterState, error) {
	state := &types.FilterState{}
	state.SetQuery(s.Query)
	for _, c := range types.Categories {
		for _, v := range s.values(c) {
			state.Toggle(c, v)
		}
	}
	for _, key := range s.Clear {
		if key == clearAll {
			state.ClearAll()
			continue
		}
		c, ok := types.ParseCategory(key)
		if !ok {
			return nil, fmt.Errorf("unknown filter category %q", key)
		}
		state.ClearCategory(c)
	}
	return state, nil
}

func newDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

func searchRequestFromQuery(query url.Values) (*SearchRequest, error) {
	sr := &SearchRequest{}
	if err := newDecoder().Decode(sr, query); err != nil {
		return nil, err
	}
	return sr, nil
}

// GetFilterState reads the filter state from the query string of a GET or a
// json encoded FilterState in the body of a POST.
func GetFilterState(r *http.Request) (*types.FilterState, error) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		sr, err := searchRequestFromQuery(r.URL.Query())
		if err != nil {
			return nil, err
		}
		return sr.FilterState()
	case http.MethodPost:
		state := &types.FilterState{}
		if err := jsoncompat.NewDecoder(r.Body).Decode(state); err != nil {
			return nil, err
		}
		return state, nil
	}
	return nil, errMethodNotAllowed
}
