package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matst80/craft-finder/pkg/types"
)

func TestParseQueryValues(t *testing.T) {
	query := url.Values{
		"q":               []string{"blanket"},
		"craft":           []string{"Knitting", "Crochet"},
		"location":        []string{"QLD"},
		"approximateTime": []string{"Varies"},
		"page":            []string{"3"},
	}
	sr, err := searchRequestFromQuery(query)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	state, err := sr.FilterState()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if state.Query != "blanket" {
		t.Errorf("Expected query to be blanket, got %v", state.Query)
	}
	if diff := cmp.Diff([]string{"Knitting", "Crochet"}, state.Selection.Craft.Values()); diff != "" {
		t.Errorf("craft mismatch (-want +got):\n%s", diff)
	}
	if !state.Selection.Location.Contains("QLD") || !state.Selection.ApproximateTime.Contains("Varies") {
		t.Errorf("Expected location and time to be selected, got %v", state.Selection.ActiveGroups())
	}
	if !state.Selection.Need.IsEmpty() {
		t.Errorf("Expected no need selection")
	}
}

func TestSearchRequestRepeatedValueTogglesOff(t *testing.T) {
	sr := &SearchRequest{Craft: []string{"Knitting", "Sewing", "Knitting"}}
	state, err := sr.FilterState()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Sewing"}, state.Selection.Craft.Values()); diff != "" {
		t.Errorf("craft mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchRequestClear(t *testing.T) {
	tests := []struct {
		name      string
		clear     []string
		wantQuery string
		wantEmpty []types.Category
		wantKept  []types.Category
		wantErr   bool
	}{
		{name: "category", clear: []string{"craft"}, wantQuery: "bibs", wantEmpty: []types.Category{types.CategoryCraft}, wantKept: []types.Category{types.CategoryLocation}},
		{name: "all", clear: []string{"all"}, wantEmpty: []types.Category{types.CategoryCraft, types.CategoryLocation}},
		{name: "unknown", clear: []string{"colour"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := &SearchRequest{
				Query:    "bibs",
				Craft:    []string{"Sewing"},
				Location: []string{"VIC"},
				Clear:    tt.clear,
			}
			state, err := sr.FilterState()
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for clear %v", tt.clear)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if state.Query != tt.wantQuery {
				t.Errorf("expected query %q, got %q", tt.wantQuery, state.Query)
			}
			for _, c := range tt.wantEmpty {
				if !state.Selection.Get(c).IsEmpty() {
					t.Errorf("expected %s to be cleared", c)
				}
			}
			for _, c := range tt.wantKept {
				if state.Selection.Get(c).IsEmpty() {
					t.Errorf("expected %s to be kept", c)
				}
			}
		})
	}
}

func TestGetFilterStateFromBody(t *testing.T) {
	body := `{"query": "worms", "filters": {"craft": ["Crochet"], "need": ["High", "High"]}}`
	r := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(body))
	state, err := GetFilterState(r)
	if err != nil {
		t.Fatal(err)
	}
	if state.Query != "worms" || !state.Selection.Craft.Contains("Crochet") || state.Selection.Need.Len() != 1 {
		t.Errorf("unexpected state %+v", state)
	}

	r = httptest.NewRequest(http.MethodDelete, "/projects", nil)
	if _, err = GetFilterState(r); err != errMethodNotAllowed {
		t.Errorf("expected method error, got %v", err)
	}
}
