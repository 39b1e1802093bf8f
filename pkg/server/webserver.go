package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/matst80/craft-finder/pkg/common"
	"github.com/matst80/craft-finder/pkg/common/jsoncompat"
	"github.com/matst80/craft-finder/pkg/index"
	"github.com/matst80/craft-finder/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "craftfinder_searches_total",
		Help: "The total number of processed project searches",
	})
	noOptions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "craftfinder_options_total",
		Help: "The total number of processed option requests",
	})
	noCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "craftfinder_cache_hits_total",
		Help: "The total number of searches answered from the result cache",
	})
	noBadRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "craftfinder_bad_requests_total",
		Help: "The total number of rejected search requests",
	})
)

type WebServer struct {
	Catalog  *index.Catalog
	Tracking types.Tracking
	Cache    *Cache
	ids      *CacheHelper[[]int]
}

func NewWebServer(catalog *index.Catalog, cache *Cache, tracking types.Tracking) *WebServer {
	return &WebServer{
		Catalog:  catalog,
		Tracking: tracking,
		Cache:    cache,
		ids:      NewCacheHelper[[]int](cache),
	}
}

func resultCacheKey(snapshot *index.Snapshot, state *types.FilterState) string {
	return snapshot.Version + "|" + strconv.Quote(state.Query) + "|" + state.Selection.Key()
}

// currentSnapshot writes a 503 and returns nil until the first dataset is loaded.
func (ws *WebServer) currentSnapshot(w http.ResponseWriter) *index.Snapshot {
	snapshot := ws.Catalog.Current()
	if snapshot == nil {
		http.Error(w, "dataset not loaded", http.StatusServiceUnavailable)
	}
	return snapshot
}

func (ws *WebServer) readState(w http.ResponseWriter, r *http.Request) (*types.FilterState, error) {
	state, err := GetFilterState(r)
	if err != nil {
		noBadRequests.Inc()
		status := http.StatusBadRequest
		if errors.Is(err, errMethodNotAllowed) {
			status = http.StatusMethodNotAllowed
		}
		http.Error(w, err.Error(), status)
		return nil, err
	}
	return state, nil
}

func (ws *WebServer) matchIds(ctx context.Context, snapshot *index.Snapshot, state *types.FilterState) []int {
	ids, hit := ws.ids.Handle(ctx, resultCacheKey(snapshot, state), func() []int {
		return snapshot.Index.MatchIds(state.Query, &state.Selection)
	})
	if hit {
		noCacheHits.Inc()
	}
	if ids == nil {
		ids = []int{}
	}
	return ids
}

func (ws *WebServer) projectsResponse(r *http.Request, sessionId string, snapshot *index.Snapshot, state *types.FilterState) (ProjectsResponse, []int) {
	ids := ws.matchIds(r.Context(), snapshot, state)
	items := make([]types.Project, 0, len(ids))
	for _, id := range ids {
		items = append(items, snapshot.Projects[id])
	}
	noSearches.Inc()
	if ws.Tracking != nil {
		ws.Tracking.TrackSearch(sessionId, state, len(ids), r)
	}
	return ProjectsResponse{
		Items:   items,
		Total:   len(items),
		Query:   state.Query,
		Active:  state.Selection.ActiveGroups(),
		Version: snapshot.Version,
	}, ids
}

func (ws *WebServer) Projects(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
	snapshot := ws.currentSnapshot(w)
	if snapshot == nil {
		return nil
	}
	state, err := ws.readState(w, r)
	if err != nil {
		return err
	}
	result, _ := ws.projectsResponse(r, sessionId, snapshot, state)
	defaultHeaders(w, "60")
	w.Header().Set(datasetVersionHeader, snapshot.Version)
	w.WriteHeader(http.StatusOK)
	return enc.Encode(result)
}

// Search answers with the matching projects and the option groups, counted
// over the matching projects, in one response.
func (ws *WebServer) Search(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
	snapshot := ws.currentSnapshot(w)
	if snapshot == nil {
		return nil
	}
	state, err := ws.readState(w, r)
	if err != nil {
		return err
	}
	result, ids := ws.projectsResponse(r, sessionId, snapshot, state)
	defaultHeaders(w, "60")
	w.Header().Set(datasetVersionHeader, snapshot.Version)
	w.WriteHeader(http.StatusOK)
	return enc.Encode(SearchResponse{
		ProjectsResponse: result,
		Groups:           optionGroups(&snapshot.Options, snapshot.Index.Counts(ids)),
	})
}

func (ws *WebServer) Options(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
	if !allowsMethod(r, http.MethodGet, http.MethodHead) {
		http.Error(w, errMethodNotAllowed.Error(), http.StatusMethodNotAllowed)
		return nil
	}
	snapshot := ws.currentSnapshot(w)
	if snapshot == nil {
		return nil
	}
	noOptions.Inc()
	publicHeaders(w, "300")
	w.Header().Set(datasetVersionHeader, snapshot.Version)
	w.WriteHeader(http.StatusOK)
	return enc.Encode(OptionsResponse{
		Options: snapshot.Options,
		Groups:  optionGroups(&snapshot.Options, nil),
		Version: snapshot.Version,
	})
}

func (ws *WebServer) Health(w http.ResponseWriter, r *http.Request) {
	if !ws.Catalog.IsLoaded() {
		http.Error(w, "dataset not loaded", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// ClientHandler serves the public api, mount it under /api/.
func (ws *WebServer) ClientHandler() *http.ServeMux {
	srv := http.NewServeMux()
	srv.HandleFunc("/health", ws.Health)
	srv.HandleFunc("/projects", common.JsonHandler(ws.Tracking, ws.Projects))
	srv.HandleFunc("/search", common.JsonHandler(ws.Tracking, ws.Search))
	srv.HandleFunc("/options", common.JsonHandler(ws.Tracking, ws.Options))
	return srv
}
