package server

import (
	"net/http"
)

const datasetVersionHeader = "X-Dataset-Version"

func defaultHeaders(w http.ResponseWriter, cacheTime string) {
	w.Header().Set("Cache-Control", "private, stale-while-revalidate="+cacheTime)
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.Header().Set("Age", "0")
}

func publicHeaders(w http.ResponseWriter, cacheTime string) {
	w.Header().Set("Cache-Control", "public, max-age="+cacheTime)
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.Header().Set("Age", "0")
}

func allowsMethod(r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	return false
}
