package common

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/matst80/craft-finder/pkg/common/jsoncompat"
	"github.com/matst80/craft-finder/pkg/types"
)

func TestQueueHandlerBatches(t *testing.T) {
	var mu sync.Mutex
	batches := make([][]int, 0)
	q := NewQueueHandler(func(items []int) {
		mu.Lock()
		defer mu.Unlock()
		batches = append(batches, append([]int(nil), items...))
	}, 2, time.Hour)

	q.Add(1, 2, 3)
	q.Add(4, 5)
	q.Close()

	want := [][]int{{1, 2}, {3, 4}, {5}}
	if diff := cmp.Diff(want, batches); diff != "" {
		t.Errorf("batches mismatch (-want +got):\n%s", diff)
	}
	if q.Len() != 0 {
		t.Errorf("expected empty queue after close")
	}
	q.Close()
}

func TestLoadTimeoutConfig(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "7")
	t.Setenv("WRITE_TIMEOUT", "-1")
	t.Setenv("IDLE_TIMEOUT", "abc")
	cfg := LoadTimeoutConfig(TimeoutConfig{Read: time.Second, Write: 2 * time.Second, Idle: 3 * time.Second})
	want := TimeoutConfig{Read: 7 * time.Second, Write: 2 * time.Second, Idle: 3 * time.Second}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

type recordingTracking struct {
	mu       sync.Mutex
	sessions []string
}

func (r *recordingTracking) TrackSession(sessionId string, _ *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, sessionId)
}

func (r *recordingTracking) TrackSearch(string, *types.FilterState, int, *http.Request) {}

func (r *recordingTracking) Close() error { return nil }

func TestHandleSessionCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://craft.local:8080/api/projects", nil)
	rec := httptest.NewRecorder()
	id := HandleSessionCookie(nil, rec, req)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected uuid session id, got %q", id)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != id || cookies[0].Domain != "craft.local" {
		t.Fatalf("unexpected cookies %v", cookies)
	}

	again := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	again.AddCookie(&http.Cookie{Name: sessionCookieName, Value: id})
	rec = httptest.NewRecorder()
	if got := HandleSessionCookie(nil, rec, again); got != id {
		t.Errorf("expected existing session %q, got %q", id, got)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Errorf("expected no new cookie for known session")
	}

	bad := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	bad.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "12345"})
	if got := HandleSessionCookie(nil, httptest.NewRecorder(), bad); got == "12345" {
		t.Errorf("expected malformed session to be replaced")
	}
}

func TestJsonHandler(t *testing.T) {
	handler := JsonHandler(nil, func(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
		return enc.Encode(map[string]string{"session": sessionId})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/options", nil)
	req.Header.Set("Origin", "https://craft.example")
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://craft.example" {
		t.Errorf("unexpected allow origin %q", got)
	}
	var body map[string]string
	if err := jsoncompat.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["session"] == "" {
		t.Errorf("expected session id in body")
	}

	preflight := httptest.NewRequest(http.MethodOptions, "/api/options", nil)
	preflight.Header.Set("Origin", "https://craft.example")
	rec = httptest.NewRecorder()
	handler(rec, preflight)
	if rec.Code != http.StatusAccepted || rec.Body.Len() != 0 {
		t.Errorf("expected empty 202 preflight, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRespondToOptionsAllowsPost(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/search", nil)
	req.Header.Set("Origin", "https://craft.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	RespondToOptions(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Errorf("expected 202, got %d", rec.Code)
	}
	allowed := rec.Header().Get("Access-Control-Allow-Methods")
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		if !strings.Contains(allowed, method) {
			t.Errorf("preflight for %s not allowed by %q", method, allowed)
		}
	}
}

func TestHandleSessionCookieTracksNewSession(t *testing.T) {
	trk := &recordingTracking{}
	id := HandleSessionCookie(trk, httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		trk.mu.Lock()
		n := len(trk.sessions)
		trk.mu.Unlock()
		if n > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	trk.mu.Lock()
	defer trk.mu.Unlock()
	if diff := cmp.Diff([]string{id}, trk.sessions); diff != "" {
		t.Errorf("tracked sessions mismatch (-want +got):\n%s", diff)
	}
}
