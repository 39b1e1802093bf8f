package tracking

import (
	"log"
	"net/http"
	"time"

	"github.com/matst80/craft-finder/pkg/common"
	"github.com/matst80/craft-finder/pkg/types"
)

const (
	EventSession uint16 = 0
	EventSearch  uint16 = 1
)

type BaseEvent struct {
	SessionId string    `json:"session_id"`
	Event     uint16    `json:"event"`
	Time      time.Time `json:"ts"`
}

type SessionEvent struct {
	*BaseEvent
	UserAgent    string `json:"user_agent,omitempty"`
	Ip           string `json:"ip,omitempty"`
	Language     string `json:"language,omitempty"`
	PragmaHeader string `json:"pragma,omitempty"`
}

type SearchEvent struct {
	*BaseEvent
	Query           string              `json:"query,omitempty"`
	Filters         []types.ActiveGroup `json:"filters,omitempty"`
	NumberOfResults int                 `json:"noi"`
	Referer         string              `json:"referer,omitempty"`
}

func clientIp(r *http.Request) string {
	if ip := r.Header.Get("X-Real-Ip"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// QueuedTracking batches events in the background and hands each one to send.
// Tracking never blocks or fails a request.
type QueuedTracking struct {
	queue   *common.QueueHandler[any]
	send    func(event any) error
	onClose func() error
}

func NewQueuedTracking(send func(event any) error, onClose func() error) *QueuedTracking {
	t := &QueuedTracking{
		send:    send,
		onClose: onClose,
	}
	t.queue = common.NewQueueHandler(t.process, 50, time.Second)
	return t
}

func (t *QueuedTracking) process(events []any) {
	for _, event := range events {
		if err := t.send(event); err != nil {
			log.Printf("Error sending tracking event: %v", err)
		}
	}
}

func (t *QueuedTracking) TrackSession(sessionId string, r *http.Request) {
	t.queue.Add(&SessionEvent{
		BaseEvent:    &BaseEvent{Event: EventSession, SessionId: sessionId, Time: time.Now()},
		Language:     r.Header.Get("Accept-Language"),
		UserAgent:    r.UserAgent(),
		Ip:           clientIp(r),
		PragmaHeader: r.Header.Get("Pragma"),
	})
}

func (t *QueuedTracking) TrackSearch(sessionId string, state *types.FilterState, resultLen int, r *http.Request) {
	t.queue.Add(&SearchEvent{
		BaseEvent:       &BaseEvent{Event: EventSearch, SessionId: sessionId, Time: time.Now()},
		Query:           state.Query,
		Filters:         state.Selection.ActiveGroups(),
		NumberOfResults: resultLen,
		Referer:         r.Header.Get("Referer"),
	})
}

// Close flushes queued events before releasing the sender.
func (t *QueuedTracking) Close() error {
	t.queue.Close()
	if t.onClose != nil {
		return t.onClose()
	}
	return nil
}

var _ types.Tracking = (*QueuedTracking)(nil)
