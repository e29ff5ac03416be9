package gesture

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// feedReadLimit caps one landmark message
	feedReadLimit = 64 * 1024

	// feedPongWait is how long to wait before declaring the detector gone
	feedPongWait = 60 * time.Second

	// feedPingPeriod must be less than feedPongWait
	feedPingPeriod = (feedPongWait * 9) / 10
)

// feedMessage is the wire format pushed by the external detector:
// one MediaPipe-style landmark set, or detected=false for an empty frame
type feedMessage struct {
	Detected bool    `json:"detected"`
	Points   []Point `json:"points"`
}

// Feed subscribes to an external landmark detector over websocket and
// pushes each frame through a callback. Delivery cadence is the
// detector's own, decoupled from the render frame rate
type Feed struct {
	conn    *websocket.Conn
	handler func(*LandmarkFrame)
	closed  atomic.Bool
	done    chan struct{}
}

// Dial connects to the detector endpoint. The handler receives a nil
// frame when the detector reports no hand; callbacks stop after Close
func Dial(ctx context.Context, url string, handler func(*LandmarkFrame)) (*Feed, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("gesture feed dial %s: %w", url, err)
	}

	f := &Feed{
		conn:    conn,
		handler: handler,
		done:    make(chan struct{}),
	}

	go f.readPump()
	go f.pingPump()
	return f, nil
}

// Close detaches the feed and waits for the read pump to drain;
// no callback fires after Close returns
func (f *Feed) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := f.conn.Close()
	<-f.done
	return err
}

func (f *Feed) readPump() {
	defer close(f.done)

	f.conn.SetReadLimit(feedReadLimit)
	f.conn.SetReadDeadline(time.Now().Add(feedPongWait))
	f.conn.SetPongHandler(func(string) error {
		f.conn.SetReadDeadline(time.Now().Add(feedPongWait))
		return nil
	})

	for {
		_, data, err := f.conn.ReadMessage()
		if err != nil {
			return
		}
		if f.closed.Load() {
			return
		}

		var msg feedMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			// Malformed detector output is skipped, not fatal
			continue
		}

		if !msg.Detected {
			f.handler(nil)
			continue
		}
		f.handler(&LandmarkFrame{Points: msg.Points})
	}
}

func (f *Feed) pingPump() {
	ticker := time.NewTicker(feedPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-f.done:
			return
		case <-ticker.C:
			if err := f.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
				return
			}
		}
	}
}
