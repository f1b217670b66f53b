package monitor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"

	"github.com/necrashter/dmsgo/explore"
)

const (
	writeWait      = 1 * time.Second
	pubResolution  = 100 * time.Millisecond
	pingResolution = 200 * time.Millisecond
	pongWait       = pingResolution * 4
)

var upgrader = websocket.Upgrader{}

// ErrPongDeadlineExceeded is returned by Publisher.Serve when the
// client stops answering pings.
var ErrPongDeadlineExceeded = errors.New("monitor: pong deadline exceeded")

// Publisher streams Snapshots arriving on Updates to a single upgraded
// websocket connection, dropping intervening updates received faster
// than pubResolution. Build one Publisher per connection via Upgrade.
type Publisher struct {
	updates <-chan explore.Snapshot
	conn    *websocket.Conn
}

// Upgrade upgrades r to a websocket connection and returns a Publisher
// that will stream updates to it once Serve is called.
func Upgrade(w http.ResponseWriter, r *http.Request, updates <-chan explore.Snapshot) (*Publisher, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, fmt.Errorf("monitor: upgrade: %w", err)
	}
	return &Publisher{updates: updates, conn: conn}, nil
}

// Serve runs the publish and ping-pong loops until ctx is cancelled,
// the updates channel closes, or the client's pong deadline is
// exceeded. It always closes the underlying connection before
// returning.
func (p *Publisher) Serve(ctx context.Context) error {
	defer p.conn.Close()

	group, groupCtx := errgroup.WithContext(ctx)
	// The ping loop stops once publishing ends, so a closed updates
	// channel ends Serve.
	pingCtx, stopPing := context.WithCancel(groupCtx)
	defer stopPing()
	group.Go(func() error { return p.pingPong(pingCtx) })
	group.Go(func() error {
		defer stopPing()
		return p.publish(groupCtx)
	})
	return group.Wait()
}

func (p *Publisher) pingPong(ctx context.Context) error {
	pong := make(chan struct{}, 1)
	p.conn.SetPongHandler(func(string) error {
		select {
		case pong <- struct{}{}:
		default:
		}
		return nil
	})
	// Pong frames reach the handler only while the connection is read,
	// so drain incoming frames until the connection closes.
	go func() {
		for {
			if _, _, err := p.conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := channerics.NewTicker(ctx.Done(), pingResolution)
	lastPong := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker:
			if time.Since(lastPong) > pongWait {
				return ErrPongDeadlineExceeded
			}
			if err := p.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return fmt.Errorf("monitor: ping: %w", err)
			}
		case <-pong:
			lastPong = time.Now()
		}
	}
}

func (p *Publisher) publish(ctx context.Context) error {
	// Zero lastSync so the first snapshot is always written; only
	// subsequent updates are throttled.
	var lastSync time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-p.updates:
			if !ok {
				return nil
			}
			if time.Since(lastSync) < pubResolution {
				continue
			}
			lastSync = time.Now()
			if err := p.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return fmt.Errorf("monitor: set write deadline: %w", err)
			}
			if err := p.conn.WriteJSON(snap); err != nil {
				return fmt.Errorf("monitor: publish: %w", err)
			}
		}
	}
}
