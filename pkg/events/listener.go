package events

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// StopChannelPrefix is the NOTIFY channel prefix used for stop requests.
// Stopping completion X sends NOTIFY on "completion_stop:X".
const StopChannelPrefix = "completion_stop:"

// StopChannel returns the NOTIFY channel name for a completion.
func StopChannel(completionID string) string {
	return StopChannelPrefix + completionID
}

type listenCmd struct {
	sql    string
	result chan error
}

// StopWatcher listens for PostgreSQL NOTIFY stop requests on a dedicated
// connection and invokes the handler registered for the matching completion.
// Running turns register a cancel handler; an external stop request reaches
// the loop through here.
type StopWatcher struct {
	connString string
	conn       *pgx.Conn
	connMu     sync.Mutex

	handlers   map[string]func() // channel → cancel handler
	handlersMu sync.RWMutex

	// cmdCh serializes LISTEN/UNLISTEN through the receive loop, the sole
	// goroutine touching the pgx connection. Avoids the "conn busy" race
	// between WaitForNotification and Exec.
	cmdCh chan listenCmd

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewStopWatcher creates a watcher over the given connection string.
func NewStopWatcher(connString string) *StopWatcher {
	return &StopWatcher{
		connString: connString,
		handlers:   make(map[string]func()),
		cmdCh:      make(chan listenCmd, 16),
	}
}

// Start establishes the dedicated LISTEN connection and begins receiving.
func (w *StopWatcher) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, w.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}
	w.connMu.Lock()
	w.conn = conn
	w.connMu.Unlock()

	loopCtx, cancel := context.WithCancel(ctx)
	w.cancelLoop = cancel
	w.loopDone = make(chan struct{})
	go func() {
		defer close(w.loopDone)
		w.receiveLoop(loopCtx)
	}()

	slog.Info("stop watcher started")
	return nil
}

// Watch registers the cancel handler for a completion and LISTENs on its
// stop channel.
func (w *StopWatcher) Watch(ctx context.Context, completionID string, onStop func()) error {
	channel := StopChannel(completionID)
	w.handlersMu.Lock()
	w.handlers[channel] = onStop
	w.handlersMu.Unlock()

	if err := w.exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		w.handlersMu.Lock()
		delete(w.handlers, channel)
		w.handlersMu.Unlock()
		return fmt.Errorf("LISTEN %s failed: %w", channel, err)
	}
	return nil
}

// Unwatch removes the handler and UNLISTENs the completion's stop channel.
func (w *StopWatcher) Unwatch(ctx context.Context, completionID string) {
	channel := StopChannel(completionID)
	w.handlersMu.Lock()
	delete(w.handlers, channel)
	w.handlersMu.Unlock()

	if err := w.exec(ctx, "UNLISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		slog.Warn("UNLISTEN failed", "channel", channel, "error", err)
	}
}

// NotifyStop sends the stop request for a completion. Used by the stop
// endpoint alongside setting sigkill.
func NotifyStop(ctx context.Context, db *stdsql.DB, completionID string) error {
	_, err := db.ExecContext(ctx, "SELECT pg_notify($1, $2)", StopChannel(completionID), completionID)
	return err
}

func (w *StopWatcher) exec(ctx context.Context, sql string) error {
	cmd := listenCmd{sql: sql, result: make(chan error, 1)}
	select {
	case w.cmdCh <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiveLoop is the sole goroutine that touches the pgx connection.
func (w *StopWatcher) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		w.processPendingCmds(ctx)

		w.connMu.Lock()
		conn := w.conn
		w.connMu.Unlock()
		if conn == nil {
			w.reconnect(ctx)
			continue
		}

		// Short timeout so pending LISTEN/UNLISTEN commands get processed.
		waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue
			}
			slog.Error("NOTIFY receive error", "error", err)
			w.reconnect(ctx)
			continue
		}

		w.handlersMu.RLock()
		handler := w.handlers[notification.Channel]
		w.handlersMu.RUnlock()
		if handler != nil {
			slog.Info("stop request received", "channel", notification.Channel)
			handler()
		}
	}
}

func (w *StopWatcher) processPendingCmds(ctx context.Context) {
	for {
		select {
		case cmd := <-w.cmdCh:
			w.connMu.Lock()
			conn := w.conn
			w.connMu.Unlock()
			if conn == nil {
				cmd.result <- fmt.Errorf("LISTEN connection not established")
				continue
			}
			_, err := conn.Exec(ctx, cmd.sql)
			cmd.result <- err
		default:
			return
		}
	}
}

func (w *StopWatcher) reconnect(ctx context.Context) {
	w.connMu.Lock()
	defer w.connMu.Unlock()

	if w.conn != nil {
		_ = w.conn.Close(ctx)
		w.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, w.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		w.conn = conn

		w.handlersMu.RLock()
		for channel := range w.handlers {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
				slog.Error("re-LISTEN failed", "channel", channel, "error", err)
			}
		}
		w.handlersMu.RUnlock()

		slog.Info("stop watcher reconnected")
		return
	}
}

// Stop signals the receive loop to exit, waits for it, then closes the
// connection.
func (w *StopWatcher) Stop(ctx context.Context) {
	if w.cancelLoop != nil {
		w.cancelLoop()
	}
	if w.loopDone != nil {
		<-w.loopDone
	}

	w.connMu.Lock()
	defer w.connMu.Unlock()
	if w.conn != nil {
		_ = w.conn.Close(ctx)
		w.conn = nil
	}
}
