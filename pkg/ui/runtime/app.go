// Package runtime runs a widget tree and a dialog registry against a
// terminal backend. All UI state is touched only by the loop goroutine.
package runtime

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/odvcencio/textmode/pkg/errors"
	"github.com/odvcencio/textmode/pkg/logging"
	"github.com/odvcencio/textmode/pkg/telemetry"
	"github.com/odvcencio/textmode/pkg/ui/backend"
	"github.com/odvcencio/textmode/pkg/ui/dialog"
	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/terminal"
	"github.com/odvcencio/textmode/pkg/ui/widget"
)

// ActionFunc receives every action produced by the root tree. Returning
// false stops the loop.
type ActionFunc func(name string) bool

// AppConfig configures a runtime App.
type AppConfig struct {
	Backend backend.Backend
	// Sink defaults to backend.NewSink(Backend).
	Sink     screen.Sink
	Root     *widget.Tree
	Dialogs  *dialog.Registry
	Context  *dialog.Context
	OnAction ActionFunc
	Logger   *logging.Logger
	Metrics  *telemetry.Metrics
	Clock    func() time.Time

	MouseCursor bool
	CursorStyle screen.CursorStyle

	MessageBuffer int
	TickRate      time.Duration
	OnTick        func(now time.Time) bool
}

// App owns the screen and routes backend events to the active dialog or the
// root tree.
type App struct {
	backend  backend.Backend
	sink     screen.Sink
	screen   *screen.Screen
	root     *widget.Tree
	dialogs  *dialog.Registry
	dctx     *dialog.Context
	onAction ActionFunc
	logger   *logging.Logger
	metrics  *telemetry.Metrics
	now      func() time.Time

	mouseCursor bool
	cursorStyle screen.CursorStyle
	mouseRow    int
	mouseCol    int
	haveMouse   bool

	messages chan Message
	tickRate time.Duration
	onTick   func(time.Time) bool

	sessionID string
	started   bool
	dirty     bool
	quit      atomic.Bool
	frames    int
}

// NewApp creates an App from cfg.
func NewApp(cfg AppConfig) *App {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	sink := cfg.Sink
	if sink == nil && cfg.Backend != nil {
		sink = backend.NewSink(cfg.Backend)
	}
	dctx := cfg.Context
	if dctx == nil {
		dctx = &dialog.Context{}
	}
	return &App{
		backend:     cfg.Backend,
		sink:        sink,
		root:        cfg.Root,
		dialogs:     cfg.Dialogs,
		dctx:        dctx,
		onAction:    cfg.OnAction,
		logger:      logger,
		metrics:     cfg.Metrics,
		now:         now,
		mouseCursor: cfg.MouseCursor,
		cursorStyle: cfg.CursorStyle,
		messages:    make(chan Message, bufferSize),
		tickRate:    cfg.TickRate,
		onTick:      cfg.OnTick,
		sessionID:   uuid.NewString(),
	}
}

// SessionID identifies this App in logs.
func (a *App) SessionID() string { return a.sessionID }

// Screen returns the screen once Start has run.
func (a *App) Screen() *screen.Screen { return a.screen }

// Root returns the root tree.
func (a *App) Root() *widget.Tree { return a.root }

// Dialogs returns the dialog registry.
func (a *App) Dialogs() *dialog.Registry { return a.dialogs }

// DialogContext returns the context handed to dialogs.
func (a *App) DialogContext() *dialog.Context { return a.dctx }

// Frames reports how many frames have been flushed.
func (a *App) Frames() int { return a.frames }

// Post sends a message to the loop from any goroutine. It drops the
// message when the buffer is full. Terminal input does not go through Post.
func (a *App) Post(msg Message) {
	select {
	case a.messages <- msg:
	default:
	}
}

// Do runs cmd on the loop goroutine.
func (a *App) Do(cmd Command) {
	a.Post(commandMsg{cmd: cmd})
}

// Quit stops the loop after the current message.
func (a *App) Quit() {
	a.quit.Store(true)
	a.Post(wakeMsg{})
}

// Start initializes the backend and builds the screen at the backend size.
// Run calls it; tests drive Start, Step and Frame directly.
func (a *App) Start() error {
	if a.backend == nil {
		return errors.New(errors.ErrCodeTerminalInit, "backend is required")
	}
	if err := a.backend.Init(); err != nil {
		return errors.Wrap(err, errors.ErrCodeTerminalInit, "init backend")
	}
	a.backend.HideCursor()

	w, h := a.backend.Size()
	a.screen = screen.New(w, h)
	a.screen.SetCursorStyle(a.cursorStyle)
	a.logger = a.logger.WithSession(a.sessionID)

	var listeners fanout
	listeners = append(listeners, a.logger)
	if a.metrics != nil {
		a.screen.SetObserver(a.metrics)
		if a.root != nil {
			a.root.SetObserver(a.metrics)
		}
		listeners = append(listeners, a.metrics)
	}
	if a.dialogs != nil {
		a.dialogs.SetScreenSize(w, h)
		a.dialogs.SetListener(listeners)
	}

	a.started = true
	a.dirty = true
	a.logger.Info("app started", "width", w, "height", h)
	return nil
}

// Stop restores the terminal.
func (a *App) Stop() {
	if !a.started {
		return
	}
	a.started = false
	a.backend.Fini()
	a.logger.Info("app stopped", "frames", a.frames)
}

// Run starts the loop and blocks until Quit, an action handler returns
// false, ctx is cancelled, or a flush fails.
func (a *App) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.Start(); err != nil {
		return err
	}
	defer a.Stop()

	stop := make(chan struct{})
	defer close(stop)
	go a.pollEvents(stop)

	var ticks <-chan time.Time
	if a.tickRate > 0 {
		ticker := time.NewTicker(a.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for !a.quit.Load() {
		if a.dirty {
			if err := a.Frame(ctx); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-a.messages:
			a.update(msg)
		case now := <-ticks:
			a.update(TickMsg{Time: now})
		}
	}
	return nil
}

// Step handles one raw event and renders if anything changed.
func (a *App) Step(ctx context.Context, ev terminal.Event) error {
	a.update(EventMsg{Event: ev})
	if !a.dirty {
		return nil
	}
	return a.Frame(ctx)
}

func (a *App) update(msg Message) {
	switch m := msg.(type) {
	case EventMsg:
		a.handleEvent(m.Event)
	case TickMsg:
		if a.onTick != nil && a.onTick(m.Time) {
			a.dirty = true
		}
	case commandMsg:
		a.handleCommand(m.cmd)
	}
}

func (a *App) handleEvent(tev terminal.Event) {
	if a.screen == nil {
		return
	}
	if rs, ok := tev.(terminal.ResizeEvent); ok {
		a.resize(rs.Width, rs.Height)
		return
	}

	ev := input.Normalize(tev)
	if ev.Kind == input.None {
		return
	}
	if row, col, ok := ev.Position(); ok {
		a.mouseRow, a.mouseCol, a.haveMouse = row, col, true
	}
	a.dirty = true

	if a.dialogs != nil && a.dialogs.IsActive() {
		a.dialogs.HandleEvent(ev, a.dctx)
		return
	}
	if a.root == nil {
		return
	}
	if r := a.root.HandleEvent(ev, a.screen.Bounds()); r.IsAction() {
		a.dispatchAction(r.Name())
	}
}

func (a *App) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	a.screen.Resize(w, h)
	if a.dialogs != nil {
		a.dialogs.SetScreenSize(w, h)
	}
	a.logger.Resized(w, h)
	a.dirty = true
}

func (a *App) dispatchAction(name string) {
	a.logger.ActionDispatched(name)
	if a.onAction != nil && !a.onAction(name) {
		a.quit.Store(true)
	}
}

func (a *App) handleCommand(cmd Command) {
	switch c := cmd.(type) {
	case Quit:
		a.quit.Store(true)
	case Refresh:
		if a.screen != nil {
			a.screen.Invalidate()
		}
		if inv, ok := a.sink.(invalidator); ok {
			inv.Invalidate()
		}
	case OpenDialog:
		if a.dialogs == nil {
			return
		}
		if err := a.dialogs.Open(c.Kind, a.dctx); err != nil {
			a.logger.Warn("open dialog", "error", err.Error())
			return
		}
	case CloseDialog:
		if a.dialogs != nil {
			a.dialogs.Close()
		}
	case ApplyTheme:
		if a.root != nil {
			a.root.SetTheme(c.Theme)
		}
		if a.dialogs != nil && c.Dialogs != nil {
			a.dialogs.SetTheme(*c.Dialogs)
		}
	case Call:
		if c.Fn != nil {
			c.Fn(a)
		}
	}
	a.dirty = true
}

// Frame draws the tree, the open dialog and the mouse pointer, then flushes
// to the sink. A flush error is logged and returned.
func (a *App) Frame(ctx context.Context) error {
	if a.screen == nil {
		return errors.New(errors.ErrCodeInternal, "app not started")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := telemetry.StartSpan(ctx, "frame")
	defer span.End()
	start := a.now()

	a.draw()
	if err := a.screen.Flush(a.sink); err != nil {
		span.RecordError(err)
		a.logger.WithContext(ctx).FlushFailed(err)
		return err
	}
	a.dirty = false
	a.frames++

	st := a.screen.LastFlush()
	span.SetAttributes(
		attribute.Int("cells", st.CellsWritten),
		attribute.Int("cursor_moves", st.CursorMoves),
		attribute.Bool("sixel", st.Sixel),
	)
	a.logger.WithContext(ctx).Debug("frame", "cells", st.CellsWritten, "elapsed", a.now().Sub(start))
	return nil
}

func (a *App) draw() {
	a.screen.Clear()
	if a.root != nil {
		a.root.Draw(a.screen, a.screen.Bounds())
	}
	if a.dialogs != nil {
		a.dialogs.Draw(a.screen)
	}
	if a.mouseCursor && a.haveMouse {
		a.screen.ApplyMouseCursor(a.mouseRow, a.mouseCol)
	}
}

// pollEvents feeds backend events to the loop. Input is never dropped: a
// full buffer blocks the poller until the loop catches up or Run returns.
func (a *App) pollEvents(stop <-chan struct{}) {
	for !a.quit.Load() {
		ev := a.backend.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.messages <- EventMsg{Event: ev}:
		case <-stop:
			return
		}
	}
}

// invalidator is implemented by sinks that can force a full repaint.
type invalidator interface {
	Invalidate()
}

// fanout forwards dialog notifications to several listeners.
type fanout []dialog.Listener

func (f fanout) DialogOpened(kind string) {
	for _, l := range f {
		l.DialogOpened(kind)
	}
}

func (f fanout) DialogClosed(kind, reason string) {
	for _, l := range f {
		l.DialogClosed(kind, reason)
	}
}
