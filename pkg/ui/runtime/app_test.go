package runtime

import (
	"context"
	stderrors "errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/odvcencio/textmode/pkg/telemetry"
	"github.com/odvcencio/textmode/pkg/ui/backend/sim"
	"github.com/odvcencio/textmode/pkg/ui/dialog"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/terminal"
	"github.com/odvcencio/textmode/pkg/ui/theme"
	"github.com/odvcencio/textmode/pkg/ui/widget"
	"github.com/odvcencio/textmode/pkg/ui/widgets"
)

func testTree() *widget.Tree {
	root := widget.VStack("root").
		Leaf("ok", widgets.NewButton("OK", "ok")).
		Leaf("quit", widgets.NewButton("Quit", "quit"))
	t := widget.New(root, theme.ClassicBlue())
	t.FocusFirst()
	return t
}

func startApp(t *testing.T, cfg AppConfig) (*App, *sim.Backend) {
	t.Helper()
	be := sim.New(80, 25)
	cfg.Backend = be
	app := NewApp(cfg)
	if err := app.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(app.Stop)
	if err := app.Frame(context.Background()); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	return app, be
}

func key(k terminal.Key) terminal.Event { return terminal.KeyEvent{Key: k} }

func TestApp_DrawsTree(t *testing.T) {
	_, be := startApp(t, AppConfig{Root: testTree()})
	if !be.ContainsText("< OK >") || !be.ContainsText("< Quit >") {
		t.Fatalf("buttons not rendered:\n%s", be.Capture())
	}
}

func TestApp_ActionsReachHandler(t *testing.T) {
	var got []string
	app, _ := startApp(t, AppConfig{
		Root: testTree(),
		OnAction: func(name string) bool {
			got = append(got, name)
			return name != "quit"
		},
	})
	ctx := context.Background()

	if err := app.Step(ctx, key(terminal.KeyEnter)); err != nil {
		t.Fatal(err)
	}
	if err := app.Step(ctx, key(terminal.KeyTab)); err != nil {
		t.Fatal(err)
	}
	if err := app.Step(ctx, key(terminal.KeyEnter)); err != nil {
		t.Fatal(err)
	}
	if strings.Join(got, ",") != "ok,quit" {
		t.Errorf("actions = %v", got)
	}
	if !app.quit.Load() {
		t.Error("handler returning false should stop the loop")
	}
}

func TestApp_Resize(t *testing.T) {
	reg := dialog.NewStandardRegistry(80, 25)
	app, _ := startApp(t, AppConfig{Root: testTree(), Dialogs: reg})

	if err := app.Step(context.Background(), terminal.ResizeEvent{Width: 100, Height: 30}); err != nil {
		t.Fatal(err)
	}
	if w, h := app.Screen().Size(); w != 100 || h != 30 {
		t.Errorf("screen = %dx%d", w, h)
	}

	app.update(commandMsg{cmd: OpenDialog{Kind: dialog.KindGoTo}})
	c, _ := reg.Controller(dialog.KindGoTo)
	b := c.(*dialog.GoTo).Shell().Window().Bounds()
	if b.X != 31 || b.Y != 12 {
		t.Errorf("dialog not centered on the resized screen: %+v", b)
	}
}

func TestApp_DialogTakesEvents(t *testing.T) {
	var actions []string
	reg := dialog.NewStandardRegistry(80, 25)
	app, be := startApp(t, AppConfig{
		Root:    testTree(),
		Dialogs: reg,
		OnAction: func(name string) bool {
			actions = append(actions, name)
			return true
		},
	})
	ctx := context.Background()

	msg, _ := reg.Controller(dialog.KindMessage)
	msg.(*dialog.Message).SetMessage("Note", "hello")
	app.update(commandMsg{cmd: OpenDialog{Kind: dialog.KindMessage}})
	if err := app.Frame(ctx); err != nil {
		t.Fatal(err)
	}
	if !be.ContainsText("hello") {
		t.Fatalf("dialog not drawn:\n%s", be.Capture())
	}

	if err := app.Step(ctx, key(terminal.KeyEnter)); err != nil {
		t.Fatal(err)
	}
	if reg.IsActive() {
		t.Error("Enter on OK should close the dialog")
	}
	if len(actions) != 0 {
		t.Errorf("root tree saw %v while the dialog was open", actions)
	}
	if be.ContainsText("hello") {
		t.Error("closed dialog still on screen")
	}
}

func TestApp_MouseCursorOverlay(t *testing.T) {
	app, _ := startApp(t, AppConfig{Root: testTree(), MouseCursor: true})
	move := terminal.MouseEvent{X: 9, Y: 4, Action: terminal.MouseMove}
	if err := app.Step(context.Background(), move); err != nil {
		t.Fatal(err)
	}
	c, _ := app.Screen().Get(5, 10)
	if c.BG != screen.Brown || c.FG != screen.LightGray.Invert() {
		t.Errorf("pointer cell = %+v", c)
	}
}

func TestApp_MetricsObserveFrames(t *testing.T) {
	m := telemetry.NewMetrics()
	app, _ := startApp(t, AppConfig{Root: testTree(), Metrics: m})
	if err := app.Step(context.Background(), key(terminal.KeyTab)); err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(m.Flushes.WithLabelValues("diff")); got != 2 {
		t.Errorf("flushes = %v", got)
	}
	if app.Frames() != 2 {
		t.Errorf("frames = %d", app.Frames())
	}
}

// failingSink rejects the first cursor move.
type failingSink struct{}

var errBrokenPipe = stderrors.New("broken pipe")

func (failingSink) Goto(int, int) error                       { return errBrokenPipe }
func (failingSink) SetColors(screen.Color, screen.Color) error { return nil }
func (failingSink) WriteChar(rune) error                      { return nil }
func (failingSink) WriteRaw(string) error                     { return nil }
func (failingSink) ShowCursor() error                         { return nil }
func (failingSink) HideCursor() error                         { return nil }
func (failingSink) SetCursorStyle(screen.CursorStyle) error   { return nil }
func (failingSink) Flush() error                              { return nil }

func TestApp_FlushErrorStopsRun(t *testing.T) {
	app := NewApp(AppConfig{Backend: sim.New(10, 3), Sink: failingSink{}, Root: testTree()})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := app.Run(ctx); !stderrors.Is(err, errBrokenPipe) {
		t.Fatalf("Run = %v, want the sink error", err)
	}
}

func TestApp_RunQuit(t *testing.T) {
	be := sim.New(20, 5)
	app := NewApp(AppConfig{
		Backend:  be,
		Root:     testTree(),
		OnAction: func(name string) bool { return name != "ok" },
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	be.InjectKey(terminal.KeyEnter, 0)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Run did not exit after the quit action")
	}
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app := NewApp(AppConfig{Backend: sim.New(20, 5), Root: testTree()})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		if !stderrors.Is(err, context.Canceled) {
			t.Fatalf("Run = %v", err)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Run ignored cancellation")
	}
}

func TestApp_QuitFromOtherGoroutine(t *testing.T) {
	app := NewApp(AppConfig{Backend: sim.New(20, 5)})
	done := make(chan error, 1)
	go func() {
		done <- app.Run(context.Background())
	}()
	time.Sleep(20 * time.Millisecond)
	app.Quit()

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Quit did not stop Run")
	}
}

// syncCounter records full repaints requested through the sink.
type syncCounter struct {
	*sim.Backend
	syncs int
}

func (c *syncCounter) Sync() {
	c.syncs++
	c.Backend.Sync()
}

func TestApp_RefreshRepaintsBackend(t *testing.T) {
	be := &syncCounter{Backend: sim.New(20, 5)}
	app := NewApp(AppConfig{Backend: be, Root: testTree()})
	if err := app.Start(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(app.Stop)
	ctx := context.Background()
	if err := app.Frame(ctx); err != nil {
		t.Fatal(err)
	}
	if be.syncs != 0 {
		t.Fatalf("plain frame synced %d times", be.syncs)
	}

	app.update(commandMsg{cmd: Refresh{}})
	if err := app.Frame(ctx); err != nil {
		t.Fatal(err)
	}
	if be.syncs != 1 {
		t.Errorf("Refresh synced %d times, want 1", be.syncs)
	}
	if !be.ContainsText("< OK >") {
		t.Errorf("repaint lost the tree:\n%s", be.Capture())
	}
}

func TestApp_InputSurvivesFullBuffer(t *testing.T) {
	be := sim.New(20, 5)
	gate := make(chan struct{})
	var handled atomic.Int32
	app := NewApp(AppConfig{
		Backend:       be,
		Root:          testTree(),
		MessageBuffer: 1,
		OnAction: func(string) bool {
			if handled.Add(1) == 1 {
				<-gate
			}
			return true
		},
	})

	done := make(chan error, 1)
	go func() {
		done <- app.Run(context.Background())
	}()
	time.Sleep(20 * time.Millisecond)

	const presses = 8
	for range presses {
		be.InjectKey(terminal.KeyEnter, 0)
	}
	time.Sleep(20 * time.Millisecond)
	close(gate)

	deadline := time.Now().Add(time.Second)
	for handled.Load() < presses && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	app.Quit()
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if got := handled.Load(); got != presses {
		t.Errorf("handled %d of %d key presses", got, presses)
	}
}

func TestApp_StartWithoutBackend(t *testing.T) {
	if err := NewApp(AppConfig{}).Start(); err == nil {
		t.Fatal("expected an error without a backend")
	}
	if err := NewApp(AppConfig{}).Frame(context.Background()); err == nil {
		t.Fatal("Frame before Start should fail")
	}
}
