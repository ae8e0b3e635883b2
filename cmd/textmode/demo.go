package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/odvcencio/textmode/pkg/config"
	"github.com/odvcencio/textmode/pkg/errors"
	"github.com/odvcencio/textmode/pkg/ui/backend"
	"github.com/odvcencio/textmode/pkg/ui/backend/tcell"
	"github.com/odvcencio/textmode/pkg/ui/dialog"
	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/runtime"
	"github.com/odvcencio/textmode/pkg/ui/theme"
	"github.com/odvcencio/textmode/pkg/ui/widget"
	"github.com/odvcencio/textmode/pkg/ui/widgets"
)

const sampleProgram = `10 REM TEXTMODE SAMPLE
20 PRINT "HELLO"
30 FOR I = 1 TO 10
40 PRINT I
50 NEXT I
60 INPUT "NAME"; N$
70 PRINT "HELLO "; N$
80 GOTO 20
90 END`

// demo is the sample application: a menu bar, a line list over a text
// buffer, a replace row, a button bar and a status bar, with the standard
// dialogs.
type demo struct {
	tree    *widget.Tree
	dialogs *dialog.Registry
	ctx     *dialog.Context
	buffer  *dialog.Buffer
	menu    *widgets.MenuBar
	list    *widgets.ListView
	status  *widgets.StatusBar
	replace *widgets.TextField

	// quit is called once the user confirms.
	quit func()
}

func newDemo(th theme.Theme, doubleClick time.Duration, clip widgets.Clipboard, width, height int) *demo {
	d := &demo{
		buffer:  dialog.NewBuffer(sampleProgram),
		dialogs: dialog.NewStandardRegistry(width, height),
		menu:    newDemoMenu(),
		list:    widgets.NewListView("lines").WithDoubleClick(doubleClick),
		status:  widgets.NewStatusBar(),
		replace: widgets.NewTextField("replace").WithClipboard(clip),
		quit:    func() {},
	}
	d.ctx = &dialog.Context{Editor: d.buffer, Status: dialog.StatusFunc(d.setStatus)}
	d.status.SetHint("F10 Menu  ^F Find  ^G Go To  F3 Next  ^Q Quit")
	d.refreshLines()

	replaceRow := widget.HStack("replace_row").Spacing(1).Height(layout.Fixed(1)).
		Leaf("label", widgets.NewLabel("Replace with:").WithMinWidth(14)).
		Leaf("field", d.replace).
		Leaf("apply", widgets.NewButton("Replace All", "replace_all"))

	buttons := widget.HStack("buttons").Height(layout.Fixed(1)).
		Leaf("s0", widgets.NewSpacer()).
		Leaf("find", widgets.NewButton("Find", "find")).
		Leaf("s1", widgets.FixedSpacer(1)).
		Leaf("goto", widgets.NewButton("Go To", "goto")).
		Leaf("s2", widgets.FixedSpacer(1)).
		Leaf("next", widgets.NewButton("Find Next", "find_next")).
		Leaf("s3", widgets.FixedSpacer(1)).
		Leaf("about", widgets.NewButton("About", "about")).
		Leaf("s4", widgets.FixedSpacer(1)).
		Leaf("quit", widgets.NewButton("Quit", "quit")).
		Leaf("s5", widgets.NewSpacer())

	root := widget.VStack("root").
		Leaf("menu", d.menu).
		Leaf("title", widgets.NewLabel("textmode demo").Centered()).
		Leaf("lines", d.list).
		Leaf("rule", widgets.NewHRule()).
		Child(replaceRow).
		Child(buttons).
		Leaf("status", d.status).
		Handler(d.capture)

	d.tree = widget.New(root, th)
	d.tree.FocusFirst()
	return d
}

func newDemoMenu() *widgets.MenuBar {
	return widgets.NewMenuBar(
		widgets.Menu{Title: "&File", Items: []widgets.MenuItem{
			{Label: "&New", Disabled: true},
			{Label: "&Open...", Disabled: true},
			widgets.MenuSeparator(),
			{Label: "E&xit", Action: "quit", Shortcut: "^Q"},
		}},
		widgets.Menu{Title: "&Edit", Items: []widgets.MenuItem{
			{Label: "&Undo", Disabled: true},
			widgets.MenuSeparator(),
			{Label: "Replace &All", Action: "replace_all"},
		}},
		widgets.Menu{Title: "&Search", Items: []widgets.MenuItem{
			{Label: "&Find...", Action: "find", Shortcut: "^F"},
			{Label: "&Repeat Last Find", Action: "find_next", Shortcut: "F3"},
			{Label: "&Change...", Action: "change", Shortcut: "F4"},
			widgets.MenuSeparator(),
			{Label: "&Go To Line...", Action: "goto", Shortcut: "^G"},
		}},
		widgets.Menu{Title: "&Help", Items: []widgets.MenuItem{
			{Label: "&About...", Action: "about"},
		}},
	)
}

// capture runs before the focused widget sees an event: the menu bar gets
// the first look, then the global shortcuts.
func (d *demo) capture(ev input.Event, _ layout.Rect, phase widget.Phase) widget.Result {
	if phase != widget.Capture {
		return widget.Ignored
	}
	if r := d.menu.Intercept(ev); r.Handled() {
		return r
	}
	return shortcuts(ev)
}

// shortcuts maps global keys to actions.
func shortcuts(ev input.Event) widget.Result {
	switch {
	case ev.Kind == input.CtrlChar && ev.Rune == 'q':
		return widget.Action("quit")
	case ev.Kind == input.CtrlChar && ev.Rune == 'f':
		return widget.Action("find")
	case ev.Kind == input.CtrlChar && ev.Rune == 'g':
		return widget.Action("goto")
	case ev.Kind == input.Function && ev.Num == 3:
		return widget.Action("find_next")
	case ev.Kind == input.Function && ev.Num == 4:
		return widget.Action("change")
	}
	return widget.Ignored
}

func (d *demo) refreshLines() {
	lines := make([]string, d.buffer.LineCount())
	for i := range lines {
		lines[i], _ = d.buffer.Line(i)
	}
	d.list.SetItems(lines)
	d.syncCursor()
}

// syncCursor mirrors the buffer cursor into the list and the status bar.
func (d *demo) syncCursor() {
	line, col := d.buffer.Cursor()
	d.list.SetSelected(line)
	d.status.SetPosition(line+1, col+1)
}

// setStatus is the dialogs' status sink. Dialogs may have edited the
// buffer, so the list is rebuilt too.
func (d *demo) setStatus(msg string) {
	d.status.SetStatus(msg)
	d.refreshLines()
}

func (d *demo) open(kind dialog.Kind) {
	if err := d.dialogs.Open(kind, d.ctx); err != nil {
		d.status.SetStatus(err.Error())
	}
}

// handleAction is the runtime action handler. It never stops the loop
// directly; quitting goes through the confirm dialog.
func (d *demo) handleAction(name string) bool {
	switch name {
	case "find":
		d.open(dialog.KindFind)
	case "goto":
		d.open(dialog.KindGoTo)
	case "change":
		d.open(dialog.KindReplace)
	case "find_next":
		dialog.FindNext(d.ctx)
	case "about":
		if c, ok := d.dialogs.Controller(dialog.KindMessage); ok {
			c.(*dialog.Message).SetMessage("About", fmt.Sprintf("textmode %s\nA retained-mode terminal UI toolkit.", version))
		}
		d.open(dialog.KindMessage)
	case "quit":
		if c, ok := d.dialogs.Controller(dialog.KindConfirm); ok {
			c.(*dialog.Confirm).SetMessage("Quit", "Leave the demo?", func(yes bool) {
				if yes {
					d.quit()
				}
			})
		}
		d.open(dialog.KindConfirm)
	case "lines_select", "lines_activate":
		idx := d.list.Selected()
		d.buffer.SetCursor(idx, 0)
		d.status.SetPosition(idx+1, 1)
		if name == "lines_activate" {
			d.status.SetStatus(fmt.Sprintf("Line %d", idx+1))
		}
	case "replace_all", "replace_submit":
		d.replaceAll()
	case "replace_clipboard_error":
		d.status.SetStatus("Clipboard unavailable: " + d.replace.ClipboardErr().Error())
	}
	return true
}

func (d *demo) replaceAll() {
	s := d.ctx.Search
	if s.Query == "" {
		d.setStatus("No search text")
		return
	}
	n := d.buffer.ReplaceAll(s.Query, d.replace.Text(), s.CaseSensitive, s.WholeWord)
	d.refreshLines()
	d.status.SetStatus(fmt.Sprintf("Replaced %d", n))
}

func newDemoCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), *configPath)
		},
	}
}

func runDemo(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession(configPath, "demo")
	if err != nil {
		return err
	}
	defer s.Close()

	th, err := s.cfg.Theme()
	if err != nil {
		return err
	}
	be, err := tcell.New()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeTerminalInit, "open terminal")
	}

	// The registry is resized by the runtime once the backend is up.
	d := newDemo(th, s.cfg.UI.DoubleClick, widgets.SystemClipboard{}, 80, 25)
	app := newDemoApp(d, be, s)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Leaving the loop for any reason ends the watcher too.
		defer cancel()
		err := app.Run(gctx)
		if stderrors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	if s.configPath != "" {
		g.Go(func() error {
			err := config.Watch(gctx, s.configPath, func(cfg *config.Config) {
				next, err := cfg.Theme()
				if err != nil {
					return
				}
				s.logger.Info("config reloaded", "theme", cfg.UI.Theme)
				app.Do(runtime.ApplyTheme{Theme: next})
			})
			if err != nil {
				s.logger.Warn("config watch stopped", "error", err.Error())
			}
			return nil
		})
	}
	return g.Wait()
}

func newDemoApp(d *demo, be backend.Backend, s *session) *runtime.App {
	app := runtime.NewApp(runtime.AppConfig{
		Backend:     be,
		Root:        d.tree,
		Dialogs:     d.dialogs,
		Context:     d.ctx,
		OnAction:    d.handleAction,
		Logger:      s.logger,
		Metrics:     s.metrics,
		MouseCursor: s.cfg.UI.MouseCursor,
		CursorStyle: s.cfg.CursorStyle(),
	})
	d.quit = app.Quit
	return app
}
