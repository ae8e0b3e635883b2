package main

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/textmode/pkg/errors"
	"github.com/odvcencio/textmode/pkg/ui/dialog"
	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/theme"
	"github.com/odvcencio/textmode/pkg/ui/widget"
	"github.com/odvcencio/textmode/pkg/ui/widgets"
)

// isolate points config discovery at empty directories.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	for _, key := range []string{"TEXTMODE_THEME", "TEXTMODE_LOG_LEVEL", "TEXTMODE_LOG_FILE", "TEXTMODE_METRICS", "TEXTMODE_TRACING"} {
		t.Setenv(key, "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("textmode %s (commit %s, built %s)\n", version, commit, buildDate), out)
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"config", errors.New(errors.ErrCodeConfigParse, "bad yaml"), exitConfig},
		{"terminal", errors.New(errors.ErrCodeTerminalInit, "no tty"), exitTerminal},
		{"wrapped terminal", fmt.Errorf("run: %w", errors.New(errors.ErrCodeTerminalIO, "write")), exitTerminal},
		{"plain", stderrors.New("boom"), exitFailure},
		{"dialog", errors.New(errors.ErrCodeDialogUnknown, "nope"), exitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeForError(tt.err))
		})
	}
}

func TestSnapshot_Plain(t *testing.T) {
	isolate(t)
	out, err := execute(t, "snapshot", "--plain")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 25)
	assert.Contains(t, lines[0], " File  Edit  Search  Help")
	assert.Contains(t, lines[1], "textmode demo")
	assert.Contains(t, out, "10 REM TEXTMODE SAMPLE")
	assert.Contains(t, out, "< Find >")
	assert.Contains(t, out, "< Quit >")
	assert.Contains(t, out, "Replace with:")
	assert.True(t, strings.HasPrefix(lines[24], " Ready"), "status row = %q", lines[24])
}

func TestSnapshot_Dialog(t *testing.T) {
	isolate(t)
	out, err := execute(t, "snapshot", "--plain", "--dialog", "about")
	require.NoError(t, err)
	assert.Contains(t, out, "About")
	assert.Contains(t, out, "retained-mode terminal UI toolkit")

	out, err = execute(t, "snapshot", "--plain", "--dialog", "replace")
	require.NoError(t, err)
	assert.Contains(t, out, "< Replace >")
	assert.Contains(t, out, "Match Case")

	_, err = execute(t, "snapshot", "--dialog", "palette")
	assert.True(t, errors.IsCode(err, errors.ErrCodeDialogUnknown), "err = %v", err)
}

func TestSnapshot_ANSI(t *testing.T) {
	isolate(t)
	out, err := execute(t, "snapshot", "--width", "40", "--height", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[1;1H")
	assert.True(t, strings.HasSuffix(out, "\x1b[0m\x1b[10;1H\n"))
}

func TestSnapshot_BadSize(t *testing.T) {
	isolate(t)
	_, err := execute(t, "snapshot", "--width", "0")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidInput), "err = %v", err)
}

func TestSnapshot_ConfigErrors(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: neon\n"), 0o644))

	_, err := execute(t, "--config", path, "snapshot")
	require.Error(t, err)
	assert.Equal(t, exitConfig, exitCodeForError(err))
}

func testBounds() layout.Rect { return layout.Rect{X: 1, Y: 1, Width: 80, Height: 25} }

func newTestDemo() *demo {
	return newDemo(theme.ClassicBlue(), 400*time.Millisecond, &widgets.MemoryClipboard{}, 80, 25)
}

func TestDemo_Shortcuts(t *testing.T) {
	d := newTestDemo()
	bounds := testBounds()
	tests := []struct {
		ev   input.Event
		want string
	}{
		{input.Ctrl('f'), "find"},
		{input.Ctrl('g'), "goto"},
		{input.Ctrl('q'), "quit"},
		{input.F(3), "find_next"},
		{input.F(4), "change"},
	}
	for _, tt := range tests {
		got := d.tree.HandleEvent(tt.ev, bounds)
		assert.Equal(t, widget.Action(tt.want), got, "%v", tt.ev)
	}
}

func TestDemo_DialogActions(t *testing.T) {
	d := newTestDemo()
	for action, kind := range map[string]dialog.Kind{
		"find":   dialog.KindFind,
		"goto":   dialog.KindGoTo,
		"about":  dialog.KindMessage,
		"quit":   dialog.KindConfirm,
		"change": dialog.KindReplace,
	} {
		assert.True(t, d.handleAction(action))
		active, ok := d.dialogs.Active()
		assert.True(t, ok)
		assert.Equal(t, kind, active, action)
	}
}

func TestDemo_QuitNeedsConfirmation(t *testing.T) {
	d := newTestDemo()
	quits := 0
	d.quit = func() { quits++ }

	d.handleAction("quit")
	assert.Zero(t, quits)
	d.dialogs.HandleEvent(input.Key(input.Escape), d.ctx)
	assert.Zero(t, quits, "escape must not quit")

	d.handleAction("quit")
	assert.Equal(t, dialog.Closed, d.dialogs.HandleEvent(input.Key(input.Enter), d.ctx))
	assert.Equal(t, 1, quits)
}

func TestDemo_FindNextAndReplace(t *testing.T) {
	d := newTestDemo()

	d.handleAction("find_next")
	assert.Equal(t, "No search text", d.status.Status())

	d.ctx.Search.Query = "HELLO"
	d.handleAction("find_next")
	assert.Equal(t, "Found at line 2", d.status.Status())
	assert.Equal(t, 1, d.list.Selected())

	d.replace.SetText("BYE")
	d.handleAction("replace_all")
	assert.Equal(t, "Replaced 2", d.status.Status())
	assert.Equal(t, `20 PRINT "BYE"`, d.list.Items()[1])
	assert.Equal(t, `70 PRINT "BYE "; N$`, d.list.Items()[6])
}

func TestDemo_MenuBar(t *testing.T) {
	d := newTestDemo()
	bounds := testBounds()

	assert.Equal(t, widget.Consumed, d.tree.HandleEvent(input.F(10), bounds))
	assert.True(t, d.menu.IsOpen())
	// The open menu keeps shortcuts from firing.
	assert.Equal(t, widget.Consumed, d.tree.HandleEvent(input.Ctrl('q'), bounds))
	assert.Equal(t, widget.Consumed, d.tree.HandleEvent(input.Key(input.Escape), bounds))
	assert.False(t, d.menu.IsOpen())

	assert.Equal(t, widget.Consumed, d.tree.HandleEvent(input.Alt('s'), bounds))
	menu, item := d.menu.Current()
	assert.Equal(t, 2, menu)
	assert.Equal(t, 0, item)
	d.tree.HandleEvent(input.Key(input.CursorDown), bounds)
	d.tree.HandleEvent(input.Key(input.CursorDown), bounds)
	got := d.tree.HandleEvent(input.Key(input.Enter), bounds)
	assert.Equal(t, widget.Action("change"), got)

	assert.True(t, d.handleAction(got.Name()))
	active, ok := d.dialogs.Active()
	assert.True(t, ok)
	assert.Equal(t, dialog.KindReplace, active)

	// Disabled entries cannot be chosen by hotkey.
	d.dialogs.Close()
	d.tree.HandleEvent(input.Alt('f'), bounds)
	assert.Equal(t, widget.Consumed, d.tree.HandleEvent(input.Rune('n'), bounds))
	assert.True(t, d.menu.IsOpen())
	assert.Equal(t, widget.Action("quit"), d.tree.HandleEvent(input.Rune('x'), bounds))
}

func TestDemo_ReplaceDialogRefreshesList(t *testing.T) {
	d := newTestDemo()
	d.handleAction("change")
	c, ok := d.dialogs.Controller(dialog.KindReplace)
	require.True(t, ok)
	r := c.(*dialog.Replace)

	for _, ch := range "HELLO" {
		d.dialogs.HandleEvent(input.Rune(ch), d.ctx)
	}
	d.dialogs.HandleEvent(input.Key(input.Tab), d.ctx)
	for _, ch := range "BYE" {
		d.dialogs.HandleEvent(input.Rune(ch), d.ctx)
	}
	assert.Equal(t, "BYE", r.Replacement())
	for range 4 {
		d.dialogs.HandleEvent(input.Key(input.Tab), d.ctx)
	}
	assert.Equal(t, dialog.Closed, d.dialogs.HandleEvent(input.Key(input.Enter), d.ctx))
	assert.Equal(t, "Replaced 2", d.status.Status())
	assert.Equal(t, `20 PRINT "BYE"`, d.list.Items()[1])
}

func TestDemo_ClipboardErrorReachesStatus(t *testing.T) {
	d := newTestDemo()
	d.replace.SetText("x")
	d.replace.WithClipboard(failingClipboard{})
	d.replace.SetFocus(true)
	d.replace.SelectAll()

	r := d.replace.HandleEvent(input.Ctrl('c'), testBounds(), widget.Target)
	require.True(t, r.Is("replace_clipboard_error"))
	d.handleAction(r.Name())
	assert.Equal(t, "Clipboard unavailable: no display", d.status.Status())
}

type failingClipboard struct{}

func (failingClipboard) ReadAll() (string, error) { return "", stderrors.New("no display") }
func (failingClipboard) WriteAll(string) error    { return stderrors.New("no display") }

func TestDemo_ListMovesCursor(t *testing.T) {
	d := newTestDemo()
	d.list.SetSelected(4)
	d.handleAction("lines_activate")

	line, col := d.buffer.Cursor()
	assert.Equal(t, 4, line)
	assert.Equal(t, 0, col)
	assert.Equal(t, "Line 5", d.status.Status())
	assert.Equal(t, "5:1", d.status.Position())
}

func TestKeyLog(t *testing.T) {
	k := newKeyLog(theme.ClassicBlue())
	bounds := testBounds()

	assert.Equal(t, widget.Consumed, k.tree.HandleEvent(input.Rune('a'), bounds))
	assert.Equal(t, widget.Consumed, k.tree.HandleEvent(input.F(5), bounds))
	assert.Equal(t, []string{"Char('a')", "F5"}, k.events.Items())
	assert.Equal(t, 1, k.events.Selected())

	assert.Equal(t, widget.Action("quit"), k.tree.HandleEvent(input.Key(input.Escape), bounds))
}
