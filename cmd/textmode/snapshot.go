package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odvcencio/textmode/pkg/errors"
	"github.com/odvcencio/textmode/pkg/ui/compositor"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/widgets"
)

type snapshotOptions struct {
	width, height int
	fit           bool
	plain         bool
	dialog        string
}

// snapshotDialogs maps --dialog values to the demo action that opens them.
var snapshotDialogs = map[string]string{
	"about":   "about",
	"confirm": "quit",
	"find":    "find",
	"goto":    "goto",
	"replace": "change",
}

func newSnapshotCmd(configPath *string) *cobra.Command {
	opts := snapshotOptions{width: 80, height: 25}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one frame of the demo to stdout",
		Long: `snapshot draws the demo screen once and writes it as ANSI escape
sequences, or as plain text with --plain. Use --dialog to open one of the
standard dialogs (about, confirm, find, goto, replace) on top.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.fit {
				w, h, err := terminalSize()
				if err != nil {
					return err
				}
				opts.width, opts.height = w, h
			}
			cfg, _, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			th, err := cfg.Theme()
			if err != nil {
				return err
			}
			d := newDemo(th, cfg.UI.DoubleClick, &widgets.MemoryClipboard{}, opts.width, opts.height)
			return renderSnapshot(cmd.OutOrStdout(), d, opts)
		},
	}
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "screen width in cells")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "screen height in cells")
	cmd.Flags().BoolVar(&opts.fit, "fit", false, "use the size of the controlling terminal")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "write characters only")
	cmd.Flags().StringVar(&opts.dialog, "dialog", "", "dialog to open: about, confirm, find, goto or replace")
	return cmd
}

func terminalSize() (int, int, error) {
	raw, err := compositor.OpenRaw(os.Stdout)
	if err != nil {
		return 0, 0, err
	}
	defer raw.Close()
	return raw.Size()
}

func renderSnapshot(w io.Writer, d *demo, opts snapshotOptions) error {
	if opts.width <= 0 || opts.height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "snapshot size must be positive").
			WithContext("width", opts.width).
			WithContext("height", opts.height)
	}
	if opts.dialog != "" {
		action, ok := snapshotDialogs[opts.dialog]
		if !ok {
			return errors.New(errors.ErrCodeDialogUnknown, "unknown dialog").WithContext("dialog", opts.dialog)
		}
		d.handleAction(action)
	}

	scr := screen.New(opts.width, opts.height)
	d.tree.Draw(scr, scr.Bounds())
	d.dialogs.Draw(scr)

	if opts.plain {
		return writePlain(w, scr)
	}
	sink := compositor.NewANSISink(w)
	if err := scr.Flush(sink); err != nil {
		return err
	}
	if err := sink.WriteRaw(compositor.ANSIReset + compositor.CursorTo(opts.height, 1) + "\n"); err != nil {
		return err
	}
	return sink.Flush()
}

func writePlain(w io.Writer, scr *screen.Screen) error {
	width, height := scr.Size()
	var sb strings.Builder
	for row := 1; row <= height; row++ {
		var line strings.Builder
		for col := 1; col <= width; col++ {
			c, _ := scr.Get(row, col)
			line.WriteRune(c.Ch)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	if _, err := fmt.Fprint(w, sb.String()); err != nil {
		return errors.Wrap(err, errors.ErrCodeTerminalIO, "write snapshot")
	}
	return nil
}
