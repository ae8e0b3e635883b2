package main

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/odvcencio/textmode/pkg/errors"
	"github.com/odvcencio/textmode/pkg/ui/backend/tcell"
	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/runtime"
	"github.com/odvcencio/textmode/pkg/ui/theme"
	"github.com/odvcencio/textmode/pkg/ui/widget"
	"github.com/odvcencio/textmode/pkg/ui/widgets"
)

const maxKeyLog = 500

// keyLog lists every normalized event the tree receives.
type keyLog struct {
	tree   *widget.Tree
	events *widgets.ListView
}

func newKeyLog(th theme.Theme) *keyLog {
	k := &keyLog{events: widgets.NewListView("events")}
	root := widget.VStack("root").
		Leaf("title", widgets.NewLabel("Press keys or use the mouse. Esc quits.").Centered()).
		Leaf("events", k.events).
		Handler(k.capture)
	k.tree = widget.New(root, th)
	k.tree.FocusFirst()
	return k
}

func (k *keyLog) capture(ev input.Event, _ layout.Rect, phase widget.Phase) widget.Result {
	if phase != widget.Capture {
		return widget.Ignored
	}
	if ev.Kind == input.Escape {
		return widget.Action("quit")
	}
	if ev.Kind == input.MouseMove {
		return widget.Ignored
	}
	items := append(k.events.Items(), ev.String())
	if len(items) > maxKeyLog {
		items = items[len(items)-maxKeyLog:]
	}
	k.events.SetItems(items)
	k.events.SetSelected(len(items) - 1)
	return widget.Consumed
}

func newKeysCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show normalized input events as they arrive",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			s, err := openSession(*configPath, "keys")
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

			k := newKeyLog(th)
			app := runtime.NewApp(runtime.AppConfig{
				Backend:     be,
				Root:        k.tree,
				OnAction:    func(name string) bool { return name != "quit" },
				Logger:      s.logger,
				Metrics:     s.metrics,
				MouseCursor: s.cfg.UI.MouseCursor,
				CursorStyle: s.cfg.CursorStyle(),
			})

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := app.Run(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
