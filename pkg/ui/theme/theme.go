// Package theme holds the color pairs every widget draws with.
//
// A Theme is a plain value. Widgets read it, never mutate it; switching themes
// means handing the tree a different value.
package theme

import (
	"fmt"
	"sort"

	"github.com/odvcencio/textmode/pkg/errors"
	"github.com/odvcencio/textmode/pkg/ui/screen"
)

// Pair is a foreground/background combination.
type Pair struct {
	FG screen.Color
	BG screen.Color
}

// P builds a Pair.
func P(fg, bg screen.Color) Pair { return Pair{FG: fg, BG: bg} }

// Theme defines the colors of every widget category.
type Theme struct {
	// Dialog chrome
	Dialog       Pair
	DialogBorder Pair
	DialogTitle  Pair
	DialogShadow bool

	Button        Pair
	ButtonFocused Pair
	ButtonBracket Pair

	TextField          Pair
	TextFieldFocused   Pair
	TextFieldSelection Pair
	TextFieldCursor    Pair

	Label          Pair
	LabelHighlight Pair
	Separator      Pair

	List                Pair
	ListSelected        Pair
	ListFocusedSelected Pair

	ScrollbarTrack Pair
	ScrollbarThumb Pair

	Checkbox        Pair
	CheckboxFocused Pair
	CheckedRune     rune
	UncheckedRune   rune

	StatusBar Pair

	Menu          Pair
	MenuHighlight Pair
	MenuHotkey    screen.Color

	// Editor surfaces
	Editor            Pair
	EditorBorder      Pair
	EditorTitle       Pair
	EditorLineNumber  Pair
	EditorCurrentLine screen.Color
	EditorSelection   Pair

	Immediate       Pair
	ImmediateBorder Pair
}

// Preset names.
const (
	ClassicBlueName = "classic_blue"
	DialogName      = "dialog"
)

// ClassicBlue returns the blue-desktop, gray-dialog theme.
func ClassicBlue() Theme {
	return Theme{
		Dialog:       P(screen.Black, screen.LightGray),
		DialogBorder: P(screen.Black, screen.LightGray),
		DialogTitle:  P(screen.Black, screen.LightGray),
		DialogShadow: true,

		Button:        P(screen.Black, screen.LightGray),
		ButtonFocused: P(screen.White, screen.Black),
		ButtonBracket: P(screen.Black, screen.LightGray),

		TextField:          P(screen.Black, screen.White),
		TextFieldFocused:   P(screen.Black, screen.White),
		TextFieldSelection: P(screen.White, screen.Blue),
		TextFieldCursor:    P(screen.Black, screen.LightGray),

		Label:          P(screen.Black, screen.LightGray),
		LabelHighlight: P(screen.LightRed, screen.LightGray),
		Separator:      P(screen.Black, screen.LightGray),

		List:                P(screen.Black, screen.White),
		ListSelected:        P(screen.Black, screen.LightGray),
		ListFocusedSelected: P(screen.White, screen.Blue),

		ScrollbarTrack: P(screen.LightGray, screen.DarkGray),
		ScrollbarThumb: P(screen.White, screen.LightGray),

		Checkbox:        P(screen.Black, screen.LightGray),
		CheckboxFocused: P(screen.White, screen.Black),
		CheckedRune:     'X',
		UncheckedRune:   ' ',

		StatusBar: P(screen.White, screen.Cyan),

		Menu:          P(screen.Black, screen.LightGray),
		MenuHighlight: P(screen.White, screen.Black),
		MenuHotkey:    screen.LightRed,

		Editor:            P(screen.Yellow, screen.Blue),
		EditorBorder:      P(screen.LightGray, screen.Blue),
		EditorTitle:       P(screen.Blue, screen.LightGray),
		EditorLineNumber:  P(screen.LightGray, screen.Blue),
		EditorCurrentLine: screen.Blue,
		EditorSelection:   P(screen.Blue, screen.Yellow),

		Immediate:       P(screen.Yellow, screen.Blue),
		ImmediateBorder: P(screen.LightGray, screen.Blue),
	}
}

// Dialog returns ClassicBlue with the input widgets recolored for use
// inside gray dialog bodies.
func Dialog() Theme {
	t := ClassicBlue()

	t.TextField = P(screen.Black, screen.LightGray)
	t.TextFieldFocused = P(screen.Black, screen.Cyan)
	t.TextFieldSelection = P(screen.White, screen.Black)
	t.TextFieldCursor = P(screen.White, screen.Black)

	t.LabelHighlight = P(screen.White, screen.Black)

	t.List = P(screen.Black, screen.LightGray)
	t.ListSelected = P(screen.LightGray, screen.Black)
	t.ListFocusedSelected = P(screen.LightGray, screen.Black)

	t.ScrollbarTrack = P(screen.LightGray, screen.Blue)
	t.ScrollbarThumb = P(screen.Black, screen.Blue)
	return t
}

var presets = map[string]func() Theme{
	ClassicBlueName: ClassicBlue,
	DialogName:      Dialog,
}

// ByName returns a preset by name.
func ByName(name string) (Theme, error) {
	fn, ok := presets[name]
	if !ok {
		return Theme{}, errors.New(errors.ErrCodeConfigInvalid, "unknown theme").
			WithContext("theme", name)
	}
	return fn(), nil
}

// Names lists the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PairSpec is a color pair as written in configuration files. An empty
// field keeps the current color.
type PairSpec struct {
	FG string `yaml:"fg"`
	BG string `yaml:"bg"`
}

// pairs maps override keys to the pair they replace.
func (t *Theme) pairs() map[string]*Pair {
	return map[string]*Pair{
		"dialog":                &t.Dialog,
		"dialog_border":         &t.DialogBorder,
		"dialog_title":          &t.DialogTitle,
		"button":                &t.Button,
		"button_focused":        &t.ButtonFocused,
		"button_bracket":        &t.ButtonBracket,
		"text_field":            &t.TextField,
		"text_field_focused":    &t.TextFieldFocused,
		"text_field_selection":  &t.TextFieldSelection,
		"text_field_cursor":     &t.TextFieldCursor,
		"label":                 &t.Label,
		"label_highlight":       &t.LabelHighlight,
		"separator":             &t.Separator,
		"list":                  &t.List,
		"list_selected":         &t.ListSelected,
		"list_focused_selected": &t.ListFocusedSelected,
		"scrollbar_track":       &t.ScrollbarTrack,
		"scrollbar_thumb":       &t.ScrollbarThumb,
		"checkbox":              &t.Checkbox,
		"checkbox_focused":      &t.CheckboxFocused,
		"status_bar":            &t.StatusBar,
		"menu":                  &t.Menu,
		"menu_highlight":        &t.MenuHighlight,
		"editor":                &t.Editor,
		"editor_border":         &t.EditorBorder,
		"editor_title":          &t.EditorTitle,
		"editor_line_number":    &t.EditorLineNumber,
		"editor_selection":      &t.EditorSelection,
		"immediate":             &t.Immediate,
		"immediate_border":      &t.ImmediateBorder,
	}
}

// OverrideKeys lists the category names WithOverrides accepts.
func OverrideKeys() []string {
	var t Theme
	keys := make([]string, 0, 32)
	for k := range t.pairs() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WithOverrides returns a copy of t with the named pairs replaced. The
// receiver is left untouched. Unknown keys and unparseable colors fail the
// whole call.
func (t Theme) WithOverrides(overrides map[string]PairSpec) (Theme, error) {
	out := t
	targets := out.pairs()

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		spec := overrides[key]
		dst, ok := targets[key]
		if !ok {
			return t, errors.New(errors.ErrCodeConfigInvalid, "unknown theme color").
				WithContext("key", key)
		}
		p, err := spec.apply(*dst)
		if err != nil {
			return t, errors.Wrap(err, errors.ErrCodeConfigInvalid, fmt.Sprintf("theme color %s", key))
		}
		*dst = p
	}
	return out, nil
}

func (s PairSpec) apply(p Pair) (Pair, error) {
	if s.FG != "" {
		c, err := screen.ParseColor(s.FG)
		if err != nil {
			return p, err
		}
		p.FG = c
	}
	if s.BG != "" {
		c, err := screen.ParseColor(s.BG)
		if err != nil {
			return p, err
		}
		p.BG = c
	}
	return p, nil
}
