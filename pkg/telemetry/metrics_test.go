package telemetry

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/widget"
)

func TestMetrics_ObserveFlush(t *testing.T) {
	m := NewMetrics()
	m.ObserveFlush(screen.FlushStats{CellsWritten: 10, CursorMoves: 2, ColorChanges: 3, Duration: time.Millisecond})
	m.ObserveFlush(screen.FlushStats{CellsWritten: 1, Sixel: true})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Flushes.WithLabelValues("diff")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Flushes.WithLabelValues("sixel")))
	assert.Equal(t, 11.0, testutil.ToFloat64(m.CellsWritten))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CursorMoves))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ColorChanges))
}

func TestMetrics_ObserveDispatch(t *testing.T) {
	m := NewMetrics()
	m.ObserveDispatch(input.Enter, widget.Action("ok"))
	m.ObserveDispatch(input.Enter, widget.Consumed)
	m.ObserveDispatch(input.Char, widget.Ignored)

	enter := input.Enter.String()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Dispatches.WithLabelValues(enter, "action")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Dispatches.WithLabelValues(enter, "consumed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Dispatches.WithLabelValues(input.Char.String(), "ignored")))
}

func TestMetrics_Dialogs(t *testing.T) {
	m := NewMetrics()
	m.DialogOpened("find")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActiveDialogs))
	m.DialogClosed("find", "dismissed")
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ActiveDialogs))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Dialogs.WithLabelValues("find", "dismissed")))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveFlush(screen.FlushStats{CellsWritten: 4})

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "textmode_screen_cells_written_total 4")
}

func TestTracerProvider_ExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	tp, err := NewTracerProvider(&buf, "textmode-test", "dev")
	require.NoError(t, err)

	_, span := StartSpan(context.Background(), "frame")
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))

	assert.True(t, strings.Contains(buf.String(), `"Name":"frame"`), buf.String())
}
