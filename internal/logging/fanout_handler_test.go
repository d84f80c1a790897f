package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

type recordingHandler struct {
	extra  []slog.Attr
	counts *[]int
}

func (h recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h recordingHandler) Handle(_ context.Context, record slog.Record) error {
	record.AddAttrs(h.extra...)
	*h.counts = append(*h.counts, record.NumAttrs())
	return nil
}

func (h recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h recordingHandler) WithGroup(string) slog.Handler { return h }

func TestFanoutIsolatesRecordsBetweenHandlers(t *testing.T) {
	var counts []int
	first := recordingHandler{extra: []slog.Attr{slog.String("added", "x")}, counts: &counts}
	second := recordingHandler{counts: &counts}
	handler := newFanoutHandler(first, second)

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "document patched", 0)
	record.AddAttrs(slog.Int("scripts", 2))
	if err := handler.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(counts) != 2 || counts[0] != 2 || counts[1] != 1 {
		t.Fatalf("attr counts = %v, want [2 1]", counts)
	}
}
