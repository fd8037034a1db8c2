package bounce3d

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunHeadlessTickBudget(t *testing.T) {
	w := newTestWorld()
	w.Spawn()
	r := &recordingRenderer{}

	err := RunHeadless(context.Background(), w, HeadlessConfig{
		Hz:       1000,
		Ticks:    5,
		Renderer: r,
		Stats:    NewFrameStats(time.Hour),
	})
	if err != nil {
		t.Fatalf("RunHeadless() error = %v", err)
	}
	if w.Ticks() != 5 || len(r.frames) != 5 {
		t.Errorf("%d ticks and %d frames, want 5", w.Ticks(), len(r.frames))
	}
}

func TestRunHeadlessCancelled(t *testing.T) {
	w := newTestWorld()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunHeadless(ctx, w, HeadlessConfig{Hz: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RunHeadless() error = %v, want %v", err, context.Canceled)
	}
}

func TestRunHeadlessRendererError(t *testing.T) {
	w := newTestWorld()
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), w, HeadlessConfig{
		Hz:       1000,
		Renderer: &recordingRenderer{err: boom},
	})
	if !errors.Is(err, boom) {
		t.Errorf("RunHeadless() error = %v, want %v", err, boom)
	}
	if w.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", w.Ticks())
	}
}

func TestRunHeadlessInvalidHz(t *testing.T) {
	if err := RunHeadless(context.Background(), newTestWorld(), HeadlessConfig{Hz: -1}); err == nil {
		t.Error("RunHeadless() with negative hz succeeded")
	}
}
