package main

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-address-selector/mocks"
)

func TestRunJanitor_SweepsUntilCanceled(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockSelectionService(t)
	swept := make(chan struct{}, 1)
	svc.EXPECT().SweepSessions(mock.Anything).RunAndReturn(func(time.Time) int {
		select {
		case swept <- struct{}{}:
		default:
		}
		return 1
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		runJanitor(ctx, svc, 5*time.Millisecond, slog.New(slog.DiscardHandler))
	}()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor never swept")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}

func TestRunJanitor_NonPositiveIntervalReturns(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockSelectionService(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		runJanitor(context.Background(), svc, 0, slog.New(slog.DiscardHandler))
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor with zero interval did not return")
	}
}
