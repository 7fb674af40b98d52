// SPDX-License-Identifier: MIT
package pool

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPool_Go(t *testing.T) {
	p, err := New(2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer p.Release()

	f, err := Go(p, func() (int, error) { return 21 * 2, nil })
	if err != nil {
		t.Fatalf("Go() error = %v", err)
	}

	got, err := f.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if got != 42 {
		t.Errorf("Wait() = %d, want 42", got)
	}
}

func TestPool_GoPanic(t *testing.T) {
	p, err := New(1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer p.Release()

	f, err := Go(p, func() (int, error) { panic("boom") })
	if err != nil {
		t.Fatalf("Go() error = %v", err)
	}

	if _, err = f.Wait(context.Background()); !errors.Is(err, ErrPanicked) {
		t.Errorf("Wait() error = %v, want %v", err, ErrPanicked)
	}
}

func TestFuture_WaitCancelled(t *testing.T) {
	p, err := New(1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer p.Release()

	release := make(chan struct{})
	defer close(release)

	f, err := Go(p, func() (int, error) {
		<-release
		return 0, nil
	})
	if err != nil {
		t.Fatalf("Go() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err = f.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want %v", err, context.Canceled)
	}
}

func TestJoin2(t *testing.T) {
	p, err := New(2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer p.Release()

	fa, err := Go(p, func() (int, error) { return 1, nil })
	if err != nil {
		t.Fatalf("Go() error = %v", err)
	}
	fb, err := Go(p, func() (string, error) { return "b", nil })
	if err != nil {
		t.Fatalf("Go() error = %v", err)
	}

	a, b, err := Join2(context.Background(), fa, fb)
	if err != nil {
		t.Fatalf("Join2() error = %v", err)
	}
	if a != 1 || b != "b" {
		t.Errorf("Join2() = (%d, %q), want (1, %q)", a, b, "b")
	}
}

// TestJoin2_FastPath checks the already-resolved short circuit.
func TestJoin2_FastPath(t *testing.T) {
	fa, fb := Resolved(1), Resolved("b")

	if !fa.Done() || !fb.Done() {
		t.Fatal("Resolved futures report not done")
	}

	a, b, err := Join2(context.Background(), fa, fb)
	if err != nil {
		t.Fatalf("Join2() error = %v", err)
	}
	if a != 1 || b != "b" {
		t.Errorf("Join2() = (%d, %q), want (1, %q)", a, b, "b")
	}
}

func TestJoin3_CombinesErrors(t *testing.T) {
	p, err := New(3)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer p.Release()

	failureB := errors.New("b failed")
	failureC := errors.New("c failed")

	fa, err := Go(p, func() (int, error) { return 1, nil })
	if err != nil {
		t.Fatalf("Go() error = %v", err)
	}
	fb, err := Go(p, func() (int, error) { return 0, failureB })
	if err != nil {
		t.Fatalf("Go() error = %v", err)
	}
	fc, err := Go(p, func() (int, error) { return 0, failureC })
	if err != nil {
		t.Fatalf("Go() error = %v", err)
	}

	a, _, _, err := Join3(context.Background(), fa, fb, fc)
	if a != 1 {
		t.Errorf("Join3() first = %d, want 1", a)
	}
	if !errors.Is(err, failureC) {
		t.Errorf("Join3() error = %v, want wrapped %v", err, failureC)
	}
}

func TestPool_Bounds(t *testing.T) {
	p, err := New(2, WithNonblocking(true))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer p.Release()

	if got := p.Cap(); got != 2 {
		t.Errorf("Cap() = %d, want 2", got)
	}

	release := make(chan struct{})
	for i := 0; i < 2; i++ {
		if err = p.Submit(func() { <-release }); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
	}

	// Both workers busy; a nonblocking pool must reject further work.
	deadline := time.After(time.Second)
	for p.Running() < 2 {
		select {
		case <-deadline:
			t.Fatal("workers did not start")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	if err = p.Submit(func() {}); err == nil {
		t.Error("Submit() on a saturated nonblocking pool succeeded")
	}

	close(release)
}
