package workpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestDoReturnsResult(t *testing.T) {
	p := New(2)
	defer p.Close()
	got, err := Do(context.Background(), p, func() (int, error) { return 42, nil })
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if got != 42 {
		t.Fatalf("got=%d", got)
	}
}

func TestDoPreservesError(t *testing.T) {
	p := New(1)
	defer p.Close()
	boom := errors.New("boom")
	_, err := Do(context.Background(), p, func() (string, error) { return "", boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestDoAfterClose(t *testing.T) {
	p := New(1)
	p.Close()
	_, err := Do(context.Background(), p, func() (int, error) { return 0, nil })
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	p := New(1)
	p.Close()
	p.Close()
}

func TestCloseWaitsForInflight(t *testing.T) {
	p := New(1)
	started := make(chan struct{})
	release := make(chan struct{})
	var done atomic.Bool
	go func() {
		_, _ = Do(context.Background(), p, func() (int, error) {
			close(started)
			<-release
			done.Store(true)
			return 0, nil
		})
	}()
	<-started
	go func() {
		time.Sleep(20 * time.Millisecond)
		close(release)
	}()
	p.Close()
	if !done.Load() {
		t.Fatalf("Close returned before in-flight task finished")
	}
}

func TestDoContextCancelAbandonsWait(t *testing.T) {
	p := New(1)
	defer p.Close()
	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_, _ = Do(context.Background(), p, func() (int, error) {
			close(started)
			<-release
			return 0, nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := Do(ctx, p, func() (int, error) { return 0, nil })
		errCh <- err
	}()
	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Do did not return after cancel")
	}
	close(release)
}

func TestTasksRunConcurrentlyUpToPoolSize(t *testing.T) {
	p := New(2)
	defer p.Close()
	var inflight, peak int32
	run := func() (int, error) {
		n := atomic.AddInt32(&inflight, 1)
		for {
			m := atomic.LoadInt32(&peak)
			if n <= m || atomic.CompareAndSwapInt32(&peak, m, n) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		atomic.AddInt32(&inflight, -1)
		return 0, nil
	}
	done := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, _ = Do(context.Background(), p, run)
			done <- struct{}{}
		}()
	}
	<-done
	<-done
	if got := atomic.LoadInt32(&peak); got != 2 {
		t.Fatalf("peak inflight=%d, want 2", got)
	}
}
