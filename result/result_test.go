package result

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestResult(t *testing.T) {

	t.Run("OK holds a value and no error", func(t *testing.T) {
		r := OK(117)
		if r.Failed() {
			t.Fatal("should not have failed")
		}
		if r.Value() != 117 {
			t.Fatal("unexpected value", r.Value())
		}
		if r.Error() != nil {
			t.Fatal("unexpected error", r.Error())
		}
	})

	t.Run("Fail holds an error and the zero value", func(t *testing.T) {
		expected := errors.New("mocked error")
		r := Fail[int](expected)
		if !r.Failed() {
			t.Fatal("should have failed")
		}
		if r.Value() != 0 {
			t.Fatal("unexpected value", r.Value())
		}
		if !errors.Is(r.Error(), expected) {
			t.Fatal("unexpected error", r.Error())
		}
	})

	t.Run("Unpack matches the Go return convention", func(t *testing.T) {
		value, err := OK("antani").Unpack()
		if err != nil {
			t.Fatal(err)
		}
		if value != "antani" {
			t.Fatal("unexpected value", value)
		}
	})

	t.Run("PropagateTo invokes exactly one callback", func(t *testing.T) {
		var fulfilled, rejected int
		OK(1).PropagateTo(
			func(int) { fulfilled++ },
			func(error) { rejected++ },
		)
		Fail[int](errors.New("mocked error")).PropagateTo(
			func(int) { fulfilled++ },
			func(error) { rejected++ },
		)
		if fulfilled != 1 || rejected != 1 {
			t.Fatal("unexpected callback counts", fulfilled, rejected)
		}
	})
}

func TestFuture(t *testing.T) {

	t.Run("Await returns the resolved value", func(t *testing.T) {
		f := Start(func() (int, error) {
			return 12345, nil
		})
		value, err := f.Await(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if value != 12345 {
			t.Fatal("unexpected value", value)
		}
	})

	t.Run("Await returns the resolved error", func(t *testing.T) {
		expected := errors.New("mocked error")
		f := Start(func() (int, error) {
			return 0, expected
		})
		if _, err := f.Await(context.Background()); !errors.Is(err, expected) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("Await honors the context", func(t *testing.T) {
		blocked := make(chan struct{})
		defer close(blocked)
		f := Start(func() (int, error) {
			<-blocked
			return 0, nil
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := f.Await(ctx); !errors.Is(err, context.Canceled) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("Result blocks until resolution", func(t *testing.T) {
		f := Start(func() (string, error) {
			time.Sleep(time.Millisecond)
			return "antani", nil
		})
		if r := f.Result(); r.Failed() || r.Value() != "antani" {
			t.Fatal("unexpected result")
		}
	})

	t.Run("Then invokes exactly one callback", func(t *testing.T) {
		fulfilled := make(chan int, 1)
		f := Start(func() (int, error) {
			return 7, nil
		})
		f.Then(
			func(value int) { fulfilled <- value },
			func(err error) { t.Error("unexpected rejection", err) },
		)
		select {
		case value := <-fulfilled:
			if value != 7 {
				t.Fatal("unexpected value", value)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for fulfillment")
		}
	})
}
