package model

import "testing"

func TestOption(t *testing.T) {
	t.Parallel()

	t.Run("Some holds a value", func(t *testing.T) {
		t.Parallel()

		o := Some(1.5)
		if !o.IsSome() {
			t.Error("expected IsSome to be true")
		}
		v, ok := o.Value()
		if !ok || v != 1.5 {
			t.Errorf("expected (1.5, true), got (%v, %v)", v, ok)
		}
		if o.Or(9) != 1.5 {
			t.Errorf("expected Or to return wrapped value, got %v", o.Or(9))
		}
	})

	t.Run("None is absent, not zero", func(t *testing.T) {
		t.Parallel()

		o := None[float64]()
		if o.IsSome() {
			t.Error("expected IsSome to be false")
		}
		if _, ok := o.Value(); ok {
			t.Error("expected Value to report absence")
		}
		if o.Or(9) != 9 {
			t.Errorf("expected Or to return default, got %v", o.Or(9))
		}
	})

	t.Run("Zero value is distinguishable from absent", func(t *testing.T) {
		t.Parallel()

		if Some(0.0) == None[float64]() {
			t.Error("expected Some(0) to differ from None")
		}
	})
}
