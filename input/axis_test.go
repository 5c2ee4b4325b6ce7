package input

import (
	"errors"
	"testing"
)

func TestParseAxis(t *testing.T) {
	for _, a := range Axes() {
		got, err := ParseAxis(a.String())
		if err != nil || got != a {
			t.Fatalf("ParseAxis(%q) = %v, %v", a.String(), got, err)
		}
	}
	if got, err := ParseAxis(" Yaw "); err != nil || got != AxisYaw {
		t.Fatalf("expected case-insensitive match, got %v, %v", got, err)
	}
	if _, err := ParseAxis("roll"); !errors.Is(err, ErrUnknownAxis) {
		t.Fatalf("expected ErrUnknownAxis, got %v", err)
	}
}

func TestValues(t *testing.T) {
	var v Values
	if !v.IsZero() {
		t.Fatalf("zero values should report IsZero")
	}
	v.Set(AxisPitch, 0.5)
	v.Set(Axis(-1), 3)
	if v.Get(AxisPitch) != 0.5 || v.IsZero() {
		t.Fatalf("unexpected values %v", v)
	}
	if v.Get(Axis(99)) != 0 {
		t.Fatalf("invalid axis should read 0")
	}
}

func TestBindingsBuilder(t *testing.T) {
	b := DefaultBindings()
	if b.Len() != 12 {
		t.Fatalf("expected 12 default sources, got %d", b.Len())
	}

	srcs := b.Sources(AxisLongitudinal)
	if len(srcs) != 3 {
		t.Fatalf("expected 3 longitudinal sources, got %d", len(srcs))
	}
	if _, ok := srcs[0].(GamepadAxisSource); !ok {
		t.Fatalf("stick must be registered first, got %s", srcs[0])
	}

	srcs[0] = nil
	if b.Sources(AxisLongitudinal)[0] == nil {
		t.Fatalf("Sources must return a copy")
	}

	b.Axis(AxisYaw).Add(nil)
	if len(b.Sources(AxisYaw)) != 2 {
		t.Fatalf("nil source must be ignored")
	}
}
