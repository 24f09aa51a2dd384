package native

import (
	"errors"
	"testing"
)

func TestDispatchLog(t *testing.T) {
	t.Cleanup(func() { hooks.Store(nil) })

	var got []string
	rec := func(prefix string) func(string) {
		return func(s string) { got = append(got, prefix+s) }
	}
	setHooks(rec("I:"), rec("W:"), rec("E:"))

	dispatchLog(LogInfo, "a")
	dispatchLog(LogWarn, "b")
	dispatchLog(LogError, "c")

	want := []string{"I:a", "W:b", "E:c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDispatchLogNilHooks(t *testing.T) {
	t.Cleanup(func() { hooks.Store(nil) })

	hooks.Store(nil)
	dispatchLog(LogInfo, "dropped")

	setHooks(nil, nil, nil)
	dispatchLog(LogError, "dropped")
}

func TestNewCreateDevice(t *testing.T) {
	api := New()
	if Linked() {
		t.Skip("native library linked")
	}
	d, err := api.CreateDevice(nil, false)
	if !errors.Is(err, ErrNotLinked) {
		t.Fatalf("CreateDevice error = %v, want ErrNotLinked", err)
	}
	if d != nil {
		t.Errorf("CreateDevice returned a handle without a library")
	}
	if v := api.LinkedVersion(); v != 0 {
		t.Errorf("LinkedVersion = %d, want 0", v)
	}
}
