package subsystem

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

type fakeEngine struct{ name string }

func TestRequireBeforeCreate(t *testing.T) {
	tests := []struct {
		kind    Kind
		engine  string
		manager string
	}{
		{Render, "RenderEngine", "DisplayManager"},
		{Logic, "LogicEngine", "GameManager"},
		{Input, "InputEngine", "InputManager"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			h := NewHandle[*fakeEngine](tt.kind)
			got, err := h.Require()
			if got != nil {
				t.Errorf("Require() engine = %v, want nil", got)
			}
			var nce *NotCreatedError
			if !errors.As(err, &nce) {
				t.Fatalf("Require() error = %v, want *NotCreatedError", err)
			}
			if nce.Kind != tt.kind {
				t.Errorf("NotCreatedError.Kind = %v, want %v", nce.Kind, tt.kind)
			}
			msg := err.Error()
			for _, want := range []string{tt.engine, tt.manager} {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q does not contain %q", msg, want)
				}
			}
			if !errors.Is(err, ErrNotCreated) {
				t.Errorf("errors.Is(err, ErrNotCreated) = false, want true")
			}
		})
	}
}

func TestRenderNotCreatedMessage(t *testing.T) {
	_, err := NewHandle[*fakeEngine](Render).Require()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "RenderEngine") || !strings.Contains(msg, "DisplayManager") {
		t.Errorf("message = %q, want RenderEngine and DisplayManager", msg)
	}
}

func TestNotCreatedErrorIsKindSpecific(t *testing.T) {
	err := &NotCreatedError{Kind: Logic}
	if !errors.Is(err, &NotCreatedError{Kind: Logic}) {
		t.Error("Logic error should match Logic target")
	}
	if errors.Is(err, &NotCreatedError{Kind: Input}) {
		t.Error("Logic error should not match Input target")
	}
}

func TestMessagesAreDistinct(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range Kinds() {
		msg := (&NotCreatedError{Kind: k}).Error()
		if prev, ok := seen[msg]; ok {
			t.Errorf("kinds %v and %v share message %q", prev, k, msg)
		}
		seen[msg] = k
	}
}

func TestKindsIsACopy(t *testing.T) {
	ks := Kinds()
	ks[0] = Kind(99)
	if got := Kinds(); len(got) != 3 || got[0] != Render || got[1] != Logic || got[2] != Input {
		t.Errorf("Kinds() = %v after caller mutation, want [Render Logic Input]", got)
	}
}

func TestRequireAfterCreate(t *testing.T) {
	for _, k := range Kinds() {
		h := NewHandle[*fakeEngine](k)
		e := &fakeEngine{name: k.String()}
		if !h.Create(e) {
			t.Fatalf("%v: first Create() = false, want true", k)
		}
		if !h.Created() {
			t.Errorf("%v: Created() = false after Create", k)
		}
		for i := 0; i < 3; i++ {
			got, err := Require(h)
			if err != nil {
				t.Fatalf("%v: Require() error = %v", k, err)
			}
			if got != e {
				t.Errorf("%v: Require() = %p, want %p", k, got, e)
			}
		}
	}
}

func TestCreateOnce(t *testing.T) {
	h := NewHandle[*fakeEngine](Input)
	first := &fakeEngine{name: "first"}
	h.Create(first)
	if h.Create(&fakeEngine{name: "second"}) {
		t.Error("second Create() = true, want false")
	}
	got, _ := h.Require()
	if got != first {
		t.Errorf("Require() = %q, want first", got.name)
	}
}

func TestConcurrentCreateAndRequire(t *testing.T) {
	h := NewHandle[*fakeEngine](Render)
	var wg sync.WaitGroup
	var wins sync.Map
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if h.Create(&fakeEngine{}) {
				wins.Store(i, true)
			}
		}(i)
		go func() {
			defer wg.Done()
			if e, err := h.Require(); err == nil && e == nil {
				t.Error("Require() returned nil engine without error")
			}
		}()
	}
	wg.Wait()
	n := 0
	wins.Range(func(_, _ any) bool { n++; return true })
	if n != 1 {
		t.Errorf("Create succeeded %d times, want 1", n)
	}
}

func TestKindNames(t *testing.T) {
	if got := Logic.Manager(); got != "GameManager" {
		t.Errorf("Logic.Manager() = %q, want GameManager", got)
	}
	if got := Input.Engine(); got != "InputEngine" {
		t.Errorf("Input.Engine() = %q, want InputEngine", got)
	}
	if got := Kind(9).String(); got != "Unknown" {
		t.Errorf("Kind(9).String() = %q, want Unknown", got)
	}
}
