package uievent

import (
	"testing"

	"github.com/duplex-dev/duplex/pkg/duplex"
)

func TestToastConstructors(t *testing.T) {
	tests := []struct {
		name  string
		toast Toast
		level Level
	}{
		{"success", Success("saved"), LevelSuccess},
		{"error", Error("failed"), LevelError},
		{"warning", Warning("careful"), LevelWarning},
		{"info", Info("fyi"), LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.toast.Level != tt.level {
				t.Errorf("expected level %q, got %q", tt.level, tt.toast.Level)
			}
			if tt.toast.Message == "" {
				t.Error("expected message set")
			}
		})
	}
}

func TestWireNames(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Navigate{To: "/home"}, "duplex:navigate"},
		{Success("ok"), "duplex:toast"},
		{OpenDialog{ID: "confirm"}, "duplex:open_dialog"},
		{CloseDialog{ID: "confirm"}, "duplex:close_dialog"},
		{Custom{Name: "refresh"}, "duplex:custom"},
	}

	for _, tt := range tests {
		if got := WireName(tt.ev); got != tt.want {
			t.Errorf("WireName(%T) = %q, want %q", tt.ev, got, tt.want)
		}
	}
}

func TestToastDetail(t *testing.T) {
	plain := Success("saved").Detail()
	if plain["level"] != "success" || plain["message"] != "saved" {
		t.Errorf("unexpected detail %v", plain)
	}
	if _, ok := plain["title"]; ok {
		t.Error("expected no title key for untitled toast")
	}

	titled := WithTitle(LevelInfo, "Update", "New features available").Detail()
	if titled["title"] != "Update" {
		t.Errorf("expected title in detail, got %v", titled)
	}
}

func TestDispatchRouting(t *testing.T) {
	var navigated, toasted string

	h := Handlers{
		Navigate: func(n Navigate) { navigated = n.To },
		Toast:    func(to Toast) { toasted = to.Message },
	}

	Dispatch(Navigate{To: "/projects"}, h)
	Dispatch(Error("boom"), h)
	Dispatch(OpenDialog{ID: "x"}, h) // no handler: ignored

	if navigated != "/projects" {
		t.Errorf("expected navigate handler called, got %q", navigated)
	}
	if toasted != "boom" {
		t.Errorf("expected toast handler called, got %q", toasted)
	}
}

// TestEmitterIntegration uses Event as a duplex effect type with a filter,
// the way an effect-binding consumer would.
func TestEmitterIntegration(t *testing.T) {
	em := duplex.NewEmitter[int, Event](0)

	var toasts []Toast
	em.SubscribeEffects(func(ev Event) {
		Dispatch(ev, Handlers{Toast: func(to Toast) { toasts = append(toasts, to) }})
	}, duplex.WithFilter(func(ev Event) bool { return ev.Kind() == KindToast }))

	em.EmitEffect(Navigate{To: "/elsewhere"})
	em.EmitEffect(Success("done"))

	if len(toasts) != 1 || toasts[0].Message != "done" {
		t.Errorf("expected only the toast effect, got %v", toasts)
	}
}
