package uievent

// Kind identifies an event variant on the wire.
type Kind string

const (
	KindNavigate    Kind = "navigate"
	KindToast       Kind = "toast"
	KindOpenDialog  Kind = "open_dialog"
	KindCloseDialog Kind = "close_dialog"
	KindCustom      Kind = "custom"
)

// wirePrefix namespaces event names dispatched to clients.
const wirePrefix = "duplex:"

// Event is the sealed interface implemented by every UI effect variant in
// this package. The unexported marker keeps the set closed.
type Event interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Detail returns the CustomEvent payload for wire transports.
	Detail() map[string]any

	isUIEvent()
}

// WireName returns the client-side event name for an event,
// e.g. "duplex:toast".
func WireName(ev Event) string {
	return wirePrefix + string(ev.Kind())
}

// Navigate asks the client to move to another route.
type Navigate struct {
	// To is the target route or URL.
	To string

	// Replace replaces the current history entry instead of pushing.
	Replace bool
}

func (Navigate) Kind() Kind { return KindNavigate }
func (Navigate) isUIEvent() {}

func (n Navigate) Detail() map[string]any {
	return map[string]any{
		"to":      n.To,
		"replace": n.Replace,
	}
}

// Level is the severity of a Toast.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Toast is a transient feedback notification.
type Toast struct {
	Level   Level
	Title   string
	Message string

	// ActionLabel and ActionID describe an optional action button.
	ActionLabel string
	ActionID    string
}

func (Toast) Kind() Kind { return KindToast }
func (Toast) isUIEvent() {}

func (t Toast) Detail() map[string]any {
	detail := map[string]any{
		"level":   string(t.Level),
		"message": t.Message,
	}
	if t.Title != "" {
		detail["title"] = t.Title
	}
	if t.ActionLabel != "" {
		detail["actionLabel"] = t.ActionLabel
		detail["actionID"] = t.ActionID
	}
	return detail
}

// Success creates a success toast.
//
//	em.EmitEffect(uievent.Success("Changes saved!"))
func Success(message string) Toast {
	return Toast{Level: LevelSuccess, Message: message}
}

// Error creates an error toast.
func Error(message string) Toast {
	return Toast{Level: LevelError, Message: message}
}

// Warning creates a warning toast.
func Warning(message string) Toast {
	return Toast{Level: LevelWarning, Message: message}
}

// Info creates an info toast.
func Info(message string) Toast {
	return Toast{Level: LevelInfo, Message: message}
}

// WithTitle creates a toast with a title line.
//
//	uievent.WithTitle(uievent.LevelSuccess, "Settings", "Your changes have been saved.")
func WithTitle(level Level, title, message string) Toast {
	return Toast{Level: level, Title: title, Message: message}
}

// OpenDialog asks the client to open a named dialog.
type OpenDialog struct {
	// ID identifies the dialog to open.
	ID string

	// Params are passed through to the dialog implementation.
	Params map[string]any
}

func (OpenDialog) Kind() Kind { return KindOpenDialog }
func (OpenDialog) isUIEvent() {}

func (d OpenDialog) Detail() map[string]any {
	detail := map[string]any{"id": d.ID}
	if len(d.Params) > 0 {
		detail["params"] = d.Params
	}
	return detail
}

// CloseDialog asks the client to close a named dialog.
type CloseDialog struct {
	ID string
}

func (CloseDialog) Kind() Kind { return KindCloseDialog }
func (CloseDialog) isUIEvent() {}

func (d CloseDialog) Detail() map[string]any {
	return map[string]any{"id": d.ID}
}

// Custom carries application-defined payloads for effects outside the
// built-in set. The name travels in the detail; the wire event name stays
// "duplex:custom".
type Custom struct {
	Name string
	Data map[string]any
}

func (Custom) Kind() Kind { return KindCustom }
func (Custom) isUIEvent() {}

func (c Custom) Detail() map[string]any {
	detail := map[string]any{"name": c.Name}
	if len(c.Data) > 0 {
		detail["data"] = c.Data
	}
	return detail
}
