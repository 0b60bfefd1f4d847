package uievent

// Handlers holds one callback per event variant. Nil callbacks ignore their
// variant.
type Handlers struct {
	Navigate    func(Navigate)
	Toast       func(Toast)
	OpenDialog  func(OpenDialog)
	CloseDialog func(CloseDialog)
	Custom      func(Custom)
}

// Dispatch routes ev to the matching handler. The switch is exhaustive over
// the sealed variant set, so there is no fallthrough case.
func Dispatch(ev Event, h Handlers) {
	switch e := ev.(type) {
	case Navigate:
		if h.Navigate != nil {
			h.Navigate(e)
		}
	case Toast:
		if h.Toast != nil {
			h.Toast(e)
		}
	case OpenDialog:
		if h.OpenDialog != nil {
			h.OpenDialog(e)
		}
	case CloseDialog:
		if h.CloseDialog != nil {
			h.CloseDialog(e)
		}
	case Custom:
		if h.Custom != nil {
			h.Custom(e)
		}
	}
}
