package unitext

import "fmt"
import "strconv"

// Widgets are the text elements managed by a [Synchronizer].
//
// A widget auto-fits its font size to its own box and content, but
// only within the [lower, upper] bounds given to it. Setting bounds
// must not make the widget re-fit right away; the result is expected
// to be updated during the next layout pass of the [Host]. Until that
// happens, GetFittedSize() may return stale data.
type Widget interface {
	GetLowerBound() int
	SetLowerBound(int)
	GetUpperBound() int
	SetUpperBound(int)

	// Returns the font size chosen during the most recent layout
	// pass. Only valid after a layout pass following the latest
	// bound changes.
	GetFittedSize() int
}

// Widgets can optionally implement Named to make diagnostics more
// readable. See [WidgetName]().
type Named interface {
	Name() string
}

// Returns the name of the widget if it implements [Named], or a
// generic description based on its type otherwise.
func WidgetName(widget Widget) string {
	if widget == nil { return "<nil>" }
	named, isNamed := widget.(Named)
	if isNamed {
		name := named.Name()
		if name != "" { return name }
	}
	return fmt.Sprintf("%T", widget)
}

// Sets both bounds of the widget while making sure that lower <= upper
// holds after each individual write. Values that are already in place
// are not written again, as writes may invalidate the widget's layout.
//
// Preconditions: lower <= upper.
func setBounds(widget Widget, lower, upper int) {
	if lower > upper {
		panic("invalid bounds [" + strconv.Itoa(lower) + ", " + strconv.Itoa(upper) + "]")
	}

	if lower > widget.GetUpperBound() {
		if widget.GetUpperBound() != upper { widget.SetUpperBound(upper) }
		if widget.GetLowerBound() != lower { widget.SetLowerBound(lower) }
	} else {
		if widget.GetLowerBound() != lower { widget.SetLowerBound(lower) }
		if widget.GetUpperBound() != upper { widget.SetUpperBound(upper) }
	}
}
