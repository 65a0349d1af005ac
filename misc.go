package unitext

import "golang.org/x/exp/constraints"

// Helper functions shared by the synchronizer and scheduler code.

func clamp[T constraints.Integer](value, lower, upper T) T {
	if value < lower { return lower }
	if value > upper { return upper }
	return value
}

func containsWidget(widgets []Widget, widget Widget) bool {
	return indexOfWidget(widgets, widget) != -1
}

// Widgets are compared by interface equality, which for the usual
// pointer-based widgets means identity.
func indexOfWidget(widgets []Widget, widget Widget) int {
	for i, candidate := range widgets {
		if candidate == widget { return i }
	}
	return -1
}
