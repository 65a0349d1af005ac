// Package layout provides a headless host and auto-fitting text boxes
// that can be managed by a [unitext.Synchronizer].
//
// A [Box] fits its text to its own width and height during layout passes.
// The [Host] runs those passes, either when forced or once per [Host.Tick](),
// and runs the deferred tasks requested by synchronizers after each tick's
// layout pass. For Ebitengine games, [Game] ticks the host on every update.
//
// Layouts can also be described in YAML documents, see [ParseDocument]().
package layout
