// unitext is a package to keep the font size of a group of auto-fitting
// text boxes consistent. Each box can compute its own "natural" fit size
// for its content, but if you put a few of them side by side (buttons,
// menu entries, table headers...) they end up with a different size each,
// and that looks terrible. unitext picks the largest size that still lets
// the most constrained box fit, and makes every box use it.
//
// The main type is the [Synchronizer]:
//   sync, err := unitext.NewSynchronizer(host, unitext.Config{
//      MinSize: 8, MaxSize: 72,
//   }, boxA, boxB, boxC)
//   if err != nil { ... }
//
// After that, whenever the content of a box changes, you ask for a
// recalculation. You have two options:
//  - [Synchronizer.RecalculateBestFit](), which defers the work to the
//    next tick of the host and piggybacks on the layout pass the host
//    was going to do anyway. Cheap, but with one tick of latency.
//  - [Synchronizer.RecalculateImmediately](), which forces a layout pass
//    right away. No latency, but expensive.
//
// The synchronizer doesn't measure text on its own. It only reads and
// writes size bounds through the [Widget] interface and relies on a
// [Host] to run layout passes and schedule deferred work. The layout
// subpackage provides a ready to use host and text boxes based on etxt,
// but you can plug your own UI elements as long as they satisfy the
// interfaces.
package unitext
