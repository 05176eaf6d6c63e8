// Package dock implements the docking workspace core: the recursive
// node tree describing how panels are arranged, the registry that
// rebuilds live panels from persisted keys, the versioned layout
// snapshot and its on-disk store, the debounced save scheduler, and
// the startup version-migration flow.
//
// Allowed here:
// - tree model, snapshot/load mapping, persistence, save scheduling
// - panel identity resolution through the registry
//
// Not allowed here:
// - concrete panel content, theming, key handling, screen rendering
package dock
