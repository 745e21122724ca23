// Package chooser implements the data chooser core: the grouped channel tree
// built from each source's channel listing, multi-selection with a channel
// limit, nearest-channel lookup with highlight-on-select, and the per-source
// listing state machine.
//
// The tree is a plain value mutated from a single update path. In the TUI that
// path is the bubbletea Update loop; headless callers use Loop. Channel
// listings run as background FetchTasks whose ListingResult is handed back to
// the update path and applied with Chooser.ApplyListing.
//
// Tree layout:
//
//	Root                     depth 1, path []
//	└── Server (source)      depth 2, path [s]
//	    ├── Group "All"      depth 3, path [s 0]
//	    │   └── Channel      depth 4, path [s 0 c]
//	    └── Group <name>     depth 3, path [s g]
//	        └── Channel      depth 4, path [s g c]
//
// An unopened or broken source holds a single Message child instead of groups.
package chooser
