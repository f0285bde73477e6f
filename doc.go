// Package hdoc renders pre-parsed help-document trees into formatted,
// navigable output for an interactive display surface.
//
// A document tree arrives whole from an external parser as tagged
// nodes (sections, prose, method groups, lists, code blocks, links).
// The renderer walks it once, threading mutable layout state (list
// numbering, blank-line coalescing, the document's subject class) and
// consulting a symbol Oracle for supplementary facts such as method
// argument lists and cross-document titles. Output goes exclusively
// through the Sink contract: text runs, blank-line boundaries,
// hyperlinks, buttons, addressable code blocks and (optionally)
// inline images.
//
// Core properties:
//   - Closed tag vocabulary with an exhaustive rule registry
//   - No failure is fatal: unknown tags render in raw form, malformed
//     subtrees are skipped, oracle misses degrade silently
//   - One render, one state: concurrent topics use separate Renderers
//
// Example:
//
//	source := hdoc.DirSource{Dir: "help"}
//	topic, err := source.OpenTopic("Array")
//	if err != nil {
//		log.Fatal(err)
//	}
//	sink := hdoc.NewANSISink(os.Stdout, hdoc.DefaultTheme())
//	r := hdoc.NewRenderer(sink, hdoc.WithWidth(80))
//	if err := r.RenderTopic(topic); err != nil {
//		log.Fatal(err)
//	}
//
// The symdb subpackage provides a SQLite-backed Oracle over a symbol
// index database.
package hdoc
