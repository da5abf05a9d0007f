// Package export serializes taxonomy structures to their on-disk
// artifact formats.
//
// # JSON Artifacts
//
// Two JSON documents are produced, matching the shapes the viewer UI
// consumes:
//
//   - hierarchy: a nested tree `{"name": "Process Hierarchy",
//     "children": [...]}` where L1/L2 objects carry name, level and
//     children, and L3 objects carry name, level and the three detail
//     fields.
//   - search index: a flat array of `{"name", "level", "parent",
//     "details"}` objects where details is `{}` for L1/L2 entries and
//     `{"objective", "use_case", "it_release"}` for L3 entries.
//
// Field order follows the declared order of the wire structs and both
// documents use two-space indentation. Formatting is cosmetic; no
// invariant depends on it beyond human-diffability.
//
// # Graph Rendering
//
// [ToDOT] converts the hierarchy tree to Graphviz DOT and [RenderSVG]
// and [RenderPNG] rasterize it, for quick visual inspection of the
// taxonomy shape.
package export
