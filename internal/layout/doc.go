// Package layout holds the geometry primitives and the line packing rule
// shared by the lspace layout engine.
//
// Coordinates are float64 device units. [Rect] is a position and size,
// [Edges] are per-side insets, and [PackLines] implements the greedy wrap
// used by both text runs and flowed children.
package layout
