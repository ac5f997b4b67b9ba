// Package lspace lays out and draws declarative presentation trees.
//
// A presentation is an immutable tree of Text, Border, Column, Row and Flow
// nodes. Layout turns a tree into Geometry for an available width, and Draw
// paints that geometry onto a Surface. An Area ties one tree to a host's
// size and repaint events.
//
// Users import this single package for the complete public API: node
// construction, measurement, layout, drawing and the Area controller.
package lspace
