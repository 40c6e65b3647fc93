// Package render draws a positioned graph as text for terminals.
//
// Draw rasterises onto a Canvas: edges as Bresenham lines of box-drawing
// runes, optional weight annotations, highlighted edges (for a shortest path or
// an MST) as '*', and nodes as '●' followed by their label. Coordinates come
// from a layout.Layout or from the positions stored on the nodes; the bounding
// box is fitted to the canvas with a one-cell margin.
//
// Render adds colour with lipgloss, resolving node and edge colour names
// through a Palette. WithPlain(true) yields unstyled text for pipes and tests.
package render
