// Package canvas provides the retained scene graph that timeline markers
// render into.
//
// # Overview
//
// A canvas is a tree of items rooted at a Group with no parent. Each item has
// a position relative to its parent, a visibility flag, a z-order given by its
// index among its siblings, arbitrary keyed data, and an event signal.
// Concrete items are:
//   - Group: a container whose children move with it
//   - Polygon: a filled and/or outlined closed shape
//   - Rectangle: an axis-aligned box with per-edge outline control
//   - Line: a straight stroked segment
//   - Text: a single line of text with an optional clamp width
//
// # Coordinate System
//
// Coordinates follow the usual 2D graphics convention:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Geometry set on an item is expressed in the item's own coordinate space.
// An item's space maps to canvas space by adding its CanvasOrigin, which is
// the sum of its own position and the positions of all its ancestors.
//
// # Ownership
//
// Items are exclusively owned by whoever created them. Destroying a Group
// destroys its children. Items are never shared between parents.
//
// Rendering is not part of this package; see canvas/raster.
package canvas
