// Package timeline hosts markers on a horizontally scrolling ruler.
//
// A Ruler implements marker.Host: it maps samples to pixels through a Zoom,
// owns the groups markers and their extension lines live in, and gives every
// marker the label space its neighbours leave. Documents describe a ruler in
// YAML and are used by cmd/markerdemo.
package timeline
