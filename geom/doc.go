// Package geom provides the in-memory model of a regular-grid geometry
// description and its transforms.
//
// A Geom aggregates the microstructure field, physical size, origin,
// homogenization id and header comments. The grid resolution is never stored
// on its own: it is derived from the field's shape, so the two cannot drift
// apart. Accessors hand out copies; the model owns its buffers exclusively.
//
// Reading and writing the on-disk text format is handled by Read and Write,
// which compose the section (header) and encoding (body) packages. Crop
// extracts a sub-volume while preserving per-cell physical size.
//
// A Geom is not safe for concurrent mutation.
package geom
