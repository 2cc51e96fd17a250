// Package section implements the header section of the geometry text format.
//
// A geometry file opens with a marker line declaring how many header lines
// follow, then that many lines of metadata, then the body:
//
//	4 header
//	grid   a 2 b 2 c 2
//	size   x 1.0 y 1.0 z 1.0
//	origin x 0.0 y 0.0 z 0.0
//	homogenization 1
//	...body...
//
// The marker's keyword must start with "head" (case-insensitive) and the
// declared count must be at least 3. Within the header, the grid, size,
// origin and homogenization lines are recognized by their first token in any
// order and at any position; every other line is preserved as a comment in
// file order. On encode the canonical order is fixed (comments first, then
// grid, size, origin, homogenization) and the declared count is always
// len(comments)+4.
package section
