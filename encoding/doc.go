// Package encoding implements the body section of the geometry text format:
// the flattened microstructure field with its compact run-length notation.
//
// The body carries exactly grid[0]*grid[1]*grid[2] scalars in column-major
// order (axis 0 varies fastest). A line of exactly three tokens may use one
// of two compact forms:
//
//	3 of 7    expands to 7 7 7
//	2 to 5    expands to 2 3 4 5
//
// "A to B" always emits abs(B-A)+1 values stepping from A toward B, so
// "5 to 2" expands to 5 4 3 2. Any other line is a run of plain scalars.
package encoding
