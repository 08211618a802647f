// Package searching generates probe traces for linear and binary search.
//
// Each record carries the (unchanging) array, the probed position, whether it matched
// and, for binary search, the live left/right/mid window. Binary search requires sorted
// input; the generator does not sort or validate it.
package searching
