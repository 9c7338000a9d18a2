// Package sweep enumerates the benchmark parameter space and drives
// one worker invocation per combination.
package sweep

// Structure identifies a benchmarked data structure.
type Structure string

const (
	ConcurrentSkipList Structure = "ConcurrentSkipList"
	BloomFilter        Structure = "BloomFilter"
	CuckooFilter       Structure = "CuckooFilter"
)

// Structures returns the benchmarked structures in declared order.
func Structures() []Structure {
	return []Structure{ConcurrentSkipList, BloomFilter, CuckooFilter}
}

// Operation identifies a benchmarked operation.
type Operation string

const (
	Insert Operation = "insert"
	Search Operation = "search"
	Delete Operation = "delete"
)

// Operations returns the benchmarked operations in declared order.
func Operations() []Operation {
	return []Operation{Insert, Search, Delete}
}

// Supports reports whether the structure can run the operation.
// Bloom filters have no element removal, so delete is never run
// against them.
func (s Structure) Supports(op Operation) bool {
	return s != BloomFilter || op != Delete
}

// Point is one (querySize, operation, structure) combination to
// benchmark.
type Point struct {
	QuerySize int
	Operation Operation
	Structure Structure
}

const (
	minQuerySize  = 1_000_000
	maxQuerySize  = 2_000_000
	querySizeStep = 100_000
)

// Points returns every sweep combination in enumeration order:
// querySize ascending over [1,000,000 .. 2,000,000] in steps of
// 100,000, then structure in declared order, then operation in
// declared order. Unsupported combinations are skipped.
func Points() []Point {
	var points []Point

	for size := minQuerySize; size <= maxQuerySize; size += querySizeStep {
		for _, structure := range Structures() {
			for _, op := range Operations() {
				if !structure.Supports(op) {
					continue
				}

				points = append(points, Point{
					QuerySize: size,
					Operation: op,
					Structure: structure,
				})
			}
		}
	}

	return points
}
