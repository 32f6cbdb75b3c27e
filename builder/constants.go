// SPDX-License-Identifier: MIT

package builder

// Constructor names used as error prefixes.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
)

// Minimum sizes.
const (
	// MinCycleNodes allows the one-vertex cycle, a self-loop.
	MinCycleNodes = 1
	// MinPathNodes is the smallest path with an edge.
	MinPathNodes = 2
	// MinStarNodes is a hub plus one leaf.
	MinStarNodes = 2
	// MinWheelNodes is a hub plus a three-vertex rim.
	MinWheelNodes = 4
	// MinGridDim applies to rows and cols separately.
	MinGridDim = 1
	// MinPartition applies to each side of a bipartite graph.
	MinPartition = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// SymbolIDCount is the number of names SymbolIDFn can produce.
const SymbolIDCount = 26

// CenterVertex is the hub index of Star and Wheel.
const CenterVertex = 0
