package builder

// Method tokens used as error prefixes.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
	MethodGrid              = "Grid"
)

// CenterVertexID is the fixed hub label of Star and Wheel.
const CenterVertexID = "Center"

// Minimum sizes per constructor.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinPartition     = 1
	MinRandomNodes   = 1
)

// Probability domain of RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
