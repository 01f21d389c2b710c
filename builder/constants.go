package builder

// Method tags used to prefix errors with the constructor name.
const (
	methodPlantedCycle      = "PlantedCycle"
	methodPath              = "Path"
	methodPendants          = "Pendants"
	methodCompleteBipartite = "CompleteBipartite"
	methodRandomSparse      = "RandomSparse"
	methodShuffle           = "Shuffle"
)

// Size minimums.
const (
	// MinCycleLength is the shortest cycle a simple bipartite graph admits.
	MinCycleLength = 4
	minPathEdges   = 1
	minPendants    = 1
	minPartition   = 1
	minRandomEdges = 1
)
