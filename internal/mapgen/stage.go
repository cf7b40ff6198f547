package mapgen

// stage tracks the pipeline position for logging. Transitions are strictly
// sequential, single pass; a geometry or naming failure jumps straight to
// stageFailed and stays there.
type stage uint8

const (
	stageConfigured stage = iota
	stagePointsSampled
	stagePartitionComputed
	stageClassified
	stageNamed
	stageColored
	stageAssembled
	stageFailed
)

var stageNames = [...]string{
	stageConfigured:        "configured",
	stagePointsSampled:     "points_sampled",
	stagePartitionComputed: "partition_computed",
	stageClassified:        "classified",
	stageNamed:             "named",
	stageColored:           "colored",
	stageAssembled:         "assembled",
	stageFailed:            "failed",
}

func (s stage) String() string {
	if int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}
