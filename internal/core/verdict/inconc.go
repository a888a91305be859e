package verdict

// InconcReason records why a node could only be resolved as inconclusive
// rather than outright Pass/Fail.
type InconcReason int

const (
	// LackObs: the multi-trace ran out before the interaction could reach
	// an accepting node (neither covered nor a genuine mismatch).
	LackObs InconcReason = iota
	// LifelineRemovalWithColocalizations: a local analysis eliminated
	// lifelines that straddle a colocalization boundary, so its verdict
	// cannot be trusted to stand in for the global one.
	LifelineRemovalWithColocalizations
	// FilteredNodes: the exploration filtered away candidate nodes before
	// a verdict could be reached on every branch.
	FilteredNodes
)

func (r InconcReason) String() string {
	switch r {
	case LackObs:
		return "LackObs"
	case LifelineRemovalWithColocalizations:
		return "LifelineRemovalWithColocalizations"
	case FilteredNodes:
		return "FilteredNodes"
	default:
		return "UnknownInconcReason"
	}
}
