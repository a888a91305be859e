// Package abstract is the generic queue+priority+filter+memoization
// framework both the exploration and the analysis drivers are built on.
// It mirrors the Rust source's trait-parameterized GenericProcessManager
// using a Go generic type parameterized by node-kind, step-kind and
// filter-criterion instead of an associated-type trait.
package abstract

import "sort"

// Strategy selects how the work queue is drained.
type Strategy int

const (
	// DFS always extracts the most recently enqueued step.
	DFS Strategy = iota
	// BFS always extracts the earliest enqueued step.
	BFS
	// HCS ("hybrid") alternates: after a node yields no children the next
	// extraction comes from the front (BFS-like); otherwise from the
	// back (DFS-like).
	HCS
)

func (s Strategy) String() string {
	switch s {
	case DFS:
		return "dfs"
	case BFS:
		return "bfs"
	case HCS:
		return "hcs"
	default:
		return "unknown"
	}
}

// NodeID identifies a memoized node in the search.
type NodeID = uint32

// Node is one memoized point in the search: its domain-specific kind,
// the child ids still owed a visit, and its depth from the root.
type Node[K any] struct {
	Kind              K
	RemainingChildIDs map[uint32]struct{}
	Depth             uint32
}

// Step is one queued unit of work: a domain-specific step kind to apply
// to its parent node, tagged with the child id it will produce.
type Step[S any] struct {
	ParentID NodeID
	ChildID  uint32
	Kind     S
}

// FilterReason names why a step was pruned rather than explored.
type FilterReason string

// Prioritizer ranks steps of the same kind against each other. Each batch
// of new steps is enqueued in descending priority order, so a front
// extraction (BFS) dequeues higher returns first and a back extraction
// (DFS) dequeues lower returns first.
type Prioritizer[S any] func(step S) int

// Filter inspects a candidate step before it is applied and may reject
// it, returning the reason it gave up the exploration of that branch.
type Filter[C any] func(depth uint32, nodeCount uint32, criterion C) (FilterReason, bool)

// Manager is the generic driver state: a memoization map, a work queue,
// a strategy, and the filters/prioritizer a concrete driver configures
// it with.
type Manager[K any, S any, C any] struct {
	strategy          Strategy
	prioritizer       Prioritizer[S]
	filters           []Filter[C]
	memo              map[NodeID]Node[K]
	queue             []Step[S]
	lastHadNoChildren bool
}

// NewManager builds an empty Manager using strategy, an optional
// prioritizer (nil disables priority reordering) and any number of
// filters, applied in order until one rejects a step.
func NewManager[K any, S any, C any](strategy Strategy, prioritizer Prioritizer[S], filters ...Filter[C]) *Manager[K, S, C] {
	return &Manager[K, S, C]{
		strategy:    strategy,
		prioritizer: prioritizer,
		filters:     filters,
		memo:        make(map[NodeID]Node[K]),
	}
}

// Strategy reports the manager's draining discipline.
func (m *Manager[K, S, C]) Strategy() Strategy { return m.strategy }

// Remember memoizes node under id.
func (m *Manager[K, S, C]) Remember(id NodeID, node Node[K]) {
	m.memo[id] = node
}

// PickMemorized retrieves the node memoized under id.
func (m *Manager[K, S, C]) PickMemorized(id NodeID) (Node[K], bool) {
	n, ok := m.memo[id]
	return n, ok
}

// Forget drops a node's memoized state once every child has been
// dispatched — the framework's garbage collection step.
func (m *Manager[K, S, C]) Forget(id NodeID) {
	delete(m.memo, id)
}

// ApplyFilters runs every configured filter against criterion in order,
// returning the first rejection encountered, if any.
func (m *Manager[K, S, C]) ApplyFilters(depth, nodeCount uint32, criterion C) (FilterReason, bool) {
	for _, f := range m.filters {
		if reason, filtered := f(depth, nodeCount, criterion); filtered {
			return reason, true
		}
	}
	return "", false
}

// EnqueueNewSteps appends steps to the work queue, first reordering them
// by descending priority if a prioritizer was configured (stable, so
// steps of equal priority keep their relative order).
func (m *Manager[K, S, C]) EnqueueNewSteps(steps []Step[S]) {
	if m.prioritizer != nil {
		sort.SliceStable(steps, func(i, j int) bool {
			return m.prioritizer(steps[i].Kind) > m.prioritizer(steps[j].Kind)
		})
	}
	m.queue = append(m.queue, steps...)
}

// ExtractFromQueue pops the next step to process, per the manager's
// strategy, or reports false once the queue is drained.
func (m *Manager[K, S, C]) ExtractFromQueue() (Step[S], bool) {
	if len(m.queue) == 0 {
		return Step[S]{}, false
	}
	fromFront := m.strategy == BFS || (m.strategy == HCS && m.lastHadNoChildren)
	if fromFront {
		s := m.queue[0]
		m.queue = m.queue[1:]
		return s, true
	}
	last := len(m.queue) - 1
	s := m.queue[last]
	m.queue = m.queue[:last]
	return s, true
}

// NotifyChildOutcome tells the manager whether the step it just drained
// produced any children, which HCS uses to decide the next extraction
// side.
func (m *Manager[K, S, C]) NotifyChildOutcome(hadChildren bool) {
	m.lastHadNoChildren = !hadChildren
}

// QueueLen reports how many steps remain queued.
func (m *Manager[K, S, C]) QueueLen() int { return len(m.queue) }
