package gridsearch

import "errors"

// Sentinel errors returned by the grid search primitives.
var (
	// ErrNoGoals indicates MultiGoalDijkstra was called with an empty
	// goal list; there is nothing to search for.
	ErrNoGoals = errors.New("gridsearch: goal list is empty")

	// ErrHeapCorruption indicates a popped cost was strictly less than
	// the recorded best cost for that point — a priority-queue invariant
	// violation, not a recoverable condition.
	ErrHeapCorruption = errors.New("gridsearch: priority queue invariant violated")

	// ErrUnreachable indicates AStar found no path between its endpoints.
	// Whether this is fatal is left to the caller: AbstractPath's lazy
	// resolution treats it as an invariant violation, because the
	// abstract graph's construction already guaranteed a concrete path
	// existed; AStar itself only reports it, it does not decide fatality.
	ErrUnreachable = errors.New("gridsearch: no path exists between start and goal")
)

// Options configures the frontier-size hint and multi-goal termination
// behavior shared by the grid search primitives.
type Options struct {
	// OnlyClosestGoal stops MultiGoalDijkstra as soon as any one goal has
	// been popped from the frontier, instead of continuing until every
	// goal is reached or the frontier is exhausted.
	OnlyClosestGoal bool

	// FrontierSizeHint preallocates the priority queue's backing slice,
	// mirroring dijkstra.Dijkstra's "capacity V is a reasonable starting
	// point" comment. Zero means let the queue grow organically.
	FrontierSizeHint int
}

// Option is a functional option for Options, following dijkstra.Option's
// convention.
type Option func(*Options)

// WithOnlyClosestGoal enables early termination after the first goal is
// popped from the frontier.
func WithOnlyClosestGoal() Option {
	return func(o *Options) { o.OnlyClosestGoal = true }
}

// WithFrontierSizeHint preallocates the priority queue's backing array.
func WithFrontierSizeHint(n int) Option {
	return func(o *Options) { o.FrontierSizeHint = n }
}

// DefaultOptions returns an Options with OnlyClosestGoal disabled and no
// frontier size hint.
func DefaultOptions() Options {
	return Options{}
}
