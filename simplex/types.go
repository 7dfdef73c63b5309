package simplex

import (
	"errors"
	"math"
)

// Sentinel errors returned by the engine.
var (
	// ErrReservedID indicates an edge ID that starts with ReservedPrefix.
	ErrReservedID = errors.New("simplex: edge ID uses the reserved prefix")

	// ErrEmptyID indicates an empty node or edge identifier.
	ErrEmptyID = errors.New("simplex: empty identifier")

	// ErrNodeNotFound indicates a query or mutation naming an unknown node.
	ErrNodeNotFound = errors.New("simplex: node not found")

	// ErrNodeExists indicates AddNode with an ID already in use.
	ErrNodeExists = errors.New("simplex: node already exists")

	// ErrEdgeNotFound indicates a query or mutation naming an unknown edge.
	ErrEdgeNotFound = errors.New("simplex: edge not found")

	// ErrEdgeExists indicates AddEdge with an ID already in use.
	ErrEdgeExists = errors.New("simplex: edge already exists")

	// ErrArcNotFound indicates a request for the reverse arc of a directed edge.
	ErrArcNotFound = errors.New("simplex: directed edge has no reverse arc")

	// ErrNotInitialized indicates use of an engine before Init or after Terminate.
	ErrNotInitialized = errors.New("simplex: engine not initialized")

	// ErrAlreadyInitialized indicates a second Init without Terminate.
	ErrAlreadyInitialized = errors.New("simplex: engine already initialized")

	// ErrBadBasis indicates a warm-start tree that is not a feasible spanning tree.
	ErrBadBasis = errors.New("simplex: warm-start tree rejected")
)

// ReservedPrefix starts every internally generated arc key. Edge IDs must not
// begin with it.
const ReservedPrefix = "~"

const (
	reversePrefix    = ReservedPrefix + "r:"
	artificialPrefix = ReservedPrefix + "a:"
)

// Unlimited is the capacity of an arc without an upper bound.
const Unlimited int64 = -1

// infinite marks an unbounded residual while selecting the leaving arc.
const infinite int64 = math.MaxInt64

// SolutionStatus is the state of the current basis.
type SolutionStatus int

const (
	// Undefined: the basis is a valid spanning tree but may not be optimal.
	Undefined SolutionStatus = iota
	// Optimal: no improving arc exists and no artificial arc carries flow.
	Optimal
	// Infeasible: no improving arc exists but some artificial arc carries flow.
	Infeasible
	// Unbounded: an uncapacitated negative-cost cycle exists.
	Unbounded
)

func (s SolutionStatus) String() string {
	switch s {
	case Undefined:
		return "UNDEFINED"
	case Optimal:
		return "OPTIMAL"
	case Infeasible:
		return "INFEASIBLE"
	case Unbounded:
		return "UNBOUNDED"
	}
	return "SolutionStatus(?)"
}

// ArcStatus is the membership of an arc in the basis.
type ArcStatus int

const (
	Basic ArcStatus = iota
	NonbasicLower
	NonbasicUpper
)

func (s ArcStatus) String() string {
	switch s {
	case Basic:
		return "BASIC"
	case NonbasicLower:
		return "NONBASIC_LOWER"
	case NonbasicUpper:
		return "NONBASIC_UPPER"
	}
	return "ArcStatus(?)"
}

// Pricing selects the entering arc of each pivot.
type Pricing int

const (
	// MostNegative scans every candidate and picks the smallest reduced cost.
	MostNegative Pricing = iota
	// FirstNegative stops at the first arc with a negative reduced cost.
	FirstNegative
)

func (p Pricing) String() string {
	switch p {
	case MostNegative:
		return "most-negative"
	case FirstNegative:
		return "first-negative"
	}
	return "Pricing(?)"
}

// TreeLink attaches a node to its parent in a warm-start basis through the
// arc (EdgeID, Reverse). Nodes without a link hang from the root through their
// artificial arc.
type TreeLink struct {
	Parent  string
	EdgeID  string
	Reverse bool
}

// Hooks are optional callbacks invoked synchronously by the engine.
type Hooks struct {
	// OnArtificialEnter fires when a pivot brings the artificial arc of
	// nodeID into the basis.
	OnArtificialEnter func(nodeID string)

	// OnStatus fires whenever the solution status changes.
	OnStatus func(SolutionStatus)
}

// Stats are counters accumulated since Init.
type Stats struct {
	Pivots           int
	DegeneratePivots int
	Restarts         int // cold restarts after a stalled run of degenerate pivots
	Mutations        int
	Nodes            int
	Arcs             int
}
