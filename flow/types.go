package flow

import (
	"context"
	"errors"

	"github.com/go-logr/logr"
)

// Sentinel errors returned by the max-flow algorithms.
var (
	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameEndpoints is returned when source and sink are the same vertex.
	ErrSameEndpoints = errors.New("flow: source equals sink")

	// ErrUnboundedFlow is returned when an uncapacitated path joins source and sink.
	ErrUnboundedFlow = errors.New("flow: unbounded flow")
)

// Default attribute keys.
const (
	DefaultCapacityAttr = "capacity"
	DefaultSupplyAttr   = "supply"
)

// FlowOptions configures all max-flow algorithms.
//   - Ctx: cancellation, checked once per augmentation phase.
//   - CapacityAttr: edge attribute holding the capacity. Absent, negative or
//     non-numeric means unlimited.
//   - SupplyAttr: vertex attribute read by MaxShipment.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
//   - Logger: V(1) receives one summary per run.
type FlowOptions struct {
	Ctx                  context.Context
	CapacityAttr         string
	SupplyAttr           string
	LevelRebuildInterval int
	Logger               logr.Logger
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:          context.Background(),
		CapacityAttr: DefaultCapacityAttr,
		SupplyAttr:   DefaultSupplyAttr,
		Logger:       logr.Discard(),
	}
}

func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.CapacityAttr == "" {
		o.CapacityAttr = DefaultCapacityAttr
	}
	if o.SupplyAttr == "" {
		o.SupplyAttr = DefaultSupplyAttr
	}
	if o.Logger.GetSink() == nil {
		o.Logger = logr.Discard()
	}
}

// Shipment summarizes how much of the declared supply can reach the demand.
type Shipment struct {
	Supply  int64 // sum of positive supplies
	Demand  int64 // sum of negated negative supplies
	Shipped int64 // maximum flow from supply to demand nodes
}

// Balanced reports whether supply equals demand.
func (s Shipment) Balanced() bool { return s.Supply == s.Demand }

// Shortfall counts every unit that cannot leave its supply node plus every
// unit that cannot reach its demand node.
func (s Shipment) Shortfall() int64 { return s.Supply + s.Demand - 2*s.Shipped }
