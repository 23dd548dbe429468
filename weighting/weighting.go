// Package weighting maps graph edges to the scalar integer weight the
// preprocessor and query operate on, and reverses that weight back to a
// reportable distance/duration. Grounded on the teacher's graph/weighting.go
// IWeighting/DefaultWeighting family, generalised to the single
// EdgeRef/IExplorer shape graph.LevelGraph exposes instead of the teacher's
// attr-table lookups, with Revert grounded on the original GraphHopper
// PrepareContractionHierarchies.java's WeightCalculation.revert.
package weighting

import (
	"github.com/chway/ch-router/config"
	"github.com/chway/ch-router/graph"
)

// WeightCalc is the interface the Contractor's prepareEdges and CHQuery's
// path-weight reporting both consume. A WeightCalc is a value created once
// per preprocessing/query run (no process-wide singleton), per the Design
// Note against shared mutable weighting state.
type WeightCalc interface {
	// Weight returns the scalar weight to store for edge, read via explorer
	// before the graph's distance field has been overwritten by a previous
	// call (prepareEdges visits each edge exactly once).
	Weight(edge graph.EdgeRef, explorer graph.IExplorer) int32
	// Revert turns a stored weight plus an edge's flags back into the edge's
	// physical length in metres (for both Shortest and Fastest).
	Revert(weight int32, flags uint8) int32
	Name() string
}

// ShortestWeighting weights every edge by its length; speed is ignored.
type ShortestWeighting struct{}

func NewShortestWeighting() ShortestWeighting {
	return ShortestWeighting{}
}

func (ShortestWeighting) Weight(edge graph.EdgeRef, explorer graph.IExplorer) int32 {
	return explorer.GetEdgeWeight(edge)
}

func (ShortestWeighting) Revert(weight int32, flags uint8) int32 {
	return weight
}

func (ShortestWeighting) Name() string {
	return "shortest"
}

// FastestWeighting weights every edge by length / speed, with speed decoded
// from the 5-bit speed class folded into the edge's flags byte (see
// graph.SpeedClass) rather than a side table — CH's weight-overlay
// invariant only leaves room for a single mutable scalar per edge, so the
// attribute the teacher keeps in a separate attr.EdgeAttribs table here
// lives in the flags bits instead.
type FastestWeighting struct {
	// speedTable maps a speed class (0..31) to km/h. Index 0 (no speed
	// class recorded) is treated as walking speed, matching the teacher's
	// fallback for unset Maxspeed.
	speedTable [32]int32
}

// defaultSpeedTable buckets speed classes in 5 km/h steps starting at 5,
// with class 0 reserved for "unknown" (treated as 5 km/h, walking pace).
func defaultSpeedTable() [32]int32 {
	var table [32]int32
	table[0] = 5
	for i := 1; i < 32; i++ {
		table[i] = int32(i * 5)
	}
	return table
}

func NewFastestWeighting() FastestWeighting {
	return FastestWeighting{speedTable: defaultSpeedTable()}
}

const centiSecondsPerHour = 360000 // 3600s * 100 (centi-second unit)

func (self FastestWeighting) Weight(edge graph.EdgeRef, explorer graph.IExplorer) int32 {
	length := explorer.GetEdgeWeight(edge)
	flags := explorer.GetEdgeFlags(edge)
	speed := self.speedTable[graph.SpeedClass(flags)]
	if speed <= 0 {
		speed = 1
	}
	// length is in metres, speed in km/h; weight unit is centi-seconds.
	return int32(int64(length) * centiSecondsPerHour / (int64(speed) * 1000))
}

// Revert inverts Weight's length -> centi-second formula back to a distance
// in metres, using the speed class folded into flags (the same one Weight
// read to produce the stored weight).
func (self FastestWeighting) Revert(weight int32, flags uint8) int32 {
	speed := self.speedTable[graph.SpeedClass(flags)]
	if speed <= 0 {
		speed = 1
	}
	return int32(int64(weight) * int64(speed) * 1000 / centiSecondsPerHour)
}

func (FastestWeighting) Name() string {
	return "fastest"
}

// New builds the WeightCalc a config.Profile's MetricType names.
func New(metric config.MetricType) WeightCalc {
	switch metric {
	case config.Shortest:
		return NewShortestWeighting()
	default:
		return NewFastestWeighting()
	}
}
