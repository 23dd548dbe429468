// Command chprep is the thin host exercising the whole pipeline end to end:
// build a graph, run the contractor, answer one query, print timings. It owns no storage or import layer — grounded on the teacher's
// main.go experimental entry points (building a graph in code, running
// contraction, timing queries), trimmed to one path instead of several
// main2..main8 variants.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/chway/ch-router/config"
	"github.com/chway/ch-router/graph"
	"github.com/chway/ch-router/logging"
	"github.com/chway/ch-router/preproc"
	"github.com/chway/ch-router/query"
	"github.com/chway/ch-router/weighting"
)

// demoGraph builds a small hand-written road network so the pipeline has
// something concrete to run against without an OSM import or on-disk
// storage collaborator, per the module's scope.
func demoGraph() *graph.LevelGraph {
	edges := []graph.InputEdge{
		{NodeA: 0, NodeB: 1, Length: 1000, SpeedClass: 10, Flags: graph.ScBothDir},
		{NodeA: 1, NodeB: 2, Length: 1000, SpeedClass: 10, Flags: graph.ScBothDir},
		{NodeA: 2, NodeB: 3, Length: 1000, SpeedClass: 10, Flags: graph.ScBothDir},
		{NodeA: 3, NodeB: 4, Length: 1000, SpeedClass: 10, Flags: graph.ScBothDir},
		{NodeA: 0, NodeB: 4, Length: 8000, SpeedClass: 10, Flags: graph.ScBothDir},
	}
	return graph.BuildGraph(5, edges)
}

func main() {
	logger := logging.New(os.Stderr)

	profile := config.Profile{Name: "car-fastest", Vehicle: config.Car, Metric: config.Fastest}
	weightCalc := weighting.New(profile.Metric)

	g := demoGraph()

	start := time.Now()
	contractor := preproc.NewContractor(g, weightCalc, logger)
	if err := contractor.Run(); err != nil {
		logger.Error("preprocessing failed", "error", err)
		os.Exit(1)
	}
	logger.Info("preprocessing complete",
		"duration", time.Since(start),
		"shortcuts", contractor.NewShortcuts(),
	)

	ch := query.NewCHQuery(g, weightCalc)
	start = time.Now()
	result := ch.Route(0, 4)
	elapsed := time.Since(start)

	if !result.Found {
		fmt.Println("no route found")
		return
	}
	fmt.Printf("route 0->4: weight=%d nodes=%v (query took %s)\n", result.Weight, result.Nodes, elapsed)
}
