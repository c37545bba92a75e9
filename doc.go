// SPDX-License-Identifier: MIT

// Package roadflow is a congestion-aware routing engine for a small city road
// network.
//
// A batch of vehicles travels from several origins to one destination. Each
// road has a base cost and a traffic multiplier; its weight is always
// base*multiplier. Vehicles are routed with Dijkstra under one of three
// strategies, which differ in how the routes they pick feed back into road
// congestion:
//
//	greedy       each vehicle raises the multiplier of every road it uses,
//	             so later vehicles see the earlier ones
//	coordinated  every vehicle is routed on the same unmodified graph, then
//	             congestion is applied once from the combined usage
//	optimized    before each vehicle the whole network is re-projected from
//	             the usage counts so far
//
// An accident closes a random road; the batch is rerouted at once.
//
// Layout:
//
//	core/        thread-safe road graph (Graph, Edge, RoadKey)
//	topology/    declarative nodes + roads, traffic multipliers
//	builder/     topology + traffic + accident -> fresh core.Graph; generators
//	dijkstra/    shortest path with deterministic tie-breaking
//	strategy/    greedy, coordinated and optimized routing policies
//	accident/    uniform random road closure
//	report/      cost and congestion summaries, strategy comparison
//	simulation/  Session: cycles, strategy switching, accidents, route cache
//	loader/      city map JSON and traffic CSV readers
//	config/      JSON config, ROADFLOW_* environment, zap logger
//	server/      gin HTTP API over a Session
//	cmd/roadflow run and serve commands
//
// Quick start:
//
//	sess, _ := simulation.New(builder.CityMap(), nil)
//	cycle, _ := sess.Run()
//	for _, r := range cycle.Results {
//		fmt.Println(r.Vehicle, r.Path, r.Cost)
//	}
package roadflow
