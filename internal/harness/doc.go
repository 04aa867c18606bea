// Package harness provides conformance testing for plan serialization.
//
// A scenario names a plan description and what serializing it must produce.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	plan: plans/lineitem.yaml   # relative to the scenario file
//	labels: [gen-1, gen-2]      # optional, for nodes declared without id
//	expect:
//	  nodes: 3
//	  order: [scan, big, keys]
//	  contains:
//	    - '"relOp":"LogicalFilter"'
//
// A scenario that expects failure sets expect.error to a substring of the
// error message instead:
//
//	expect:
//	  error: "plan contains a cycle"
//
// # Deterministic Testing
//
// Unlabeled nodes receive labels from scenario.labels and then node-N
// through a testutil.LabelSequence, so emission order is reproducible. Each run
// round-trips the document through a fresh in-memory store, and the
// document bytes are what golden files record.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/lineitem.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
