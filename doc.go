// Package orange3 provides feature discretization for Go, turning
// continuous columns into ordered categorical bins.
//
// Three strategies compute cut points: equal-frequency and equal-width
// binning in closed form, and entropy minimization with an MDL stopping
// criterion for class-labeled data. A domain-level orchestrator applies
// one strategy across a whole table schema and assembles the resulting
// discrete schema.
//
// # Installation
//
// Install using go get:
//
//	go get github.com/andyglick/orange3
//
// # Quick Start
//
// Discretize every continuous attribute of a table:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/andyglick/orange3/data"
//	    "github.com/andyglick/orange3/preprocess"
//	)
//
//	func main() {
//	    age := data.NewContinuousVariable("age", 0)
//	    domain := data.NewDomain([]data.Variable{age}, nil)
//	    table, err := data.NewTable(domain,
//	        mat.NewDense(8, 1, []float64{18, 25, 35, 45, 55, 65, 75, 85}), nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    disc := preprocess.NewDomainDiscretizer()
//	    newDomain, err := disc.Discretize(table)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    for _, v := range newDomain.Attributes {
//	        fmt.Println(v)
//	    }
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - data: variables, domains and tables backed by gonum matrices
//   - stats: value distributions and value-by-class contingencies
//   - preprocess: the binning strategies, the domain orchestrator,
//     normalization and the YAML pipeline configuration
//   - pkg/errors: typed errors and the warning handler
//   - pkg/log: structured logging with standard attribute keys
//
// # License
//
// Released under the MIT License.
package orange3
