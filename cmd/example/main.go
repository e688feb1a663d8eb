package main

import (
	"fmt"
	"log"
	"math"

	"github.com/bartolsthoorn/goclp/clp"
	"github.com/bartolsthoorn/goclp/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lib, err := clp.Open(cfg.LibraryPath, clp.WithSymbol(cfg.Symbol))
	if err != nil {
		log.Fatal(err)
	}
	defer lib.Close()

	// Minimize: x + y
	// Subject to: x + y >= 1, 0 <= x,y <= 10
	model := clp.Model{
		ColCosts: []float64{1.0, 1.0},
		ColLower: []float64{0.0, 0.0},
		ColUpper: []float64{10.0, 10.0},
	}
	model.AddDenseRow(1.0, []float64{1.0, 1.0}, math.Inf(1)) // x + y >= 1

	res, err := model.Solve(lib, clp.Dual)
	if err != nil {
		log.Fatal(err)
	}

	if res.ProvenOptimal {
		fmt.Printf("x = %.2f, y = %.2f\n", res.X[0], res.X[1])
		fmt.Printf("Objective = %.2f\n", model.Objective(res))
	}
}
