package pipeline_test

import (
	"fmt"

	"github.com/cwbudde/algo-etc/internal/fixture"
	"github.com/cwbudde/algo-etc/observe/pipeline"
)

func ExamplePlan_Evaluate() {
	plan, err := pipeline.Prepare(fixture.PhotometryRequest(), fixture.Store(), fixture.Instrument(), fixture.Grid())
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, t := range []float64{10, 30} {
		res, _ := plan.Evaluate(t)
		fmt.Printf("t=%2.0fs snr>20=%v saturated=%v\n", t, res.SNR > 20, res.Saturated)
	}

	// Output:
	// t=10s snr>20=true saturated=false
	// t=30s snr>20=true saturated=false
}
