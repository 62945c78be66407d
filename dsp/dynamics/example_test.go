package dynamics_test

import (
	"fmt"

	"github.com/cwbudde/algo-kick/dsp/dynamics"
)

func ExampleLookaheadLimiter() {
	l, err := dynamics.NewLookaheadLimiter(1000, 10,
		dynamics.WithLimiterThreshold(-6),
		dynamics.WithLimiterLookahead(2),
	)
	if err != nil {
		panic(err)
	}

	for _, x := range []float64{0.1, 0.2, 1.0, 0.2, 0.1} {
		y, _ := l.Process(x, x)
		fmt.Printf("%.3f\n", y)
	}
	// Output:
	// 0.000
	// 0.000
	// 0.050
	// 0.100
	// 0.501
}
