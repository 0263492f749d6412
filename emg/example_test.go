package emg_test

import (
	"fmt"

	"github.com/cwbudde/algo-emg/emg"
	"github.com/cwbudde/algo-emg/internal/testutil"
	timestats "github.com/cwbudde/algo-emg/stats/time"
)

func ExampleRectify() {
	fmt.Println(emg.Rectify([]float64{1, 2, 3, 4, 5}))

	// Output:
	// [2 1 0 1 2]
}

func ExampleNormalize() {
	pct, err := emg.Normalize([]float64{1, 2}, []float64{4, -8, 2})
	if err != nil {
		panic(err)
	}
	fmt.Println(pct)

	// Output:
	// [25 50]
}

func ExampleLowPass() {
	out, err := emg.LowPass(testutil.DC(2, 100), 10, emg.WithOrder(4))
	if err != nil {
		panic(err)
	}
	fmt.Printf("first=%.3f last=%.3f\n", out[0], out[len(out)-1])

	// Output:
	// first=2.000 last=2.000
}

func ExampleRawToEnvelope() {
	trial := testutil.SyntheticEMG(1, 3000, 0.1, 0.01, testutil.Burst{Start: 1000, Stop: 2000, Amplitude: 0.5})
	mvc := testutil.SyntheticEMG(2, 3000, 0.1, 0.01, testutil.Burst{Start: 500, Stop: 2500, Amplitude: 2})

	env, err := emg.RawToEnvelope(trial, 6, emg.WithSampleRate(1000), emg.WithReference(mvc))
	if err != nil {
		panic(err)
	}

	peak, _ := timestats.Max(env)
	fmt.Println(len(env), peak < 100)

	// Output:
	// 3000 true
}
