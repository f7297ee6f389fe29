package qmeans_test

import (
	"fmt"

	"github.com/hupe1980/qmeans"
	"github.com/hupe1980/qmeans/dataset"
	"github.com/hupe1980/qmeans/featuremap"
)

func ExampleCluster() {
	points, _ := dataset.Blobs(40, [][]float64{{-2, -2}, {2, 2}}, 0.2, 0)

	labels, centers, err := qmeans.Cluster(points, 2,
		qmeans.WithFeatureMap(featuremap.KindAngle),
		qmeans.WithMaxIterations(10),
		qmeans.WithSeed(0),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(labels), len(centers))
	// Output: 40 2
}

func ExampleFidelity() {
	fm, err := featuremap.New(featuremap.KindAngle, 2, 0)
	if err != nil {
		panic(err)
	}

	a, _ := fm.Encode([]float64{0.1, -0.2})
	b, _ := fm.Encode([]float64{0.1, -0.2})

	f, _ := qmeans.Fidelity(a, b)
	fmt.Printf("%.1f\n", f)
	// Output: 1.0
}
