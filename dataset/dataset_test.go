package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestMoonsShapes(t *testing.T) {
	points, labels := Moons(21, 0.05, 42)

	require.Len(t, points, 21)
	require.Len(t, labels, 21)
	for _, p := range points {
		assert.Len(t, p, 2)
	}

	var outer, inner int
	for _, l := range labels {
		switch l {
		case 0:
			outer++
		case 1:
			inner++
		default:
			t.Fatalf("unexpected label %d", l)
		}
	}
	assert.Equal(t, 11, outer)
	assert.Equal(t, 10, inner)
}

func TestMoonsDeterministic(t *testing.T) {
	p1, l1 := Moons(50, 0.1, 7)
	p2, l2 := Moons(50, 0.1, 7)
	assert.Equal(t, p1, p2)
	assert.Equal(t, l1, l2)

	p3, _ := Moons(50, 0.1, 8)
	assert.NotEqual(t, p1, p3)
}

func TestCirclesRadii(t *testing.T) {
	points, labels := Circles(100, 0, 0.5, 1)

	for i, p := range points {
		r := math.Hypot(p[0], p[1])
		if labels[i] == 0 {
			assert.InDelta(t, 1, r, 1e-12, "outer point %d", i)
		} else {
			assert.InDelta(t, 0.5, r, 1e-12, "inner point %d", i)
		}
	}
}

func TestBlobs(t *testing.T) {
	centers := [][]float64{{-3, 0}, {3, 0}}
	points, labels := Blobs(200, centers, 0.2, 3)

	require.Len(t, points, 200)
	require.Len(t, labels, 200)

	// Round-robin assignment splits evenly.
	var counts [2]int
	for _, l := range labels {
		counts[l]++
	}
	assert.Equal(t, 100, counts[0])
	assert.Equal(t, 100, counts[1])

	// Sample means land near the blob centers.
	for c := range centers {
		var xs, ys []float64
		for i, p := range points {
			if labels[i] == c {
				xs = append(xs, p[0])
				ys = append(ys, p[1])
			}
		}
		assert.InDelta(t, centers[c][0], stat.Mean(xs, nil), 0.15)
		assert.InDelta(t, centers[c][1], stat.Mean(ys, nil), 0.15)
	}
}

func TestBlobsDeterministic(t *testing.T) {
	centers := [][]float64{{0, 0}, {1, 1}}
	p1, _ := Blobs(30, centers, 0.5, 99)
	p2, _ := Blobs(30, centers, 0.5, 99)
	assert.Equal(t, p1, p2)
}
