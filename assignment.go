package qmeans

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// assignment captures one iteration's point-to-cluster memberships as
// per-cluster bitmaps. It is valid for exactly one iteration and is
// rebuilt from scratch on the next assignment pass.
type assignment struct {
	clusters []*roaring.Bitmap
}

func newAssignment(k int) *assignment {
	clusters := make([]*roaring.Bitmap, k)
	for i := range clusters {
		clusters[i] = roaring.New()
	}
	return &assignment{clusters: clusters}
}

// add records point as a member of cluster.
func (a *assignment) add(cluster, point int) {
	a.clusters[cluster].Add(uint32(point))
}

// members returns the point indices assigned to cluster.
func (a *assignment) members(cluster int) *roaring.Bitmap {
	return a.clusters[cluster]
}

// sizes returns the cardinality of every cluster.
func (a *assignment) sizes() []uint64 {
	out := make([]uint64, len(a.clusters))
	for i, c := range a.clusters {
		out[i] = c.GetCardinality()
	}
	return out
}
