package wiresphere

import "sort"

// sortingTriangle is a triangle that has been clipped and projected, waiting to be drawn. Clipping against the near and far
// planes can turn a triangle into a polygon with more points, so the points are kept as a range in the bucket's point buffer.
type sortingTriangle struct {
	start, end int
	depth      float64
	color      Color
}

// sortingTriangleBucket collects a Model's visible triangles so they can be drawn from back to front. Its buffers are reused
// between Models and frames.
type sortingTriangleBucket struct {
	triangles []sortingTriangle
	points    [][2]float64
}

func (s *sortingTriangleBucket) AddTriangle(points [][2]float64, depth float64, color Color) {
	start := len(s.points)
	s.points = append(s.points, points...)
	s.triangles = append(s.triangles, sortingTriangle{
		start: start,
		end:   len(s.points),
		depth: depth,
		color: color,
	})
}

// Sort orders the triangles from the furthest to the closest.
func (s *sortingTriangleBucket) Sort() {
	sort.SliceStable(s.triangles, func(i, j int) bool {
		return s.triangles[i].depth > s.triangles[j].depth
	})
}

func (s *sortingTriangleBucket) ForEach(forEach func(points [][2]float64, color Color)) {
	for _, tri := range s.triangles {
		forEach(s.points[tri.start:tri.end], tri.color)
	}
}

func (s *sortingTriangleBucket) IsEmpty() bool {
	return len(s.triangles) == 0
}

func (s *sortingTriangleBucket) Clear() {
	s.triangles = s.triangles[:0]
	s.points = s.points[:0]
}
