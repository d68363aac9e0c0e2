package wiresphere

import "math"

// SphereGeometry holds the parameters a UV sphere Mesh is generated from.
type SphereGeometry struct {
	Radius         float64 // Radius of the sphere.
	WidthSegments  int     // Number of segments around the sphere (longitude); at least 3.
	HeightSegments int     // Number of segments from pole to pole (latitude); at least 2.
}

// NewSphereMesh creates a new UV sphere Mesh, centered on the origin, with the radius and segment counts given. More segments
// give smoother (and denser) facets. Segment counts below the minimum (3 around, 2 from pole to pole) are raised to it.
// Vertices are laid out in rows from the top pole (+Y) to the bottom pole, each row starting on -X and wrapping around
// through +Z; the first and last vertex of each row share a position so the seam closes.
func NewSphereMesh(radius float64, widthSegments, heightSegments int) *Mesh {

	widthSegments = max(3, widthSegments)
	heightSegments = max(2, heightSegments)

	vertices := make([]Vector, 0, (widthSegments+1)*(heightSegments+1))
	grid := make([][]int, 0, heightSegments+1)

	for iy := 0; iy <= heightSegments; iy++ {

		row := make([]int, 0, widthSegments+1)
		theta := float64(iy) / float64(heightSegments) * math.Pi

		for ix := 0; ix <= widthSegments; ix++ {

			phi := float64(ix) / float64(widthSegments) * math.Pi * 2

			vertices = append(vertices, NewVector(
				-radius*math.Cos(phi)*math.Sin(theta),
				radius*math.Cos(theta),
				radius*math.Sin(phi)*math.Sin(theta),
			))

			row = append(row, len(vertices)-1)

		}

		grid = append(grid, row)

	}

	mesh := NewMesh("Sphere", vertices...)

	for iy := 0; iy < heightSegments; iy++ {

		for ix := 0; ix < widthSegments; ix++ {

			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]

			// The top and bottom rows each collapse one corner of their quads into a pole, so only one triangle is needed there.
			if iy != 0 {
				mesh.AddTriangles(a, b, d)
			}
			if iy != heightSegments-1 {
				mesh.AddTriangles(b, c, d)
			}

		}

	}

	mesh.Sphere = &SphereGeometry{
		Radius:         radius,
		WidthSegments:  widthSegments,
		HeightSegments: heightSegments,
	}

	return mesh

}
