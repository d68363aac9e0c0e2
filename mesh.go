package wiresphere

import "math"

// Dimensions represents the minimum and maximum spatial corners of a Mesh.
type Dimensions [2]Vector

// Width returns the span of the Dimensions on the X axis.
func (dim Dimensions) Width() float64 {
	return dim[1].X - dim[0].X
}

// Height returns the span of the Dimensions on the Y axis.
func (dim Dimensions) Height() float64 {
	return dim[1].Y - dim[0].Y
}

// Depth returns the span of the Dimensions on the Z axis.
func (dim Dimensions) Depth() float64 {
	return dim[1].Z - dim[0].Z
}

// MaxSpan returns the maximum span out of width, height, and depth.
func (dim Dimensions) MaxSpan() float64 {
	return math.Max(math.Max(dim.Width(), dim.Height()), dim.Depth())
}

// Center returns the center point inbetween the two corners of the dimension set.
func (dim Dimensions) Center() Vector {
	return dim[0].Add(dim[1]).Scale(0.5)
}

// Triangle represents a face of a Mesh, indicated by the indices of its three vertices in the Mesh's Vertices slice.
// Vertices wind counter-clockwise when seen from the front.
type Triangle [3]int

// Edge represents a line between two vertices of a Mesh, indicated by their indices. The lower index is always first.
type Edge [2]int

// Mesh represents a collection of vertices and the triangles that connect them - what to draw, but not where or how.
type Mesh struct {
	Name       string
	Vertices   []Vector
	Triangles  []Triangle
	Dimensions Dimensions

	// Sphere holds the parameters the Mesh was generated from if it was created through NewSphereMesh(); otherwise, it's nil.
	Sphere *SphereGeometry

	edges []Edge
}

// NewMesh creates a new Mesh with the name and vertex positions given. Triangles can be added afterwards with AddTriangles().
func NewMesh(name string, vertices ...Vector) *Mesh {
	mesh := &Mesh{
		Name:      name,
		Vertices:  append([]Vector{}, vertices...),
		Triangles: []Triangle{},
	}
	mesh.UpdateBounds()
	return mesh
}

// AddTriangles adds triangles to the Mesh, composed of the vertex indices given in groups of three.
// AddTriangles panics if the number of indices isn't divisible by three, or if an index is out of range.
func (mesh *Mesh) AddTriangles(indices ...int) {

	if len(indices)%3 != 0 {
		panic("Error: Mesh.AddTriangles() has not been given a correct number of indices to constitute triangles (it needs to be divisible by 3).")
	}

	for i := 0; i < len(indices); i += 3 {
		tri := Triangle{indices[i], indices[i+1], indices[i+2]}
		for _, index := range tri {
			if index < 0 || index >= len(mesh.Vertices) {
				panic("Error: Mesh.AddTriangles() was given a vertex index that is out of range.")
			}
		}
		mesh.Triangles = append(mesh.Triangles, tri)
	}

	mesh.edges = nil

}

// UpdateBounds updates the mesh's dimensions; call this after manually changing vertex positions.
func (mesh *Mesh) UpdateBounds() {

	if len(mesh.Vertices) == 0 {
		mesh.Dimensions = Dimensions{}
		return
	}

	min := mesh.Vertices[0]
	max := mesh.Vertices[0]

	for _, v := range mesh.Vertices[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		min.Z = math.Min(min.Z, v.Z)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
		max.Z = math.Max(max.Z, v.Z)
	}

	mesh.Dimensions = Dimensions{min, max}

}

// Edges returns the unique edges of the Mesh's triangles, in the order they're first encountered.
// This is what gets drawn when a Mesh is rendered with a wireframe Material.
func (mesh *Mesh) Edges() []Edge {

	if mesh.edges != nil {
		return mesh.edges
	}

	seen := make(map[Edge]struct{}, len(mesh.Triangles)*3/2)
	edges := make([]Edge, 0, len(mesh.Triangles)*3/2)

	for _, tri := range mesh.Triangles {
		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			edge := Edge{a, b}
			if _, exists := seen[edge]; exists {
				continue
			}
			seen[edge] = struct{}{}
			edges = append(edges, edge)
		}
	}

	mesh.edges = edges

	return edges

}
