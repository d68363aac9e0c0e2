package wiresphere

// Material describes how a Model's Mesh is drawn - its color and whether it's filled in or drawn as a wireframe.
type Material struct {
	Name  string // Name is the name of the Material.
	Color Color  // The overall color of the Material.

	// Wireframe draws only the edges of the Mesh's triangles, rather than filling them in.
	Wireframe bool

	// Shadeless materials are drawn in their flat Color regardless of their orientation to the viewer. Materials that aren't shadeless
	// have their filled triangles darkened as they turn away from the camera. Wireframes are always drawn flat.
	Shadeless bool

	// BackfaceCulling skips filled triangles that face away from the camera. Defaults to true. Wireframes draw all edges regardless.
	BackfaceCulling bool

	// LineWidth is the thickness of wireframe lines in logical pixels. Defaults to 1.
	LineWidth float64
}

// NewMaterial creates a new Material with the name given.
func NewMaterial(name string) *Material {
	return &Material{
		Name:            name,
		Color:           NewColor(1, 1, 1, 1),
		BackfaceCulling: true,
		LineWidth:       1,
	}
}

// Clone creates a clone of the specified Material.
func (material *Material) Clone() *Material {
	newMat := *material
	return &newMat
}
