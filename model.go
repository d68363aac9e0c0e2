package wiresphere

// Model represents a singular visual instantiation of a Mesh. A Mesh contains the vertex information (what to draw); a Model references the Mesh
// to draw it with a specific Material, Position, Rotation, and/or Scale (where and how to draw).
type Model struct {
	*Node
	Mesh     *Mesh
	Material *Material
}

// NewModel creates a new Model (or instance) of the Mesh and Material provided. If material is nil, a default (white, filled) Material is used.
func NewModel(mesh *Mesh, material *Material, name string) *Model {

	if material == nil {
		material = NewMaterial("Default")
	}

	return &Model{
		Node:     NewNode(name),
		Mesh:     mesh,
		Material: material,
	}

}

// Type returns the NodeType for this object.
func (model *Model) Type() NodeType {
	return NodeTypeModel
}

// AddChildren parents the provided children Nodes to the Model.
func (model *Model) AddChildren(children ...INode) {
	model.addChildren(model, children...)
}

// Unparent unparents the Model from its parent, removing it from the scenegraph.
func (model *Model) Unparent() {
	if model.parent != nil {
		model.parent.RemoveChildren(model)
	}
}

// Root returns the root node in this tree by recursively traversing this node's hierarchy of parents upwards.
func (model *Model) Root() INode {
	if model.parent == nil {
		return model
	}
	return model.parent.Root()
}
