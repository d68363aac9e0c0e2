package wiresphere

// Scene represents a world of sorts, and can contain a variety of Models. A Scene has a Root Node, which everything to be
// rendered is parented to; the Root sits at the world origin.
type Scene struct {
	Name string // The name of the Scene.
	Root *Node  // The Root Node of the Scene, which children are added to.
}

// NewScene returns a new, empty Scene with the name given.
func NewScene(name string) *Scene {
	return &Scene{
		Name: name,
		Root: NewNode("Root"),
	}
}

// Models returns every Model parented (directly or indirectly) under the Scene's Root, depth-first.
func (scene *Scene) Models() []*Model {
	models := []*Model{}
	for _, node := range scene.Root.ChildrenRecursive() {
		if model, ok := node.(*Model); ok {
			models = append(models, model)
		}
	}
	return models
}

// Position returns the Scene's origin point, which is the world position of its Root.
func (scene *Scene) Position() Vector {
	return scene.Root.WorldPosition()
}
