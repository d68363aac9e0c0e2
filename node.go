package wiresphere

import "strings"

// NodeType represents a Node's type. Node types are categorized, and can be said to extend or "be of" more general types;
// a NodeTypeModel is a NodeTypeNode, but a NodeTypeNode is not a NodeTypeModel.
type NodeType string

const (
	NodeTypeNode   NodeType = "Node"       // NodeTypeNode represents any generic node
	NodeTypeModel  NodeType = "NodeModel"  // NodeTypeModel represents specifically a Model
	NodeTypeCamera NodeType = "NodeCamera" // NodeTypeCamera represents specifically a Camera
)

// Is returns true if a NodeType satisfies another NodeType category.
func (nt NodeType) Is(other NodeType) bool {
	if nt == other {
		return true
	}
	return strings.Contains(string(nt), string(other))
}

// INode represents an object that exists in 3D space and can be positioned relative to an origin point.
// By default, this origin point is {0, 0, 0} (or world origin), but Nodes can be parented
// to other Nodes to change this origin (making their movements relative and their transforms
// successive). Models and Cameras fully implement the INode interface by means of embedding Node.
type INode interface {
	// Name returns the object's name.
	Name() string
	// SetName sets the object's name.
	SetName(name string)
	// Type returns the NodeType for this object.
	Type() NodeType

	// Parent returns the Node's parent. If the Node has no parent, this will return nil.
	Parent() INode
	setParent(INode)
	// Unparent unparents the Node from its parent, removing it from the scenegraph.
	Unparent()
	// Root returns the root node in this tree by recursively traversing this node's hierarchy of parents upwards.
	Root() INode

	// Children returns the Node's direct children, in the order they were added.
	Children() []INode
	// ChildrenRecursive returns the Node's recursive children (i.e. children, grandchildren, etc), depth-first.
	ChildrenRecursive() []INode
	// AddChildren parents the provided children Nodes to the calling Node. If the children are already parented
	// to other Nodes, they are unparented before doing so.
	AddChildren(...INode)
	// RemoveChildren removes the provided children from this object.
	RemoveChildren(...INode)

	dirtyTransform()

	// LocalPosition returns the object's local position (position relative to its parent).
	LocalPosition() Vector
	// SetLocalPosition sets the object's local position (position relative to its parent). If this object has no parent,
	// the position is relative to world origin (0, 0, 0).
	SetLocalPosition(x, y, z float64)
	// SetLocalPositionVec sets the object's local position using the Vector provided.
	SetLocalPositionVec(position Vector)
	// LocalScale returns the object's local scale.
	LocalScale() Vector
	// SetLocalScale sets the object's local scale.
	SetLocalScale(x, y, z float64)
	// LocalRotation returns the object's local rotation Matrix4.
	LocalRotation() Matrix4
	// SetLocalRotation sets the object's local rotation Matrix4 (relative to any parent).
	SetLocalRotation(rotation Matrix4)

	// WorldPosition returns the node's world position, taking into account its parenting hierarchy.
	WorldPosition() Vector
	// WorldRotation returns an absolute rotation Matrix4 representing the object's rotation.
	WorldRotation() Matrix4
	// Transform returns a Matrix4 indicating the global position, rotation, and scale of the object, transforming it by any parents'.
	Transform() Matrix4

	// Visible returns whether the Object is visible.
	Visible() bool
	// SetVisible sets the object's visibility. If recursive is true, all recursive children of this Node will have their visibility set the same way.
	SetVisible(visible, recursive bool)
}

// Node represents a minimal struct that fully implements the INode interface. Model and Camera embed Node
// into their structs to automatically implement INode.
type Node struct {
	name             string
	position         Vector
	scale            Vector
	rotation         Matrix4
	visible          bool
	children         []INode
	parent           INode
	cachedTransform  Matrix4
	isTransformDirty bool
}

// NewNode returns a new Node.
func NewNode(name string) *Node {
	return &Node{
		name:             name,
		scale:            NewVector(1, 1, 1),
		rotation:         NewMatrix4(),
		children:         []INode{},
		visible:          true,
		isTransformDirty: true,
		cachedTransform:  NewMatrix4(),
	}
}

// Name returns the object's name.
func (node *Node) Name() string {
	return node.name
}

// SetName sets the object's name.
func (node *Node) SetName(name string) {
	node.name = name
}

// Type returns the NodeType for this object.
func (node *Node) Type() NodeType {
	return NodeTypeNode
}

// Transform returns a Matrix4 indicating the global position, rotation, and scale of the object, transforming it by any parents'.
// If there's no change between the previous Transform() call and this one, Transform() returns a cached version of the transform.
func (node *Node) Transform() Matrix4 {

	// S * R * T * Parent

	if !node.isTransformDirty {
		return node.cachedTransform
	}

	transform := NewMatrix4Scale(node.scale.X, node.scale.Y, node.scale.Z)
	transform = transform.Mult(node.rotation)
	transform = transform.Mult(NewMatrix4Translate(node.position.X, node.position.Y, node.position.Z))

	if node.parent != nil {
		transform = transform.Mult(node.parent.Transform())
	}

	node.cachedTransform = transform
	node.isTransformDirty = false

	return transform

}

func (node *Node) dirtyTransform() {
	for _, child := range node.children {
		child.dirtyTransform()
	}
	node.isTransformDirty = true
}

// LocalPosition returns the object's local position.
func (node *Node) LocalPosition() Vector {
	return node.position
}

// SetLocalPosition sets the object's local position (position relative to its parent).
func (node *Node) SetLocalPosition(x, y, z float64) {
	node.position.X = x
	node.position.Y = y
	node.position.Z = z
	node.dirtyTransform()
}

// SetLocalPositionVec sets the object's local position using the Vector provided.
func (node *Node) SetLocalPositionVec(position Vector) {
	node.SetLocalPosition(position.X, position.Y, position.Z)
}

// LocalScale returns the object's local scale.
func (node *Node) LocalScale() Vector {
	return node.scale
}

// SetLocalScale sets the object's local scale.
func (node *Node) SetLocalScale(x, y, z float64) {
	node.scale.X = x
	node.scale.Y = y
	node.scale.Z = z
	node.dirtyTransform()
}

// LocalRotation returns the object's local rotation Matrix4.
func (node *Node) LocalRotation() Matrix4 {
	return node.rotation
}

// SetLocalRotation sets the object's local rotation Matrix4 (relative to any parent).
func (node *Node) SetLocalRotation(rotation Matrix4) {
	node.rotation = rotation
	node.dirtyTransform()
}

// WorldPosition returns the node's world position, taking into account its parenting hierarchy.
func (node *Node) WorldPosition() Vector {
	t := node.Transform()
	return NewVector(t[3][0], t[3][1], t[3][2])
}

// WorldRotation returns an absolute rotation Matrix4 representing the object's rotation. Scale is not included.
func (node *Node) WorldRotation() Matrix4 {
	if node.parent != nil {
		return node.rotation.Mult(node.parent.WorldRotation())
	}
	return node.rotation
}

// LookAt rotates the Node so that its -Z axis points at the target world position, keeping +Y upwards.
// Only the rotation changes; the Node's position is left untouched.
func (node *Node) LookAt(target Vector) {

	rotation := NewLookAtMatrix(node.WorldPosition(), target, WorldUp)

	// The look-at matrix is in world space, so we strip the parents' rotation back out.
	if node.parent != nil {
		rotation = rotation.Mult(node.parent.WorldRotation().Transposed())
	}

	node.SetLocalRotation(rotation)

}

// Parent returns the Node's parent. If the Node has no parent, this will return nil.
func (node *Node) Parent() INode {
	return node.parent
}

func (node *Node) setParent(parent INode) {
	node.parent = parent
}

// Root returns the root node in this tree by recursively traversing this node's hierarchy of parents upwards.
// A Node with no parent is its own root.
func (node *Node) Root() INode {
	if node.parent == nil {
		return node
	}
	return node.parent.Root()
}

// addChildren takes the INode the children should be parented to, as embedding structs (Model, Camera) need to pass themselves.
func (node *Node) addChildren(parent INode, children ...INode) {
	for _, child := range children {
		if child.Parent() != nil {
			child.Parent().RemoveChildren(child)
		}
		child.setParent(parent)
		child.dirtyTransform()
		node.children = append(node.children, child)
	}
}

// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (node *Node) AddChildren(children ...INode) {
	node.addChildren(node, children...)
}

// RemoveChildren removes the provided children from this object.
func (node *Node) RemoveChildren(children ...INode) {
	for _, child := range children {
		for i, c := range node.children {
			if c == child {
				child.setParent(nil)
				child.dirtyTransform()
				node.children[i] = nil
				node.children = append(node.children[:i], node.children[i+1:]...)
				break
			}
		}
	}
}

// Unparent unparents the Node from its parent, removing it from the scenegraph.
func (node *Node) Unparent() {
	if node.parent != nil {
		node.parent.RemoveChildren(node)
	}
}

// Children returns a copy of the Node's direct children.
func (node *Node) Children() []INode {
	return append(make([]INode, 0, len(node.children)), node.children...)
}

// ChildrenRecursive returns the Node's recursive children, depth-first.
func (node *Node) ChildrenRecursive() []INode {
	out := make([]INode, 0, len(node.children))
	for _, child := range node.children {
		out = append(out, child)
		out = append(out, child.ChildrenRecursive()...)
	}
	return out
}

// Visible returns whether the Object is visible.
func (node *Node) Visible() bool {
	return node.visible
}

// SetVisible sets the object's visibility. If recursive is true, all recursive children of this Node will have their visibility set the same way.
func (node *Node) SetVisible(visible bool, recursive bool) {
	if recursive {
		for _, child := range node.children {
			child.SetVisible(visible, true)
		}
	}
	node.visible = visible
}
