package wiresphere

import (
	"errors"
	"io"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/ext/unlit"
	"github.com/qmuntal/gltf/modeler"
)

// ExportGLTFFile writes the Scene (and the Camera, if it isn't nil) as a binary glTF (.glb) file to the filepath given.
func ExportGLTFFile(path string, scene *Scene, camera *Camera) error {

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := ExportGLTF(file, scene, camera); err != nil {
		file.Close()
		return err
	}

	return file.Close()

}

// ExportGLTF writes the Scene (and the Camera, if it isn't nil) to the Writer as binary glTF data.
// Meshes with wireframe Materials are written as line primitives; all other Meshes are written as triangles.
// Shadeless Materials are marked with the KHR_materials_unlit extension.
func ExportGLTF(w io.Writer, scene *Scene, camera *Camera) error {

	if scene == nil {
		return errors.New("wiresphere: can't export a nil Scene")
	}

	doc := gltf.NewDocument()
	doc.Scenes[0].Name = scene.Name

	exporter := &gltfExporter{
		doc:       doc,
		meshes:    map[gltfMeshKey]int{},
		positions: map[*Mesh]int{},
		materials: map[*Material]int{},
	}

	for _, child := range scene.Root.Children() {
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, exporter.exportNode(child))
	}

	// The Camera doesn't have to be part of the Scene to view it, so it's exported alongside the Scene's nodes if it isn't.
	if camera != nil && camera.Root() != INode(scene.Root) {
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, exporter.exportNode(camera))
	}

	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	return encoder.Encode(doc)

}

// gltfMeshKey identifies an exported glTF mesh. A Mesh shared by Models with different Materials becomes one glTF mesh
// per Material, since the Material decides both the primitive's material and its mode.
type gltfMeshKey struct {
	mesh     *Mesh
	material *Material
}

type gltfExporter struct {
	doc       *gltf.Document
	meshes    map[gltfMeshKey]int
	positions map[*Mesh]int
	materials map[*Material]int
}

func (exporter *gltfExporter) exportNode(node INode) int {

	pos := node.LocalPosition()
	scale := node.LocalScale()

	gltfNode := &gltf.Node{
		Name:        node.Name(),
		Translation: [3]float64{pos.X, pos.Y, pos.Z},
		Rotation:    node.LocalRotation().ToQuaternion().Floats(),
		Scale:       [3]float64{scale.X, scale.Y, scale.Z},
	}

	switch n := node.(type) {
	case *Model:
		if n.Mesh != nil {
			gltfNode.Mesh = gltf.Index(exporter.exportMesh(n.Mesh, n.Material))
		}
	case *Camera:
		gltfNode.Camera = gltf.Index(exporter.exportCamera(n))
	}

	index := len(exporter.doc.Nodes)
	exporter.doc.Nodes = append(exporter.doc.Nodes, gltfNode)

	for _, child := range node.Children() {
		gltfNode.Children = append(gltfNode.Children, exporter.exportNode(child))
	}

	return index

}

func (exporter *gltfExporter) exportMesh(mesh *Mesh, material *Material) int {

	key := gltfMeshKey{mesh: mesh, material: material}

	if index, exists := exporter.meshes[key]; exists {
		return index
	}

	mode := gltf.PrimitiveTriangles
	indices := make([]uint32, 0, len(mesh.Triangles)*3)

	if material != nil && material.Wireframe {
		mode = gltf.PrimitiveLines
		for _, edge := range mesh.Edges() {
			indices = append(indices, uint32(edge[0]), uint32(edge[1]))
		}
	} else {
		for _, tri := range mesh.Triangles {
			indices = append(indices, uint32(tri[0]), uint32(tri[1]), uint32(tri[2]))
		}
	}

	primitive := &gltf.Primitive{
		Mode:       mode,
		Attributes: map[string]int{gltf.POSITION: exporter.exportPositions(mesh)},
		Indices:    gltf.Index(modeler.WriteIndices(exporter.doc, indices)),
	}

	if material != nil {
		primitive.Material = gltf.Index(exporter.exportMaterial(material))
	}

	index := len(exporter.doc.Meshes)
	exporter.doc.Meshes = append(exporter.doc.Meshes, &gltf.Mesh{
		Name:       mesh.Name,
		Primitives: []*gltf.Primitive{primitive},
	})
	exporter.meshes[key] = index

	return index

}

// exportPositions writes the Mesh's vertex positions once, however many glTF meshes end up sharing them.
func (exporter *gltfExporter) exportPositions(mesh *Mesh) int {

	if index, exists := exporter.positions[mesh]; exists {
		return index
	}

	positions := make([][3]float32, 0, len(mesh.Vertices))
	for _, v := range mesh.Vertices {
		positions = append(positions, [3]float32{float32(v.X), float32(v.Y), float32(v.Z)})
	}

	index := modeler.WritePosition(exporter.doc, positions)
	exporter.positions[mesh] = index

	return index

}

func (exporter *gltfExporter) exportMaterial(material *Material) int {

	if index, exists := exporter.materials[material]; exists {
		return index
	}

	c := material.Color

	gltfMat := &gltf.Material{
		Name:        material.Name,
		DoubleSided: !material.BackfaceCulling,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
	}

	if material.Shadeless {
		gltfMat.Extensions = gltf.Extensions{unlit.ExtensionName: &unlit.Unlit{}}
		exporter.useExtension(unlit.ExtensionName)
	}

	index := len(exporter.doc.Materials)
	exporter.doc.Materials = append(exporter.doc.Materials, gltfMat)
	exporter.materials[material] = index

	return index

}

func (exporter *gltfExporter) exportCamera(camera *Camera) int {

	index := len(exporter.doc.Cameras)

	exporter.doc.Cameras = append(exporter.doc.Cameras, &gltf.Camera{
		Name: camera.Name(),
		Perspective: &gltf.Perspective{
			Yfov:        ToRadians(camera.FieldOfView()),
			AspectRatio: gltf.Float(camera.AspectRatio()),
			Znear:       camera.Near(),
			Zfar:        gltf.Float(camera.Far()),
		},
	})

	return index

}

func (exporter *gltfExporter) useExtension(name string) {
	for _, ext := range exporter.doc.ExtensionsUsed {
		if ext == name {
			return
		}
	}
	exporter.doc.ExtensionsUsed = append(exporter.doc.ExtensionsUsed, name)
}
