package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"
)

// Asset identifiers.
const (
	Ramp               = "ramp"
	RhinoDefault       = "rhinoDefault"
	RhinoLiftEat1      = "rhinoLiftEat1"
	RhinoLiftEat2      = "rhinoLiftEat2"
	RhinoLiftEat3      = "rhinoLiftEat3"
	RhinoLiftEat4      = "rhinoLiftEat4"
	RhinoLiftMouthOpen = "rhinoLiftMouthOpen"
	RhinoRunLeft1      = "rhinoRunLeft1"
	RhinoRunLeft2      = "rhinoRunLeft2"
	Rock1              = "rock1"
	Rock2              = "rock2"
	SkierCrash         = "skierCrash"
	SkierDown          = "skierDown"
	SkierJump1         = "skierJump1"
	SkierJump2         = "skierJump2"
	SkierJump3         = "skierJump3"
	SkierJump4         = "skierJump4"
	SkierJump5         = "skierJump5"
	SkierLeft          = "skierLeft"
	SkierLeftDown      = "skierLeftDown"
	SkierRight         = "skierRight"
	SkierRightDown     = "skierRightDown"
	Tree               = "tree"
	TreeCluster        = "treeCluster"
)

// Required lists the identifiers the game looks up at runtime.
// LoadAll fails if any of them is missing from the manifest.
var Required = []string{
	Ramp,
	RhinoDefault,
	RhinoLiftEat1, RhinoLiftEat2, RhinoLiftEat3, RhinoLiftEat4,
	RhinoLiftMouthOpen,
	RhinoRunLeft1, RhinoRunLeft2,
	Rock1, Rock2,
	SkierCrash, SkierDown,
	SkierJump1, SkierJump2, SkierJump3, SkierJump4,
	SkierLeft, SkierLeftDown, SkierRight, SkierRightDown,
	Tree, TreeCluster,
}

// ManifestFile is the manifest name inside the sprite filesystem.
const ManifestFile = "manifest.yaml"

//go:embed sprites/*.yaml
var embedded embed.FS

// Manifest maps an asset identifier to a sprite file path.
type Manifest map[string]string

// IDs returns the manifest identifiers sorted for deterministic iteration.
func (m Manifest) IDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Sprites returns the built-in sprite filesystem.
func Sprites() fs.FS {
	sub, err := fs.Sub(embedded, "sprites")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded sprites: %v", err))
	}
	return sub
}

// ReadManifest parses a manifest file from fsys.
func ReadManifest(fsys fs.FS, path string) (Manifest, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("assets: reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: parsing manifest %s: %w", path, err)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("assets: manifest %s is empty", path)
	}
	return m, nil
}

// DefaultManifest returns the manifest of the built-in sprites.
func DefaultManifest() Manifest {
	m, err := ReadManifest(Sprites(), ManifestFile)
	if err != nil {
		panic(err)
	}
	return m
}
