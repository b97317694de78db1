// Package domain composes resolved boundaries and a farfield enclosure
// into a volumetric domain description with a role map.
package domain

import (
	"fmt"

	"github.com/acrovato/gmshcfd/internal/topology"
	"github.com/acrovato/gmshcfd/pkg/geom"
)

// Shape selects the farfield enclosure geometry.
type Shape string

const (
	ShapeBox    Shape = "box"
	ShapeSphere Shape = "sphere"
)

// Farfield is the outer domain boundary: a box or sphere centered on
// the bodies, sized by the standoff distance.
type Farfield struct {
	Shape  Shape
	Center geom.Vec3
	// Radius is the sphere radius, or half the box edge length.
	Radius float64
}

// WakeSheet seeds wake refinement behind a blunt trailing edge: the
// separation curve extruded downstream.
type WakeSheet struct {
	Surface string
	Curve   []geom.Vec3
	Length  float64
}

// RoleKind distinguishes boundary surface roles for solver tagging.
type RoleKind int

const (
	RoleWall RoleKind = iota
	RoleWake
	RoleFarfield
)

// Role identifies what a boundary surface means to a downstream solver.
type Role struct {
	Kind    RoleKind
	Surface string // owning surface, empty for farfield
}

func (r Role) String() string {
	switch r.Kind {
	case RoleWall:
		return "wall:" + r.Surface
	case RoleWake:
		return "wake:" + r.Surface
	default:
		return "farfield"
	}
}

// Region is one connected near-body boundary: a single surface, or
// several unioned under merge mode.
type Region struct {
	Topos []*topology.Topology
}

// Names lists the surfaces in the region.
func (r *Region) Names() []string {
	names := make([]string, len(r.Topos))
	for i, t := range r.Topos {
		names[i] = t.Surface
	}
	return names
}

// Domain is the full geometric model handed to the meshing engine: the
// near-body regions, the farfield, wake sheets, and the topology map
// that makes every resulting volume and boundary identifiable.
type Domain struct {
	Regions  []Region
	Farfield Farfield
	Wakes    []WakeSheet

	// SurfaceRoles maps boundary surface ids to roles; VolumeBounds maps
	// the field volume id to its bounding surface ids.
	SurfaceRoles map[int]Role
	VolumeBounds map[int][]int

	WallID        map[string]int // surface name → wall boundary id
	WakeID        map[string]int // surface name → wake sheet id
	FarfieldID    int
	FieldVolumeID int
}

// RoleByName returns the role for a boundary id, formatted for export.
func (d *Domain) RoleByName(id int) (string, error) {
	role, ok := d.SurfaceRoles[id]
	if !ok {
		return "", fmt.Errorf("domain: no role for boundary id %d", id)
	}
	return role.String(), nil
}
