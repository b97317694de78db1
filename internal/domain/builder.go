package domain

import (
	"math"

	"go.uber.org/zap"

	"github.com/acrovato/gmshcfd/internal/config"
	"github.com/acrovato/gmshcfd/internal/geometry"
	"github.com/acrovato/gmshcfd/internal/logger"
	"github.com/acrovato/gmshcfd/internal/topology"
	"github.com/acrovato/gmshcfd/pkg/geom"
)

// Builder composes near-body boundaries and the farfield into a Domain.
type Builder struct {
	cfg *config.Config
}

// NewBuilder returns a Builder for the given configuration.
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build verifies pairwise non-intersection (or unions under merge mode),
// sizes the farfield from the model extent, checks the clearance
// invariant, attaches wake sheets and produces the topology map.
func (b *Builder) Build(m *geometry.Model, topos []*topology.Topology) (*Domain, error) {
	refChord := m.RefChord()
	standoff := b.cfg.Domain.StandoffFactor * refChord

	regions, err := b.groupRegions(m, topos)
	if err != nil {
		return nil, err
	}

	d := &Domain{Regions: regions}
	d.Farfield = Farfield{
		Shape:  Shape(b.cfg.Domain.Shape),
		Center: m.BBox().Center(),
		Radius: standoff,
	}
	if err := b.checkClearance(m, d.Farfield, standoff); err != nil {
		return nil, err
	}

	for _, t := range topos {
		if t.Kind != topology.Blunt {
			continue
		}
		length, werr := b.wakeLength(t, d.Farfield, standoff)
		if werr != nil {
			return nil, werr
		}
		d.Wakes = append(d.Wakes, WakeSheet{
			Surface: t.Surface,
			Curve:   t.WakeCurve,
			Length:  length,
		})
	}

	b.assignIDs(d, topos)
	logger.Info("domain built",
		zap.Int("regions", len(d.Regions)),
		zap.Int("wakes", len(d.Wakes)),
		zap.String("farfield", string(d.Farfield.Shape)),
		zap.Float64("standoff", standoff))
	return d, nil
}

// groupRegions checks every surface pair for intersection. With merge
// disabled any intersecting pair is an error naming both surfaces; with
// merge enabled intersecting surfaces are unioned into one region.
func (b *Builder) groupRegions(m *geometry.Model, topos []*topology.Topology) ([]Region, error) {
	n := len(m.Surfaces)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !surfacesIntersect(m.Surfaces[i], m.Surfaces[j]) {
				continue
			}
			if !b.cfg.Domain.Merge {
				return nil, geometry.PairError(m.Surfaces[i].Name, m.Surfaces[j].Name,
					"near-body boundaries intersect and merge mode is disabled")
			}
			logger.Debug("merging intersecting boundaries",
				zap.String("a", m.Surfaces[i].Name),
				zap.String("b", m.Surfaces[j].Name))
			parent[find(i)] = find(j)
		}
	}

	groups := make(map[int]*Region)
	var order []int
	for i := 0; i < n; i++ {
		root := find(i)
		g, ok := groups[root]
		if !ok {
			g = &Region{}
			groups[root] = g
			order = append(order, root)
		}
		g.Topos = append(g.Topos, topos[i])
	}
	regions := make([]Region, 0, len(order))
	for _, root := range order {
		regions = append(regions, *groups[root])
	}
	return regions, nil
}

// checkClearance enforces the containment invariant: every surface must
// sit strictly inside the farfield with the configured margin.
func (b *Builder) checkClearance(m *geometry.Model, ff Farfield, standoff float64) error {
	margin := b.cfg.Domain.ClearanceFactor * standoff
	for _, s := range m.Surfaces {
		bb := s.BBox()
		switch ff.Shape {
		case ShapeSphere:
			// Farthest box corner from the center.
			far := 0.0
			for _, x := range []float64{bb.Min.X, bb.Max.X} {
				for _, y := range []float64{bb.Min.Y, bb.Max.Y} {
					for _, z := range []float64{bb.Min.Z, bb.Max.Z} {
						d := math.Sqrt((x-ff.Center.X)*(x-ff.Center.X) +
							(y-ff.Center.Y)*(y-ff.Center.Y) +
							(z-ff.Center.Z)*(z-ff.Center.Z))
						if d > far {
							far = d
						}
					}
				}
			}
			if far > ff.Radius-margin {
				return geometry.PairError(s.Name, "farfield",
					"surface extends to %g from the domain center, within the clearance margin of radius %g", far, ff.Radius)
			}
		default:
			outer := boxBBox(ff)
			if !outer.Contains(bb, margin) {
				return geometry.PairError(s.Name, "farfield",
					"surface violates the clearance margin %g of the farfield box", margin)
			}
		}
	}
	return nil
}

// assignIDs gives every boundary a stable id and fills the role and
// topology maps consumed after meshing.
func (b *Builder) assignIDs(d *Domain, topos []*topology.Topology) {
	d.SurfaceRoles = make(map[int]Role)
	d.VolumeBounds = make(map[int][]int)
	d.WallID = make(map[string]int)
	d.WakeID = make(map[string]int)

	id := 1
	var bounds []int
	for _, t := range topos {
		d.WallID[t.Surface] = id
		d.SurfaceRoles[id] = Role{Kind: RoleWall, Surface: t.Surface}
		bounds = append(bounds, id)
		id++
	}
	for _, w := range d.Wakes {
		d.WakeID[w.Surface] = id
		d.SurfaceRoles[id] = Role{Kind: RoleWake, Surface: w.Surface}
		// Wake sheets are embedded in the volume, not part of its
		// boundary, so they do not join the bounds list.
		id++
	}
	d.FarfieldID = id
	d.SurfaceRoles[id] = Role{Kind: RoleFarfield}
	bounds = append(bounds, id)
	id++

	d.FieldVolumeID = id
	d.VolumeBounds[d.FieldVolumeID] = bounds
}

// wakeLength resolves the downstream extent of a wake sheet. Wakes
// extrude from the trailing edge, so the default standoff length is
// clamped to end at the downstream farfield face; an explicit length
// that would push any endpoint outside the farfield is an error, since
// an embedded surface must stay inside the volume.
func (b *Builder) wakeLength(t *topology.Topology, ff Farfield, standoff float64) (float64, error) {
	room := wakeRoom(ff, t.WakeCurve)
	length := b.cfg.Domain.WakeLength
	if length == 0 {
		return min(standoff, room), nil
	}
	if length > room+1e-9*standoff {
		return 0, geometry.PairError(t.Surface, "farfield",
			"wake length %g extends past the downstream farfield boundary (at most %g fits)", length, room)
	}
	return length, nil
}

// wakeRoom returns the longest downstream extrusion that keeps every
// separation point inside the farfield.
func wakeRoom(ff Farfield, curve []geom.Vec3) float64 {
	room := math.Inf(1)
	for _, p := range curve {
		var r float64
		switch ff.Shape {
		case ShapeSphere:
			dy := p.Y - ff.Center.Y
			dz := p.Z - ff.Center.Z
			rem := ff.Radius*ff.Radius - dy*dy - dz*dz
			if rem < 0 {
				rem = 0
			}
			r = ff.Center.X - p.X + math.Sqrt(rem)
		default:
			r = ff.Center.X + ff.Radius - p.X
		}
		if r < room {
			room = r
		}
	}
	if room < 0 {
		return 0
	}
	return room
}

// boxBBox returns the axis-aligned extent of a box farfield.
func boxBBox(ff Farfield) geom.BBox {
	r := geom.Vec3{X: ff.Radius, Y: ff.Radius, Z: ff.Radius}
	return geom.BBox{Min: ff.Center.Sub(r), Max: ff.Center.Add(r)}
}
