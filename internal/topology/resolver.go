package topology

import (
	"go.uber.org/zap"

	"github.com/acrovato/gmshcfd/internal/config"
	"github.com/acrovato/gmshcfd/internal/geometry"
	"github.com/acrovato/gmshcfd/internal/logger"
	"github.com/acrovato/gmshcfd/pkg/geom"
)

// ResolveAll resolves every surface of the model. The merge tolerance
// for sharp seams comes from the mesh configuration, relative to each
// surface's root chord.
func ResolveAll(m *geometry.Model, cfg *config.Config) ([]*Topology, error) {
	topos := make([]*Topology, 0, len(m.Surfaces))
	for _, s := range m.Surfaces {
		topo, err := Resolve(s, cfg.Mesh.MergeTolerance*s.RootChord())
		if err != nil {
			return nil, err
		}
		topos = append(topos, topo)
	}
	return topos, nil
}

// Resolve builds the closed boundary shell for one surface, dispatching
// on its trailing-edge class. mergeTol is the absolute gap that can
// still be welded into a sharp seam.
func Resolve(s *geometry.Surface, mergeTol float64) (*Topology, error) {
	var (
		topo *Topology
		err  error
	)
	switch s.Class() {
	case geometry.TESharp:
		topo, err = resolveSharp(s, mergeTol)
	case geometry.TEBlunt:
		topo = resolveBlunt(s)
	}
	if err != nil {
		return nil, err
	}
	if merr := topo.CheckManifold(); merr != nil {
		return nil, merr
	}
	logger.Debug("trailing edge resolved",
		zap.String("surface", s.Name),
		zap.String("kind", topo.Kind.String()),
		zap.Int("faces", len(topo.Faces)),
		zap.Int("caps", len(topo.Caps)))
	return topo, nil
}

// resolveSharp welds the two trailing-edge point chains into a single
// seam per section. Each section loop drops its duplicate trailing-edge
// point; the seam vertex is the gap midpoint.
func resolveSharp(s *geometry.Surface, mergeTol float64) (*Topology, error) {
	nSec := len(s.Sections)
	m := len(s.Sections[0].Points)
	loop := m - 1 // welded loop length

	topo := &Topology{Surface: s.Name, Kind: Sharp, NumSections: nSec, LoopLen: loop}
	for i := range s.Sections {
		sec := &s.Sections[i]
		if gap := sec.TEGap(); gap > mergeTol {
			return nil, errf(s.Name, i,
				"trailing edge gap %g exceeds merge tolerance %g, section cannot be closed", gap, mergeTol)
		}
		seam := sec.TEMid()
		topo.Seam = append(topo.Seam, seam)
		topo.LECurve = append(topo.LECurve, sec.Points[sec.LeadingEdgeIndex()])

		le := sec.LeadingEdgeIndex()
		for j := 0; j < loop; j++ {
			p := sec.Points[j]
			if j == 0 {
				p = seam
			}
			topo.Points = append(topo.Points, p)
			switch j {
			case 0:
				topo.PointSizes = append(topo.PointSizes, sec.TESize)
			case le:
				topo.PointSizes = append(topo.PointSizes, sec.LESize)
			default:
				topo.PointSizes = append(topo.PointSizes, 0)
			}
		}
	}

	vid := func(i, j int) int { return i*loop + j }

	// Loft quads between adjacent sections, wrapping through the seam.
	for i := 0; i < nSec-1; i++ {
		for j := 0; j < loop; j++ {
			jn := (j + 1) % loop
			topo.Loft = append(topo.Loft, len(topo.Faces))
			topo.Faces = append(topo.Faces, Face{Verts: []int{
				vid(i, j), vid(i, jn), vid(i+1, jn), vid(i+1, j),
			}})
		}
	}
	addEndFaces(topo, nSec, loop, vid)
	return topo, nil
}

// resolveBlunt keeps the open section loops and closes them with a cap
// face per span segment, one quad spanning the finite-thickness trailing
// edge. The wake-separation curve is the trailing-edge midpoint locus.
func resolveBlunt(s *geometry.Surface) *Topology {
	nSec := len(s.Sections)
	m := len(s.Sections[0].Points)

	topo := &Topology{Surface: s.Name, Kind: Blunt, NumSections: nSec, LoopLen: m}
	for i := range s.Sections {
		sec := &s.Sections[i]
		topo.WakeCurve = append(topo.WakeCurve, sec.TEMid())
		topo.LECurve = append(topo.LECurve, sec.Points[sec.LeadingEdgeIndex()])

		le := sec.LeadingEdgeIndex()
		for j := 0; j < m; j++ {
			topo.Points = append(topo.Points, sec.Points[j])
			switch j {
			case 0, m - 1:
				topo.PointSizes = append(topo.PointSizes, sec.TESize)
			case le:
				topo.PointSizes = append(topo.PointSizes, sec.LESize)
			default:
				topo.PointSizes = append(topo.PointSizes, 0)
			}
		}
	}

	vid := func(i, j int) int { return i*m + j }

	// Loft quads over the open chain; the trailing-edge segment is
	// closed by the caps instead.
	for i := 0; i < nSec-1; i++ {
		for j := 0; j < m-1; j++ {
			topo.Loft = append(topo.Loft, len(topo.Faces))
			topo.Faces = append(topo.Faces, Face{Verts: []int{
				vid(i, j), vid(i, j+1), vid(i+1, j+1), vid(i+1, j),
			}})
		}
		// Trailing-edge cap for this span segment.
		topo.Caps = append(topo.Caps, len(topo.Faces))
		topo.Faces = append(topo.Faces, Face{Verts: []int{
			vid(i, 0), vid(i+1, 0), vid(i+1, m-1), vid(i, m-1),
		}})
	}
	addEndFaces(topo, nSec, m, vid)
	return topo
}

// addEndFaces closes the shell at the root and tip sections with one
// polygon face each.
func addEndFaces(topo *Topology, nSec, loop int, vid func(i, j int) int) {
	root := make([]int, loop)
	tip := make([]int, loop)
	for j := 0; j < loop; j++ {
		root[j] = vid(0, loop-1-j) // reversed so the normal points outward
		tip[j] = vid(nSec-1, j)
	}
	topo.Ends = append(topo.Ends, len(topo.Faces))
	topo.Faces = append(topo.Faces, Face{Verts: root})
	topo.Ends = append(topo.Ends, len(topo.Faces))
	topo.Faces = append(topo.Faces, Face{Verts: tip})
}

// ExtendWake returns the wake curve extruded downstream by the given
// length: for each separation point, a straight segment in +x.
func ExtendWake(curve []geom.Vec3, length float64) [][2]geom.Vec3 {
	segs := make([][2]geom.Vec3, len(curve))
	for i, p := range curve {
		segs[i] = [2]geom.Vec3{p, p.Add(geom.Vec3{X: length})}
	}
	return segs
}
