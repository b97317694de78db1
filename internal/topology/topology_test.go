package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acrovato/gmshcfd/internal/config"
	"github.com/acrovato/gmshcfd/internal/geometry"
)

func diamond(gap float64) [][3]float64 {
	return [][3]float64{
		{1, 0, gap / 2},
		{0.5, 0, 0.1},
		{0, 0, 0},
		{0.5, 0, -0.1},
		{1, 0, -gap / 2},
	}
}

func buildSurface(t *testing.T, gap float64, spans ...float64) *geometry.Surface {
	t.Helper()
	sc := config.SurfaceConfig{Name: "wing", TEThicknessTol: 0.01}
	for _, span := range spans {
		sc.Sections = append(sc.Sections, config.SectionConfig{
			Points:   diamond(gap),
			Chord:    1,
			LEOffset: [3]float64{0, span, 0},
			TESize:   0.01,
			LESize:   0.02,
		})
	}
	cfg := config.Default()
	cfg.Surfaces = []config.SurfaceConfig{sc}
	m, err := geometry.Build(cfg)
	require.NoError(t, err)
	return m.Surfaces[0]
}

func TestResolveSharp(t *testing.T) {
	surf := buildSurface(t, 0, 0, 1, 2)
	topo, err := Resolve(surf, 1e-6)
	require.NoError(t, err)

	assert.Equal(t, Sharp, topo.Kind)
	assert.Len(t, topo.Seam, 3)
	assert.Empty(t, topo.Caps)
	assert.Empty(t, topo.WakeCurve)
	// 4 welded loop points per section, 2 span segments of 4 quads,
	// plus root and tip closures.
	assert.Len(t, topo.Points, 12)
	assert.Len(t, topo.Faces, 10)
	assert.Len(t, topo.Ends, 2)
}

func TestResolveSharpManifold(t *testing.T) {
	surf := buildSurface(t, 0, 0, 1)
	topo, err := Resolve(surf, 1e-6)
	require.NoError(t, err)
	assert.NoError(t, topo.CheckManifold())
}

func TestResolveSharpGapBeyondMergeTolerance(t *testing.T) {
	// Gap below the classification tolerance but above the merge
	// tolerance: classified sharp, but the seam cannot be welded.
	surf := buildSurface(t, 0.005, 0, 1)
	require.Equal(t, geometry.TESharp, surf.Class())

	_, err := Resolve(surf, 1e-6)
	require.Error(t, err)
	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "wing", terr.Surface)
	assert.Equal(t, 0, terr.Section)
	assert.Contains(t, err.Error(), "merge tolerance")
}

func TestResolveBlunt(t *testing.T) {
	surf := buildSurface(t, 0.02, 0, 1, 2, 3)
	topo, err := Resolve(surf, 1e-6)
	require.NoError(t, err)

	assert.Equal(t, Blunt, topo.Kind)
	// One closing cap per loft segment.
	assert.Len(t, topo.Caps, len(surf.Sections)-1)
	require.Len(t, topo.WakeCurve, 4)
	assert.Empty(t, topo.Seam)

	// Wake curve is the locus of trailing-edge midpoints.
	for i, p := range topo.WakeCurve {
		assert.InDelta(t, 1.0, p.X, 1e-12)
		assert.InDelta(t, float64(i), p.Y, 1e-12)
		assert.InDelta(t, 0.0, p.Z, 1e-12)
	}
}

func TestResolveBluntManifold(t *testing.T) {
	surf := buildSurface(t, 0.02, 0, 1, 2)
	topo, err := Resolve(surf, 1e-6)
	require.NoError(t, err)
	assert.NoError(t, topo.CheckManifold())
}

func TestCheckManifoldDetectsDanglingFace(t *testing.T) {
	surf := buildSurface(t, 0.02, 0, 1)
	topo, err := Resolve(surf, 1e-6)
	require.NoError(t, err)

	// Drop the tip closure: its edges now bound a single face.
	topo.Faces = topo.Faces[:len(topo.Faces)-1]
	err = topo.CheckManifold()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bounds 1 faces")
}

func TestPointSizes(t *testing.T) {
	surf := buildSurface(t, 0.02, 0, 1)
	topo, err := Resolve(surf, 1e-6)
	require.NoError(t, err)

	m := len(surf.Sections[0].Points)
	le := surf.Sections[0].LeadingEdgeIndex()
	assert.Equal(t, 0.01, topo.PointSizes[0])    // upper TE
	assert.Equal(t, 0.01, topo.PointSizes[m-1])  // lower TE
	assert.Equal(t, 0.02, topo.PointSizes[le])   // LE
	assert.Equal(t, 0.0, topo.PointSizes[1])     // unconstrained
}

func TestResolveAll(t *testing.T) {
	cfg := config.Default()
	cfg.Surfaces = []config.SurfaceConfig{
		{Name: "wing", TEThicknessTol: 0.01, Sections: []config.SectionConfig{
			{Points: diamond(0), Chord: 1},
			{Points: diamond(0), Chord: 1, LEOffset: [3]float64{0, 1, 0}},
		}},
		{Name: "tail", TEThicknessTol: 0.01, Sections: []config.SectionConfig{
			{Points: diamond(0.05), Chord: 1, LEOffset: [3]float64{5, 0, 1}},
			{Points: diamond(0.05), Chord: 1, LEOffset: [3]float64{5, 1, 1}},
		}},
	}
	m, err := geometry.Build(cfg)
	require.NoError(t, err)

	topos, err := ResolveAll(m, cfg)
	require.NoError(t, err)
	require.Len(t, topos, 2)
	assert.Equal(t, Sharp, topos[0].Kind)
	assert.Equal(t, Blunt, topos[1].Kind)
}

func TestExtendWake(t *testing.T) {
	surf := buildSurface(t, 0.02, 0, 1)
	topo, err := Resolve(surf, 1e-6)
	require.NoError(t, err)

	segs := ExtendWake(topo.WakeCurve, 10)
	require.Len(t, segs, 2)
	assert.InDelta(t, 11.0, segs[0][1].X, 1e-12)
	assert.Equal(t, segs[0][0].Y, segs[0][1].Y)
}
