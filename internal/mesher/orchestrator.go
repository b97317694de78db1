package mesher

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/acrovato/gmshcfd/internal/config"
	"github.com/acrovato/gmshcfd/internal/domain"
	"github.com/acrovato/gmshcfd/internal/geometry"
	"github.com/acrovato/gmshcfd/internal/logger"
	"github.com/acrovato/gmshcfd/internal/sizefield"
	"github.com/acrovato/gmshcfd/internal/topology"
	"github.com/acrovato/gmshcfd/pkg/geom"
)

// Orchestrator sequences the pipeline: geometry build, trailing-edge
// resolution, domain construction, size-field composition, engine
// emission, generation and tagging. Any stage error aborts the run; no
// partial mesh is returned.
type Orchestrator struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Orchestrator {
	return &Orchestrator{cfg: cfg}
}

// Result is a completed run: the generated mesh, the physical tag per
// role name, and the emission statistics.
type Result struct {
	Mesh  *Mesh
	Tags  map[string]int
	Stats Stats
}

// Stats summarizes what was handed to the engine.
type Stats struct {
	Surfaces   int
	CapFaces   map[string]int // trailing-edge closing faces per surface
	WakePanels map[string]int
}

// Prep is a pipeline run stopped short of generation, used for script
// export and validation-only runs.
type Prep struct {
	Domain *domain.Domain
	Field  *sizefield.Field
	Tags   map[string]int
	Stats  Stats
}

// Run executes the full pipeline against the engine.
func (o *Orchestrator) Run(eng Engine) (*Result, error) {
	dom, topos, field, err := o.build()
	if err != nil {
		return nil, err
	}
	em, err := o.emit(eng, dom, topos, field.Background)
	if err != nil {
		return nil, err
	}
	eng.SetSizeField(field.Eval)

	mesh, err := eng.Generate(o.options())
	if err != nil {
		return nil, &GenerationError{Msg: "engine generation failed", Err: err}
	}
	if err := checkMesh(mesh, o.cfg.Mesh.MinQuality); err != nil {
		return nil, err
	}
	tags := tagRoles(eng, em)
	logger.Info("mesh generated",
		zap.Int("elements", len(mesh.Elements)),
		zap.Int("tags", len(tags)))
	return &Result{Mesh: mesh, Tags: tags, Stats: em.stats}, nil
}

// Prepare runs the pipeline up to engine emission and tagging, without
// a generation call.
func (o *Orchestrator) Prepare(b Builder) (*Prep, error) {
	dom, topos, field, err := o.build()
	if err != nil {
		return nil, err
	}
	em, err := o.emit(b, dom, topos, field.Background)
	if err != nil {
		return nil, err
	}
	return &Prep{Domain: dom, Field: field, Tags: tagRoles(b, em), Stats: em.stats}, nil
}

// Check runs every validation stage of the pipeline without emitting
// anything to an engine.
func (o *Orchestrator) Check() (*domain.Domain, []*topology.Topology, error) {
	dom, topos, _, err := o.build()
	return dom, topos, err
}

func (o *Orchestrator) build() (*domain.Domain, []*topology.Topology, *sizefield.Field, error) {
	model, err := geometry.Build(o.cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	topos, err := topology.ResolveAll(model, o.cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	dom, err := domain.NewBuilder(o.cfg).Build(model, topos)
	if err != nil {
		return nil, nil, nil, err
	}
	field, err := sizefield.Build(dom, topos, o.cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return dom, topos, field, nil
}

func (o *Orchestrator) options() Options {
	m := &o.cfg.Mesh
	return Options{
		Algorithm2D: m.Algorithm2D,
		Algorithm3D: m.Algorithm3D,
		Smoothing:   m.Smoothing,
		Optimize:    m.Optimize,
	}
}

// emitted maps the engine entities back to their domain roles.
type emitted struct {
	roleSurfs map[string][]int
	volume    int
	stats     Stats
}

func (o *Orchestrator) emit(b Builder, dom *domain.Domain, topos []*topology.Topology, background float64) (*emitted, error) {
	em := &emitted{
		roleSurfs: map[string][]int{},
		stats: Stats{
			Surfaces:   len(topos),
			CapFaces:   map[string]int{},
			WakePanels: map[string]int{},
		},
	}

	var wallShells []int
	for _, t := range topos {
		surfs, shell := emitShell(b, t)
		em.roleSurfs["wall:"+t.Surface] = surfs
		em.stats.CapFaces[t.Surface] = len(t.Caps)
		wallShells = append(wallShells, shell)
	}

	var ffSurfs []int
	var ffShell int
	switch dom.Farfield.Shape {
	case domain.ShapeSphere:
		ffSurfs, ffShell = emitSphere(b, dom.Farfield, background)
	default:
		ffSurfs, ffShell = emitBox(b, dom.Farfield, background)
	}
	em.roleSurfs["farfield"] = ffSurfs

	em.volume = b.AddVolume(append([]int{ffShell}, wallShells...)...)

	for i, w := range dom.Wakes {
		panels := emitWake(b, w)
		for _, s := range panels {
			b.Embed(s, em.volume)
		}
		em.stats.WakePanels[w.Surface] = len(panels)
		if role, ok := wakeRole(o.cfg.Domain.MergeWake, i, len(dom.Wakes), w.Surface); ok {
			em.roleSurfs[role] = append(em.roleSurfs[role], panels...)
		}
	}
	return em, nil
}

// emitShell renders one resolved boundary: all points with their size
// constraints, the shared edge lattice, and one surface per face. Loft
// faces are curved fillings; end and cap faces are planar.
func emitShell(b Builder, t *topology.Topology) (surfs []int, shell int) {
	pts := make([]int, len(t.Points))
	for i, p := range t.Points {
		pts[i] = b.AddPoint(p, t.PointSizes[i])
	}

	planar := map[int]bool{}
	for _, fi := range t.Ends {
		planar[fi] = true
	}
	for _, fi := range t.Caps {
		planar[fi] = true
	}

	lines := map[[2]int]int{}
	edge := func(a, c int) int {
		if id, ok := lines[[2]int{a, c}]; ok {
			return id
		}
		if id, ok := lines[[2]int{c, a}]; ok {
			return -id
		}
		id := b.AddLine(pts[a], pts[c])
		lines[[2]int{a, c}] = id
		return id
	}

	for fi, f := range t.Faces {
		curves := make([]int, len(f.Verts))
		for i, v := range f.Verts {
			curves[i] = edge(v, f.Verts[(i+1)%len(f.Verts)])
		}
		loop := b.AddCurveLoop(curves)
		var sid int
		if planar[fi] {
			sid = b.AddPlaneSurface(loop)
		} else {
			sid = b.AddSurfaceFilling(loop)
		}
		surfs = append(surfs, sid)
	}
	return surfs, b.AddSurfaceLoop(surfs)
}

// emitBox renders the farfield cube centered on the domain with
// half-extent equal to the standoff radius.
func emitBox(b Builder, ff domain.Farfield, size float64) (surfs []int, shell int) {
	c, r := ff.Center, ff.Radius
	pts := make([]int, 8)
	for i := 0; i < 8; i++ {
		pts[i] = b.AddPoint(geom.Vec3{
			X: c.X + r*cornerDir(i&1 != 0),
			Y: c.Y + r*cornerDir(i&2 != 0),
			Z: c.Z + r*cornerDir(i&4 != 0),
		}, size)
	}
	// Quad per cube face, indexed into the corner array.
	faces := [6][4]int{
		{0, 1, 3, 2}, {4, 6, 7, 5}, // z- z+
		{0, 4, 5, 1}, {2, 3, 7, 6}, // y- y+
		{0, 2, 6, 4}, {1, 5, 7, 3}, // x- x+
	}
	lines := map[[2]int]int{}
	edge := func(a, c int) int {
		if id, ok := lines[[2]int{a, c}]; ok {
			return id
		}
		if id, ok := lines[[2]int{c, a}]; ok {
			return -id
		}
		id := b.AddLine(pts[a], pts[c])
		lines[[2]int{a, c}] = id
		return id
	}
	for _, f := range faces {
		curves := make([]int, 4)
		for i := range f {
			curves[i] = edge(f[i], f[(i+1)%4])
		}
		surfs = append(surfs, b.AddPlaneSurface(b.AddCurveLoop(curves)))
	}
	return surfs, b.AddSurfaceLoop(surfs)
}

// emitSphere renders the farfield sphere as eight octant fillings
// bounded by circle arcs through the six axis poles.
func emitSphere(b Builder, ff domain.Farfield, size float64) (surfs []int, shell int) {
	c, r := ff.Center, ff.Radius
	center := b.AddPoint(c, size)
	poles := [6]int{ // +x -x +y -y +z -z
		b.AddPoint(geom.Vec3{X: c.X + r, Y: c.Y, Z: c.Z}, size),
		b.AddPoint(geom.Vec3{X: c.X - r, Y: c.Y, Z: c.Z}, size),
		b.AddPoint(geom.Vec3{X: c.X, Y: c.Y + r, Z: c.Z}, size),
		b.AddPoint(geom.Vec3{X: c.X, Y: c.Y - r, Z: c.Z}, size),
		b.AddPoint(geom.Vec3{X: c.X, Y: c.Y, Z: c.Z + r}, size),
		b.AddPoint(geom.Vec3{X: c.X, Y: c.Y, Z: c.Z - r}, size),
	}
	arcs := map[[2]int]int{}
	arc := func(a, d int) int {
		if id, ok := arcs[[2]int{a, d}]; ok {
			return id
		}
		if id, ok := arcs[[2]int{d, a}]; ok {
			return -id
		}
		id := b.AddCircleArc(poles[a], center, poles[d])
		arcs[[2]int{a, d}] = id
		return id
	}
	// One triangular patch per octant: x pole, y pole, z pole.
	for _, oct := range [8][3]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	} {
		curves := []int{arc(oct[0], oct[1]), arc(oct[1], oct[2]), arc(oct[2], oct[0])}
		surfs = append(surfs, b.AddSurfaceFilling(b.AddCurveLoop(curves)))
	}
	return surfs, b.AddSurfaceLoop(surfs)
}

// emitWake renders one wake sheet as a quad panel per span segment,
// extruded downstream from the separation curve. Panels are embedded
// by the caller, not part of the volume boundary.
func emitWake(b Builder, w domain.WakeSheet) []int {
	segs := topology.ExtendWake(w.Curve, w.Length)
	near := make([]int, len(segs))
	far := make([]int, len(segs))
	for i, s := range segs {
		near[i] = b.AddPoint(s[0], 0)
		far[i] = b.AddPoint(s[1], 0)
	}
	panels := make([]int, 0, len(segs)-1)
	for i := 0; i+1 < len(segs); i++ {
		curves := []int{
			b.AddLine(near[i], near[i+1]),
			b.AddLine(near[i+1], far[i+1]),
			b.AddLine(far[i+1], far[i]),
			b.AddLine(far[i], near[i]),
		}
		panels = append(panels, b.AddPlaneSurface(b.AddCurveLoop(curves)))
	}
	return panels
}

// wakeRole applies the wake merge policy: per-surface tags by default,
// a single shared tag when merging all, and only the final surface's
// tag when merging into the last.
func wakeRole(policy string, i, n int, surface string) (string, bool) {
	switch policy {
	case "all":
		return "wake", true
	case "last":
		return "wake:" + surface, i == n-1
	default:
		return "wake:" + surface, true
	}
}

// tagRoles assigns one physical group per role plus the fluid volume.
func tagRoles(b Builder, em *emitted) map[string]int {
	roles := make([]string, 0, len(em.roleSurfs))
	for role := range em.roleSurfs {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	tags := make(map[string]int, len(roles)+1)
	for _, role := range roles {
		tags[role] = b.AddPhysicalGroup(2, role, em.roleSurfs[role])
	}
	tags["fluid"] = b.AddPhysicalGroup(3, "fluid", []int{em.volume})
	return tags
}

// checkMesh rejects an empty mesh, a non-manifold element fabric, or
// any element under the quality floor.
func checkMesh(m *Mesh, minQuality float64) error {
	if len(m.Elements) == 0 {
		return &GenerationError{Msg: "engine returned zero elements"}
	}
	use := map[[3]int]int{}
	for _, el := range m.Elements {
		if len(el.Verts) != 4 {
			continue
		}
		for _, f := range tetFaces(el.Verts) {
			use[f]++
			if use[f] > 2 {
				return &GenerationError{
					Entity: el.ID,
					Msg:    fmt.Sprintf("face %v shared by more than two elements, mesh is non-manifold", f),
				}
			}
		}
	}
	for _, el := range m.Elements {
		if el.Quality < minQuality {
			return &GenerationError{
				Entity: el.ID,
				Msg:    fmt.Sprintf("element quality %g below minimum %g", el.Quality, minQuality),
			}
		}
	}
	return nil
}

func tetFaces(v []int) [4][3]int {
	return [4][3]int{
		sorted3(v[1], v[2], v[3]),
		sorted3(v[0], v[2], v[3]),
		sorted3(v[0], v[1], v[3]),
		sorted3(v[0], v[1], v[2]),
	}
}

func sorted3(a, b, c int) [3]int {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}

func cornerDir(high bool) float64 {
	if high {
		return 1
	}
	return -1
}
