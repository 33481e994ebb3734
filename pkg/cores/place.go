package cores

import (
	"fmt"
	"math"
	"sort"

	"github.com/dgameiro/floorgen/pkg/corridor"
	"github.com/dgameiro/floorgen/pkg/geometry"
)

// Placement is the outcome of core placement along with the measurements the
// validator and the metrics report reuse.
type Placement struct {
	Cores []Core

	// Separation is the center distance between the two extreme cores;
	// SeparationRequired is the floor-diagonal fraction it must meet.
	Separation         float64
	SeparationRequired float64

	// MaxTravel is the worst-case travel distance after placement.
	MaxTravel float64

	plan   corridor.Plan
	config Config
}

// Place runs the deterministic placement sequence: two end cores anchored on
// the dead-end limit, an exit-separation check, then middle cores inserted at
// the widest gap until the travel limit holds or the core cap is reached.
func Place(plan corridor.Plan, cfg Config, eg EgressSpec) (*Placement, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := eg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Depth > plan.BandDepth()+geometry.Epsilon {
		return nil, fmt.Errorf("core depth %.2f exceeds rentable band depth %.2f",
			cfg.Depth, plan.BandDepth())
	}

	l := plan.Length
	half := l / 2
	corridorWidth := plan.Corridor.Depth

	// End cores sit with their inner edge on the dead-end boundary so the
	// corridor stub past each core stays within the limit.
	leftX := -half + eg.DeadEndLimit - cfg.Width
	if leftX < -half {
		leftX = -half
	}
	rightX := half - eg.DeadEndLimit
	if rightX+cfg.Width > half {
		rightX = half - cfg.Width
	}

	p := &Placement{plan: plan, config: cfg}
	p.Cores = append(p.Cores,
		Core{Rect: coreRect(leftX, plan, cfg), Side: cfg.Side, Kind: KindEnd},
		Core{Rect: coreRect(rightX, plan, cfg), Side: cfg.Side, Kind: KindEnd},
	)

	diagonal := math.Hypot(plan.Length, plan.Depth)
	p.SeparationRequired = diagonal * eg.SeparationFactor()
	p.Separation = p.Cores[1].Rect.CenterX() - p.Cores[0].Rect.CenterX()
	if p.Separation < p.SeparationRequired {
		return nil, &InfeasibleError{
			Reason:             "separation",
			Separation:         p.Separation,
			SeparationRequired: p.SeparationRequired,
			CoreCount:          len(p.Cores),
		}
	}
	if p.Cores[0].Rect.MaxX() > p.Cores[1].Rect.X-corridorWidth+geometry.Epsilon {
		return nil, &InfeasibleError{
			Reason:    "end cores overlap",
			CoreCount: len(p.Cores),
		}
	}

	// Insert middle cores until travel clears the limit.
	for {
		p.MaxTravel = p.maxTravel()
		if p.MaxTravel <= eg.TravelDistanceLimit {
			break
		}
		if len(p.Cores) >= eg.CoreCap() {
			return nil, &InfeasibleError{
				Reason:      "travel",
				MaxTravel:   p.MaxTravel,
				TravelLimit: eg.TravelDistanceLimit,
				CoreCount:   len(p.Cores),
			}
		}
		if !p.insertMiddleCore(corridorWidth) {
			return nil, &InfeasibleError{
				Reason:      "travel",
				MaxTravel:   p.MaxTravel,
				TravelLimit: eg.TravelDistanceLimit,
				CoreCount:   len(p.Cores),
			}
		}
	}

	return p, nil
}

// coreRect builds the core rectangle at the given left edge, seated against
// the corridor on the configured side.
func coreRect(x float64, plan corridor.Plan, cfg Config) geometry.Rect {
	if cfg.Side == corridor.SideNorth {
		return geometry.Rect{X: x, Y: plan.North.YMin, Width: cfg.Width, Depth: cfg.Depth}
	}
	return geometry.Rect{X: x, Y: plan.South.YMax - cfg.Depth, Width: cfg.Width, Depth: cfg.Depth}
}

// insertMiddleCore places a core at the midpoint of the widest center gap,
// shifting right to honor the minimum gap if it would overlap. Returns false
// when no non-overlapping position exists.
func (p *Placement) insertMiddleCore(minGap float64) bool {
	sort.SliceStable(p.Cores, func(i, j int) bool {
		return p.Cores[i].Rect.X < p.Cores[j].Rect.X
	})

	gapIdx, gapWidth := 0, 0.0
	for i := 0; i+1 < len(p.Cores); i++ {
		w := p.Cores[i+1].Rect.CenterX() - p.Cores[i].Rect.CenterX()
		if w > gapWidth {
			gapWidth = w
			gapIdx = i
		}
	}

	mid := (p.Cores[gapIdx].Rect.CenterX() + p.Cores[gapIdx+1].Rect.CenterX()) / 2
	x := mid - p.config.Width/2

	left := p.Cores[gapIdx].Rect
	right := p.Cores[gapIdx+1].Rect
	if x < left.MaxX()+minGap {
		x = left.MaxX() + minGap
	}
	if x+p.config.Width > right.X-minGap {
		return false
	}

	p.Cores = append(p.Cores, Core{
		Rect: coreRect(x, p.plan, p.config),
		Side: p.config.Side,
		Kind: KindMiddle,
	})
	sort.SliceStable(p.Cores, func(i, j int) bool {
		return p.Cores[i].Rect.X < p.Cores[j].Rect.X
	})
	return true
}

// maxTravel evaluates the worst-case travel distance over both rentable
// bands. Along the corridor the candidates are the building ends and the
// midpoints between adjacent cores; perpendicular travel walks from the far
// edge of the band to the corridor, across it when the band faces away from
// the cores, and through the core to its far edge.
func (p *Placement) maxTravel() float64 {
	candidates := []float64{-p.plan.Length / 2, p.plan.Length / 2}
	for i := 0; i+1 < len(p.Cores); i++ {
		candidates = append(candidates,
			(p.Cores[i].Rect.CenterX()+p.Cores[i+1].Rect.CenterX())/2)
	}

	worstAlong := 0.0
	for _, x := range candidates {
		d := p.alongToNearestCore(x)
		if d > worstAlong {
			worstAlong = d
		}
	}

	// The band opposite the cores pays the corridor crossing and dominates.
	return worstAlong + p.PerpendicularTravel(p.config.Side.Opposite())
}

// alongToNearestCore returns the along-corridor distance from x to the
// nearest core center.
func (p *Placement) alongToNearestCore(x float64) float64 {
	best := math.Inf(1)
	for _, c := range p.Cores {
		if d := math.Abs(x - c.Rect.CenterX()); d < best {
			best = d
		}
	}
	return best
}

// PerpendicularTravel returns the fixed vertical walk from the far edge of a
// band to the far edge of a core: through the band, across the corridor when
// the band faces away from the cores, and through the core depth.
func (p *Placement) PerpendicularTravel(side corridor.Side) float64 {
	walk := p.plan.BandDepth() + p.config.Depth
	if side != p.config.Side {
		walk += p.plan.Corridor.Depth
	}
	return walk
}

// TravelFrom measures travel distance from a point on a rentable band: the
// along-corridor Manhattan leg to the nearest core plus the vertical walk
// from y to the corridor edge, across the corridor if needed, and through
// the core.
func (p *Placement) TravelFrom(x, y float64, side corridor.Side) float64 {
	vertical := math.Abs(y) - p.plan.Corridor.Depth/2
	if vertical < 0 {
		vertical = 0
	}
	vertical += p.config.Depth
	if side != p.config.Side {
		vertical += p.plan.Corridor.Depth
	}
	return p.alongToNearestCore(x) + vertical
}

// DistanceToChoice returns the along-corridor distance from x to the nearest
// point with cores reachable in both directions (the span between the extreme
// core centers). Points inside the span are already at a choice point.
func (p *Placement) DistanceToChoice(x float64) float64 {
	minX := math.Inf(1)
	maxX := math.Inf(-1)
	for _, c := range p.Cores {
		cx := c.Rect.CenterX()
		if cx < minX {
			minX = cx
		}
		if cx > maxX {
			maxX = cx
		}
	}
	switch {
	case x < minX:
		return minX - x
	case x > maxX:
		return x - maxX
	default:
		return 0
	}
}

// DeadEndDistances returns the corridor stub length past each end core, left
// then right.
func (p *Placement) DeadEndDistances() (left, right float64) {
	half := p.plan.Length / 2
	minX, maxX := half, -half
	for _, c := range p.Cores {
		if c.Rect.X < minX {
			minX = c.Rect.X
		}
		if c.Rect.MaxX() > maxX {
			maxX = c.Rect.MaxX()
		}
	}
	return minX + half, half - maxX
}

// CoreSide returns the corridor side the cores occupy.
func (p *Placement) CoreSide() corridor.Side { return p.config.Side }

// CoreDepth returns the configured core depth.
func (p *Placement) CoreDepth() float64 { return p.config.Depth }
