package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/warpfield/pkg/components"
	"github.com/decker502/warpfield/pkg/ecs"
	"github.com/decker502/warpfield/pkg/render"
)

func newTestNebula(t *testing.T) (*ecs.EntityManager, *NebulaSystem) {
	t.Helper()
	em := ecs.NewEntityManager()
	return em, NewNebulaSystem(em, nil, 800, 600, rand.New(rand.NewSource(5)))
}

func nebulaOrbs(em *ecs.EntityManager) []*components.NebulaOrbComponent {
	var orbs []*components.NebulaOrbComponent
	for _, id := range ecs.GetEntitiesWith1[*components.NebulaOrbComponent](em) {
		orb, _ := ecs.GetComponent[*components.NebulaOrbComponent](em, id)
		orbs = append(orbs, orb)
	}
	return orbs
}

func TestNebulaCreatesOrbs(t *testing.T) {
	em, _ := newTestNebula(t)

	orbs := nebulaOrbs(em)
	if len(orbs) != 3 {
		t.Fatalf("created %d orbs, want 3", len(orbs))
	}
	for i, orb := range orbs {
		if orb.Index != i {
			t.Errorf("orb %d Index = %d", i, orb.Index)
		}
		if math.Abs(orb.DriftX) > 40 || math.Abs(orb.DriftY) > 30 {
			t.Errorf("orb %d drift (%v, %v) exceeds (±40, ±30)", i, orb.DriftX, orb.DriftY)
		}
		if orb.BreathScale < 1.15 || orb.BreathScale > 1.25 {
			t.Errorf("orb %d breath scale %v outside [1.15, 1.25]", i, orb.BreathScale)
		}
		if want := float64(i) * 0.4; orb.FadeIn.Delay != want {
			t.Errorf("orb %d fade delay = %v, want %v", i, orb.FadeIn.Delay, want)
		}
	}
}

func TestNebulaFadeIn(t *testing.T) {
	em, ns := newTestNebula(t)
	rec := render.NewRecorder(800, 600)

	ns.Draw(rec)
	if len(rec.Ops) != 0 {
		t.Fatalf("invisible orbs drew %d ops", len(rec.Ops))
	}

	ns.Update(10)
	for i, orb := range nebulaOrbs(em) {
		if _, _, _, alpha := ns.OrbState(orb); math.Abs(alpha-0.8) > 1e-9 {
			t.Errorf("orb %d alpha after fade-in = %v, want 0.8", i, alpha)
		}
	}

	ns.Draw(rec)
	if n := rec.Count(render.OpFillCircle); n != 3*6 {
		t.Fatalf("circles = %d, want 18 (3 orbs x 6 rings)", n)
	}
	// 每个光团的同心圆由外向内
	for orb := 0; orb < 3; orb++ {
		for k := 1; k < 6; k++ {
			outer, inner := rec.Ops[orb*6+k-1], rec.Ops[orb*6+k]
			if inner.Radius >= outer.Radius {
				t.Errorf("orb %d ring %d radius %v not inside %v", orb, k, inner.Radius, outer.Radius)
			}
		}
	}
}

func TestNebulaMotionBounds(t *testing.T) {
	em, ns := newTestNebula(t)

	for i := 0; i < 60*30; i++ {
		ns.Update(1.0 / 60)
		for j, orb := range nebulaOrbs(em) {
			cx, cy, radius, alpha := ns.OrbState(orb)
			ax, ay := orb.AnchorX*800, orb.AnchorY*600
			if math.Abs(cx-ax) > math.Abs(orb.DriftX)+1e-9 || math.Abs(cy-ay) > math.Abs(orb.DriftY)+1e-9 {
				t.Fatalf("orb %d drifted to (%v, %v), anchor (%v, %v)", j, cx, cy, ax, ay)
			}
			if radius < orb.Radius-1e-9 || radius > orb.Radius*orb.BreathScale+1e-9 {
				t.Fatalf("orb %d radius %v outside [%v, %v]", j, radius, orb.Radius, orb.Radius*orb.BreathScale)
			}
			if alpha < 0 || alpha > 0.8+1e-9 {
				t.Fatalf("orb %d alpha %v outside [0, 0.8]", j, alpha)
			}
		}
	}
}

func TestNebulaReducedAndResize(t *testing.T) {
	em, ns := newTestNebula(t)
	ns.Update(10)

	ns.SetReduced(true)
	rec := render.NewRecorder(800, 600)
	ns.Draw(rec)
	if len(rec.Ops) != 0 {
		t.Errorf("reduced nebula drew %d ops", len(rec.Ops))
	}

	ns.SetReduced(false)
	orb := nebulaOrbs(em)[0]
	before, _, _, _ := ns.OrbState(orb)
	ns.Resize(1600, 1200)
	after, _, _, _ := ns.OrbState(orb)
	if math.Abs((after-before)-orb.AnchorX*800) > 1e-9 {
		t.Errorf("center x moved %v, want anchor shift %v", after-before, orb.AnchorX*800)
	}
}
