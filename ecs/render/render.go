package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
	"github.com/jblob-devs/rymech-sub001/serpent"
	"golang.org/x/image/colornames"
)

const (
	breathRays     = 9
	healthBarWidth = 400
)

// RenderSystem draws the arena with vector primitives. Serpents and their
// hazards go first, then particles, the player and the boss health bar.
type RenderSystem struct {
	Debug bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// view maps world coordinates to screen coordinates.
type view struct {
	camX, camY float64
	offX, offY float64
	zoom       float64
	halfW      float64
	halfH      float64
}

func (v view) point(p cp.Vector) (float32, float32) {
	x := (p.X-v.camX)*v.zoom + v.halfW + v.offX
	y := (p.Y-v.camY)*v.zoom + v.halfH + v.offY
	return float32(x), float32(y)
}

func (v view) length(l float64) float32 {
	return float32(l * v.zoom)
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	v := r.view(w, screen)

	ecs.ForEach(w, component.SerpentBossComponent.Kind(), func(e ecs.Entity, sb *component.SerpentBoss) {
		if sb.Boss == nil {
			return
		}
		flash := false
		if wf, ok := ecs.Get(w, e, component.WhiteFlashComponent.Kind()); ok {
			flash = wf.On
		}
		drawTendrils(screen, v, sb.Boss, sb.TendrilColor)
		drawBreath(screen, v, sb.Boss)
		drawSerpent(screen, v, sb.Boss, sb.BodyColor, flash)
	})

	ecs.ForEach2(w,
		component.ParticleComponent.Kind(),
		component.TransformComponent.Kind(),
		func(_ ecs.Entity, p *component.Particle, t *component.Transform) {
			alpha := 1.0
			if p.Lifetime > 0 {
				alpha = math.Max(0, 1-p.Age/p.Lifetime)
			}
			x, y := v.point(cp.Vector{X: t.X, Y: t.Y})
			vector.FillCircle(screen, x, y, v.length(p.Size), fade(p.Color, alpha), true)
		})

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.TransformComponent.Kind(),
		component.HealthComponent.Kind(),
		func(e ecs.Entity, p *component.Player, t *component.Transform, h *component.Health) {
			c := colornames.Deepskyblue
			if wf, ok := ecs.Get(w, e, component.WhiteFlashComponent.Kind()); ok && wf.On {
				c = colornames.White
			}
			if !h.IsAlive() {
				c = colornames.Dimgray
			}
			x, y := v.point(cp.Vector{X: t.X, Y: t.Y})
			vector.FillCircle(screen, x, y, v.length(p.Radius), c, true)
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %.0f/%.0f", h.Current, h.Max), 10, screen.Bounds().Dy()-20)
		})

	r.drawBossBar(w, screen)
}

func (r *RenderSystem) view(w *ecs.World, screen *ebiten.Image) view {
	b := screen.Bounds()
	v := view{zoom: 1, halfW: float64(b.Dx()) / 2, halfH: float64(b.Dy()) / 2}

	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		v.camX, v.camY = t.X, t.Y
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok {
		if cam.Zoom > 0 {
			v.zoom = cam.Zoom
		}
		v.offX, v.offY = cam.OffsetX, cam.OffsetY
	}
	return v
}

func drawSerpent(screen *ebiten.Image, v view, b *serpent.Boss, body color.RGBA, flash bool) {
	if flash {
		body = colornames.White
	}
	if _, ok := b.Phase.(*serpent.Teleport); ok {
		body = fade(body, 0.5)
	}

	// Tail first so the head ends up on top.
	for i := serpent.SegmentCount - 1; i >= 0; i-- {
		seg := b.Segments[i]
		x, y := v.point(seg.Position)
		radius := v.length(seg.Size / 2)

		// Spikes on every other segment, perpendicular to the body.
		if i%2 == 1 {
			for _, side := range []float64{-1, 1} {
				dir := cp.ForAngle(seg.Rotation + side*math.Pi/2)
				tip := seg.Position.Add(dir.Mult(seg.Size * 0.8))
				tx, ty := v.point(tip)
				vector.StrokeLine(screen, x, y, tx, ty, v.length(3), colornames.Darkslategray, true)
			}
		}

		c := body
		if i == 0 {
			c = shade(body, 1.2)
		}
		vector.FillCircle(screen, x, y, radius, c, true)
		vector.StrokeCircle(screen, x, y, radius, 2, shade(body, 0.6), true)
	}

	head := b.Head()
	for _, side := range []float64{-0.5, 0.5} {
		eye := head.Position.Add(cp.ForAngle(head.Rotation + side).Mult(head.Size * 0.25))
		ex, ey := v.point(eye)
		vector.FillCircle(screen, ex, ey, v.length(head.Size*0.07), colornames.Yellow, true)
	}
}

func drawTendrils(screen *ebiten.Image, v view, b *serpent.Boss, c color.RGBA) {
	tun := b.Tuning()
	for _, td := range b.Tendrils {
		sx, sy := v.point(td.Start)
		tx, ty := v.point(td.Tip())
		ex, ey := v.point(td.End)

		// Telegraph the full reach, then the revealed, damaging part.
		vector.StrokeLine(screen, sx, sy, ex, ey, 1, fade(c, 0.25), true)
		col := fade(c, 0.5)
		if td.Progress > tun.HitWindowStart && td.Progress < tun.HitWindowEnd {
			col = shade(c, 1.4)
		}
		vector.StrokeLine(screen, sx, sy, tx, ty, v.length(td.Width), col, true)
	}
}

func drawBreath(screen *ebiten.Image, v view, b *serpent.Boss) {
	br, ok := b.Phase.(*serpent.Breath)
	if !ok {
		return
	}
	tun := b.Tuning()
	mouth := b.Head().Position
	mx, my := v.point(mouth)
	for i := 0; i < breathRays; i++ {
		t := float64(i)/float64(breathRays-1)*2 - 1
		end := mouth.Add(cp.ForAngle(br.Direction + t*tun.BreathSpread).Mult(tun.BreathRange))
		ex, ey := v.point(end)
		vector.StrokeLine(screen, mx, my, ex, ey, v.length(6), fade(colornames.Orange, 0.35), true)
	}
}

func (r *RenderSystem) drawBossBar(w *ecs.World, screen *ebiten.Image) {
	e, ok := ecs.First(w, component.SerpentBossComponent.Kind())
	if !ok {
		return
	}
	sb, _ := ecs.Get(w, e, component.SerpentBossComponent.Kind())
	if sb.Boss == nil || sb.Boss.MaxHealth <= 0 {
		return
	}

	x := float32(screen.Bounds().Dx()-healthBarWidth) / 2
	frac := float32(math.Max(0, sb.Boss.Health/sb.Boss.MaxHealth))
	if !sb.Boss.FullySpawned {
		frac *= float32(math.Min(sb.Boss.SpawnProgress, 1))
	}
	vector.FillRect(screen, x, 12, healthBarWidth, 10, color.RGBA{A: 160}, false)
	vector.FillRect(screen, x, 12, healthBarWidth*frac, 10, colornames.Crimson, false)
	vector.StrokeRect(screen, x, 12, healthBarWidth, 10, 1, colornames.White, false)

	if r.Debug {
		msg := fmt.Sprintf("phase %s  t=%.2f  tendrils %d  cd %.1f",
			sb.Boss.PhaseKind(), sb.Boss.PhaseTimer, len(sb.Boss.Tendrils), sb.Boss.TeleportCooldown)
		ebitenutil.DebugPrintAt(screen, msg, int(x), 26)
	}
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(alpha, 1))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func shade(c color.RGBA, k float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Max(0, math.Min(float64(v)*k, 255)))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
