package main

import (
	"fmt"
	"log"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/physics2d/common"
	"github.com/milk9111/physics2d/ecs"
	"github.com/milk9111/physics2d/ecs/system"
	"github.com/milk9111/physics2d/inspect"
	"github.com/milk9111/physics2d/prefabs"
)

const (
	publishEvery = 6
	statusTicks  = 120
	slowMotion   = 0.25
	timeScaleLag = 0.1
)

type GameOptions struct {
	Scene     string
	Debug     bool
	Inspector *inspect.Server
	// Reloads carries prefab names from a prefabs.Watcher.
	Reloads <-chan string
}

type Game struct {
	opts GameOptions

	world     *ecs.World
	scheduler *ecs.Scheduler
	debug     *system.PhysicsDebugSystem
	drag      *DragSystem

	paused      bool
	reload      bool
	slow        bool
	baseScale   float64
	easing      bool
	ui          *ebitenui.UI
	hud         *hudLabels
	ticks       int
	status      string
	statusLeft  int
	clipboardOK bool
}

func NewGame(opts GameOptions) (*Game, error) {
	g := &Game{
		opts:  opts,
		debug: system.NewPhysicsDebugSystem(opts.Debug),
		drag:  NewDragSystem(),
	}
	if err := g.loadScene(); err != nil {
		return nil, err
	}
	g.ui, g.hud = NewPauseUI(g)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}
	return g, nil
}

// loadScene builds the configured scene into a fresh ECS world and replaces
// the current one only when the build succeeds.
func (g *Game) loadScene() error {
	spec, err := prefabs.LoadScene(g.opts.Scene)
	if err != nil {
		return err
	}
	w := ecs.NewWorld()
	pw, err := prefabs.BuildScene(w, spec)
	if err != nil {
		return err
	}

	if g.world != nil {
		g.drag.Release(g.world)
		if old := g.world.PhysicsWorld(); old != nil {
			old.Destroy()
		}
	}

	scripts := system.NewScriptSystem()
	hot := system.NewHotReloadSystem(g.opts.Reloads, scripts)
	hot.OnScene = func(name string) {
		if name == prefabs.CleanPath(g.opts.Scene) {
			g.reload = true
		}
	}

	g.world = w
	g.baseScale = pw.TimeScale()
	g.slow, g.easing = false, false
	g.scheduler = ecs.NewScheduler(
		hot,
		system.NewPhysicsPreStepSystem(func() float64 { return 1 / float64(ebiten.TPS()) }),
		g.drag,
		scripts,
		system.NewTTLSystem(),
		system.NewDestroySystem(),
		system.NewPhysicsPostStepSystem(),
		system.NewRenderSystem(),
		g.debug,
	)
	g.setStatus(fmt.Sprintf("loaded %s (%s)", spec.Name, pw.ID()))
	return nil
}

func (g *Game) Close() {
	if g.world != nil {
		if pw := g.world.PhysicsWorld(); pw != nil {
			pw.Destroy()
		}
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySnapshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug.Enabled = !g.debug.Enabled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.slow = !g.slow
		g.easing = true
	}

	if g.reload {
		g.reload = false
		if err := g.loadScene(); err != nil {
			g.setStatus(fmt.Sprintf("reload failed: %v", err))
		}
	}

	if g.statusLeft > 0 {
		g.statusLeft--
	}
	g.hud.refresh(g)
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.ticks++
	g.easeTimeScale()
	g.scheduler.Update(g.world)

	if g.opts.Inspector != nil && g.ticks%publishEvery == 0 {
		g.opts.Inspector.Publish(g.world.PhysicsWorld().Snapshot())
	}
	return nil
}

// easeTimeScale moves the world time scale toward the slow-motion target
// after S is pressed, then leaves it alone so scripts can change it.
func (g *Game) easeTimeScale() {
	pw := g.world.PhysicsWorld()
	if !g.easing || pw == nil {
		return
	}
	target := g.baseScale
	if g.slow {
		target *= slowMotion
	}
	next := common.Lerp(pw.TimeScale(), target, timeScaleLag)
	if math.Abs(next-target) < 1e-3 {
		next, g.easing = target, false
	}
	pw.SetTimeScale(next)
}

func (g *Game) copySnapshot() {
	pw := g.world.PhysicsWorld()
	if !g.clipboardOK || pw == nil {
		g.setStatus("clipboard unavailable")
		return
	}
	data, err := yaml.Marshal(pw.Snapshot())
	if err != nil {
		g.setStatus(fmt.Sprintf("snapshot: %v", err))
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.setStatus(fmt.Sprintf("copied snapshot of %d bodies", len(pw.Bodies())))
}

func (g *Game) setStatus(msg string) {
	log.Printf("Sandbox: %s", msg)
	g.status = msg
	g.statusLeft = statusTicks
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.scheduler.Draw(g.world, screen)

	line := fmt.Sprintf("FPS: %.0f  [P]ause [R]eload [D]ebug [S]low [C]opy", ebiten.ActualFPS())
	if g.statusLeft > 0 {
		line += "\n" + g.status
	}
	ebitenutil.DebugPrintAt(screen, line, 10, common.BaseHeight-40)

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
