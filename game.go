package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/flycam/common"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
	"github.com/milk9111/flycam/ecs/entity"
	"github.com/milk9111/flycam/ecs/system"
	"github.com/milk9111/flycam/input"
	"github.com/milk9111/flycam/prefabs"
	"golang.design/x/clipboard"
)

// Config holds the command line options.
type Config struct {
	Debug        bool
	SceneFile    string
	BindingsFile string
	Sensitivity  float64
	Speed        float64
}

type Game struct {
	cfg Config

	world     *ecs.World
	scheduler *ecs.Scheduler
	devices   *input.Devices
	cameraSys *system.FPSCameraSystem
	renderSys *system.RenderSystem
	diagSys   *system.DiagnosticsSystem
	scene     *entity.Scene

	watcher   *prefabs.Watcher
	clipboard bool

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

func NewGame(cfg Config) (*Game, error) {
	if cfg.SceneFile == "" {
		cfg.SceneFile = prefabs.SceneFile
	}
	if cfg.BindingsFile == "" {
		cfg.BindingsFile = prefabs.BindingsFile
	}

	sceneSpec, err := prefabs.LoadSceneSpec(cfg.SceneFile)
	if err != nil {
		return nil, fmt.Errorf("game: load scene: %w", err)
	}

	bindings, err := input.LoadBindings(cfg.BindingsFile)
	if err != nil {
		log.Printf("game: %v; using default bindings", err)
		bindings = input.DefaultBindings()
	}

	world := ecs.NewWorld()
	scene, err := entity.BuildScene(world, sceneSpec)
	if err != nil {
		return nil, fmt.Errorf("game: build scene: %w", err)
	}

	controller := entity.ControllerFromSpec(sceneSpec.Camera)
	if cfg.Sensitivity > 0 {
		controller.Sensitivity = float32(cfg.Sensitivity)
	}
	if cfg.Speed > 0 {
		controller.Speed = float32(cfg.Speed)
	}

	g := &Game{
		cfg:       cfg,
		world:     world,
		devices:   input.NewDevices(),
		cameraSys: system.NewFPSCameraSystem(controller, 1/float64(ebiten.TPS())),
		renderSys: system.NewRenderSystem(),
		diagSys:   system.NewDiagnosticsSystem(cfg.Debug),
		scene:     scene,
	}
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(input.NewResolver(bindings), g.devices),
		g.cameraSys,
		g.diagSys,
	)
	g.pauseUI = NewPauseUI(g)

	if dirs := prefabs.Dirs(); len(dirs) > 0 {
		w, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("game: clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}

	log.Printf("game: scene %s with %d primitives", sceneSpec.Name, len(scene.Primitives))
	return g, nil
}

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.paused {
			g.resume()
		} else {
			g.pause()
		}
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.copyPose()
	}

	g.reloadPrefabs()
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSys.Draw(g.world, screen)
	g.diagSys.Draw(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) pause() {
	g.paused = true
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func (g *Game) resume() {
	g.paused = false
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	g.devices.Reset()
}

// reloadPrefabs applies prefab edits picked up by the watcher. A file that
// fails to load leaves the running bindings or scene untouched.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}

	select {
	case err := <-g.watcher.Errors:
		log.Printf("game: prefab watcher: %v", err)
	default:
	}

	reloadScene := false
	for _, path := range g.watcher.Poll() {
		if prefabs.IsBindingsFile(path, g.cfg.BindingsFile) {
			b, err := input.LoadBindings(g.cfg.BindingsFile)
			if err != nil {
				log.Printf("game: reload bindings: %v", err)
				continue
			}
			g.world.Events().Push(ecs.Event{Type: ecs.EventBindingsChanged, Data: b})
			continue
		}
		if filepath.Base(path) == filepath.Base(g.cfg.SceneFile) || filepath.Ext(path) == ".tengo" {
			reloadScene = true
		}
	}

	if !reloadScene {
		return
	}
	spec, err := prefabs.LoadSceneSpec(g.cfg.SceneFile)
	if err != nil {
		log.Printf("game: reload scene: %v", err)
		return
	}
	if err := entity.RespawnPrimitives(g.world, g.scene, spec); err != nil {
		log.Printf("game: reload scene: %v", err)
		return
	}
	log.Printf("game: scene reloaded, %d primitives", len(g.scene.Primitives))
}

var errNoPlayer = errors.New("game: no player camera")

func (g *Game) cameraSpec() (prefabs.CameraSpec, error) {
	cam, ok := ecs.Get(g.world, g.scene.Player, component.FPSCameraComponent)
	if !ok {
		return prefabs.CameraSpec{}, errNoPlayer
	}
	lens, ok := ecs.Get(g.world, g.scene.Player, component.CameraComponent)
	if !ok {
		return prefabs.CameraSpec{}, errNoPlayer
	}
	return entity.CameraSpecFor(cam.State, lens.Lens, g.cameraSys.Controller()), nil
}

// copyPose puts the camera, in scene prefab form, on the system clipboard.
func (g *Game) copyPose() {
	spec, err := g.cameraSpec()
	if err != nil {
		log.Printf("game: copy pose: %v", err)
		return
	}
	data, err := prefabs.MarshalCamera(spec)
	if err != nil {
		log.Printf("game: copy pose: %v", err)
		return
	}
	if !g.clipboard {
		log.Printf("game: pose\n%s", data)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("game: pose copied to clipboard")
}
