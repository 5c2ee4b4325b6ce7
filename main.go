package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	sceneFile := flag.String("scene", "scene.yaml", "scene prefab in prefabs/")
	bindingsFile := flag.String("bindings", "bindings.yaml", "input bindings prefab in prefabs/")
	sensitivity := flag.Float64("sensitivity", 0, "look sensitivity in radians per unit, overrides the scene")
	speed := flag.Float64("speed", 0, "movement speed in units per second, overrides the scene")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("flycam")

	game, err := NewGame(Config{
		Debug:        *debug,
		SceneFile:    *sceneFile,
		BindingsFile: *bindingsFile,
		Sensitivity:  *sensitivity,
		Speed:        *speed,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	// Mouse look needs an unbounded cursor.
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
