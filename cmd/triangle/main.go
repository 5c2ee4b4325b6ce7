// Command triangle draws an animated full-screen shader. It is a quick way
// to check that the graphics backend works on a machine.
package main

import (
	_ "embed"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

//go:embed shader.kage
var shaderSrc []byte

type Game struct {
	shader *ebiten.Shader
	ticks  int
}

func NewGame() (*Game, error) {
	sh, err := ebiten.NewShader(shaderSrc)
	if err != nil {
		return nil, err
	}
	return &Game{shader: sh}, nil
}

// Time is the shader clock in seconds.
func (g *Game) Time() float32 {
	return float32(g.ticks) / float32(ebiten.TPS())
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.ticks++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Time":       g.Time(),
		"Resolution": []float32{float32(b.Dx()), float32(b.Dy())},
	}
	screen.DrawRectShader(b.Dx(), b.Dy(), g.shader, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	game, err := NewGame()
	if err != nil {
		log.Fatalf("triangle: compile shader: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("triangle")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
