package desktop

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"time"

	"PongArena/core"
	"PongArena/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const scoreY = 20
const centerLineDash = 20

var background = color.Black
var foreground = color.White

// Desktop plays a session in an ebiten window. It implements ebiten.Game.
type Desktop struct {
	ctx     context.Context
	game    *core.Game
	last    time.Time
	onEvent func(core.Event)

	leftScore  scoreLabel
	rightScore scoreLabel
}

func New(ctx context.Context, game *core.Game) *Desktop {
	return &Desktop{
		ctx:     ctx,
		game:    game,
		onEvent: func(core.Event) {},
	}
}

// OnEvent registers a callback for every contact resolved by the simulation.
func (d *Desktop) OnEvent(fn func(core.Event)) {
	d.onEvent = fn
}

// Run opens the window and blocks until it is closed, Escape is pressed or ctx is done.
func (d *Desktop) Run(title string) error {
	ebiten.SetWindowSize(core.ArenaWidth, core.ArenaHeight)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(d); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (d *Desktop) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		logger.Log.Info(logger.QuitRequestedMsg)
		return ebiten.Termination
	}
	select {
	case <-d.ctx.Done():
		return ebiten.Termination
	default:
	}

	now := time.Now()
	var elapsed float32
	if !d.last.IsZero() {
		elapsed = float32(now.Sub(d.last).Seconds() * 1000)
	}
	d.last = now

	for _, ev := range d.game.Update(ReadInput(ebiten.IsKeyPressed), elapsed) {
		d.onEvent(ev)
	}
	return nil
}

func (d *Desktop) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	snapshot := d.game.Snapshot()

	for y := 0; y < core.ArenaHeight; y += 2 * centerLineDash {
		vector.DrawFilledRect(screen, core.ArenaWidth/2-1, float32(y), 2, centerLineDash, foreground, false)
	}

	ebitenutil.DebugPrintAt(screen, d.leftScore.textFor(snapshot.Score.Left), core.ArenaWidth/4, scoreY)
	ebitenutil.DebugPrintAt(screen, d.rightScore.textFor(snapshot.Score.Right), core.ArenaWidth/4*3, scoreY)

	drawRect(screen, snapshot.LeftPaddle)
	drawRect(screen, snapshot.RightPaddle)
	drawRect(screen, snapshot.Ball)
}

// Layout keeps the arena's logical size whatever the window size is.
func (d *Desktop) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.ArenaWidth, core.ArenaHeight
}

func drawRect(screen *ebiten.Image, r core.Rect) {
	vector.DrawFilledRect(screen, r.X, r.Y, r.Width, r.Height, foreground, false)
}

// ReadInput samples the four paddle keys through pressed.
func ReadInput(pressed func(ebiten.Key) bool) core.Input {
	return core.Input{
		LeftUp:    pressed(ebiten.KeyW),
		LeftDown:  pressed(ebiten.KeyS),
		RightUp:   pressed(ebiten.KeyArrowUp),
		RightDown: pressed(ebiten.KeyArrowDown),
	}
}

// scoreLabel caches the formatted score until it changes.
type scoreLabel struct {
	valid bool
	value int
	text  string
}

func (s *scoreLabel) textFor(value int) string {
	if !s.valid || s.value != value {
		s.text = strconv.Itoa(value)
		s.value = value
		s.valid = true
	}
	return s.text
}
