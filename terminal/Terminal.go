package terminal

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"PongArena/core"
	"PongArena/logger"

	"github.com/gdamore/tcell"
)

const BallSymbol = 0x25CF       // 球符號
const PaddleSymbol = 0x2588     // 球拍符號
const CenterLineSymbol = 0x2590 // 中線符號
const scoreRow = 1

// Terminal plays a session inside a tcell screen.
type Terminal struct {
	screen   tcell.Screen
	game     *core.Game
	interval time.Duration
	keys     *KeyState
	onEvent  func(core.Event)

	leftScore  scoreText
	rightScore scoreText
}

// NewScreen opens the terminal and sets the black background used by the game.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	return screen, nil
}

// New wraps an initialised screen. interval is the frame period, keyHold how long a key
// counts as held after its last press.
func New(screen tcell.Screen, game *core.Game, interval, keyHold time.Duration) *Terminal {
	return &Terminal{
		screen:   screen,
		game:     game,
		interval: interval,
		keys:     NewKeyState(keyHold),
		onEvent:  func(core.Event) {},
	}
}

// OnEvent registers a callback for every contact resolved by the simulation.
func (t *Terminal) OnEvent(fn func(core.Event)) {
	t.onEvent = fn
}

// Run drives the frame loop until a quit key is pressed or ctx is done. The screen is always
// finalised before Run returns.
func (t *Terminal) Run(ctx context.Context) error {
	defer t.screen.Fini()

	done := make(chan struct{})
	defer close(done)
	inputChan := t.initUserInput(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		if quit := t.userOperationHandle(inputChan); quit {
			logger.Log.Info(logger.QuitRequestedMsg)
			return nil
		}

		now := time.Now()
		elapsed := float32(now.Sub(last).Seconds() * 1000)
		last = now

		for _, ev := range t.game.Update(t.keys.Input(now), elapsed) {
			t.onEvent(ev)
		}
		t.drawView()

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// initUserInput forwards screen events from a goroutine so the frame loop never blocks on input.
func (t *Terminal) initUserInput(done <-chan struct{}) <-chan tcell.Event {
	inputChan := make(chan tcell.Event)

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case inputChan <- ev:
			case <-done:
				return
			}
		}
	}()

	return inputChan
}

// userOperationHandle drains pending events and reports whether quit was requested.
func (t *Terminal) userOperationHandle(inputChan <-chan tcell.Event) bool {
	for {
		select {
		case ev := <-inputChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventKey:
				action := ActionFor(ev)
				if action == ActionQuit {
					return true
				}
				t.keys.Press(action, time.Now())
			}
		default:
			return false
		}
	}
}

func (t *Terminal) drawView() {
	t.screen.Clear()
	width, height := t.screen.Size()
	snapshot := t.game.Snapshot()

	//中線
	for row := 0; row < height; row += 2 {
		t.screen.SetContent(width/2, row, CenterLineSymbol, nil, tcell.StyleDefault)
	}

	//分數
	for _, cell := range t.leftScore.cellsFor(snapshot.Score.Left, width/4, scoreRow) {
		t.screen.SetContent(cell[0], cell[1], PaddleSymbol, nil, tcell.StyleDefault)
	}
	for _, cell := range t.rightScore.cellsFor(snapshot.Score.Right, width/4*3, scoreRow) {
		t.screen.SetContent(cell[0], cell[1], PaddleSymbol, nil, tcell.StyleDefault)
	}

	//兩個球拍
	t.fill(snapshot.LeftPaddle, width, height, PaddleSymbol)
	t.fill(snapshot.RightPaddle, width, height, PaddleSymbol)

	//球
	t.fill(snapshot.Ball, width, height, BallSymbol)

	t.screen.Show()
}

func (t *Terminal) fill(r core.Rect, width, height int, ch rune) {
	col0, row0, col1, row1 := toCells(r, width, height)
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			t.screen.SetContent(col, row, ch, nil, tcell.StyleDefault)
		}
	}
}

// toCells scales an arena rectangle onto a width x height cell grid. Every visible rectangle
// covers at least one cell.
func toCells(r core.Rect, width, height int) (col0, row0, col1, row1 int) {
	sx := float64(width) / core.ArenaWidth
	sy := float64(height) / core.ArenaHeight

	col0 = int(math.Floor(float64(r.Left()) * sx))
	row0 = int(math.Floor(float64(r.Top()) * sy))
	col1 = int(math.Ceil(float64(r.Right()) * sx))
	row1 = int(math.Ceil(float64(r.Bottom()) * sy))

	if col1 <= col0 {
		col1 = col0 + 1
	}
	if row1 <= row0 {
		row1 = row0 + 1
	}
	return col0, row0, col1, row1
}

// scoreText caches the glyph cells of a score until the value or its anchor changes.
type scoreText struct {
	valid bool
	value int
	x     int
	cells [][2]int
}

func (s *scoreText) cellsFor(value, x, y int) [][2]int {
	if !s.valid || s.value != value || s.x != x {
		s.cells = layoutText(x, y, strconv.Itoa(value))
		s.value = value
		s.x = x
		s.valid = true
	}
	return s.cells
}
