package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termtris/audio"
	"github.com/lixenwraith/termtris/constants"
	"github.com/lixenwraith/termtris/engine"
	"github.com/lixenwraith/termtris/events"
	"github.com/lixenwraith/termtris/input"
	"github.com/lixenwraith/termtris/render"
	"github.com/lixenwraith/termtris/score"
)

// Game owns the session wiring: one Board, its event queue, and the
// input/audio/render collaborators around it
type Game struct {
	screen   tcell.Screen
	board    *engine.Board
	queue    *events.Queue
	clock    *engine.Clock
	machine  *input.Machine
	renderer *render.Renderer
	sounds   *audio.SoundManager
	scores   *score.Table

	lastUpdate time.Time
	recorded   bool // current game over already in the score table
}

// NewGame initializes the screen and all collaborators. Audio init
// failure is non-fatal; the game runs silent.
func NewGame(seed int64, muted bool) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	queue := events.NewQueue()
	g := &Game{
		screen:     screen,
		board:      engine.NewBoard(engine.NewBagSource(seed), queue),
		queue:      queue,
		clock:      engine.NewClock(),
		machine:    input.NewMachine(),
		renderer:   render.New(screen),
		sounds:     audio.NewSoundManager(),
		scores:     score.NewTable(),
		lastUpdate: time.Now(),
	}

	if err := g.sounds.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
	}
	if muted && !g.sounds.Muted() {
		g.sounds.ToggleMute()
	}
	return g, nil
}

func (g *Game) run() {
	ticker := time.NewTicker(constants.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			// Apply buffered input before the gravity step so
			// movement stays responsive within the tick
			for applied := true; applied; {
				select {
				case ev := <-eventChan:
					if !g.handleEvent(ev) {
						return
					}
				default:
					applied = false
				}
			}
			g.update()
		}
	}
}

// update advances the board by the elapsed frame time, drains the
// event queue to the audio collaborator and redraws
func (g *Game) update() {
	now := time.Now()
	dt := now.Sub(g.lastUpdate)
	g.lastUpdate = now

	g.board.Update(dt)

	for _, ev := range g.queue.Drain() {
		g.sounds.HandleEvent(ev)
		if ev.Type == events.TypeGameOver && !g.recorded {
			g.recorded = true
			g.scores.Add(score.Entry{
				Score: g.board.Score(),
				Lines: g.board.Lines(),
				Level: g.board.Level(),
			})
		}
	}

	g.renderer.Draw(g.board.Snapshot(), g.clock.Elapsed(), g.scores)
}

// handleEvent dispatches one terminal event; false means quit
func (g *Game) handleEvent(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		g.screen.Sync()
		return true
	}
	switch g.machine.Process(ev) {
	case input.ActionQuit:
		return false
	case input.ActionTogglePause:
		g.board.TogglePause()
		if g.board.Paused() {
			g.clock.Pause()
		} else {
			g.clock.Resume()
		}
		g.sounds.SetMusicPaused(g.board.Paused())
	case input.ActionToggleAudio:
		g.sounds.ToggleMute()
	case input.ActionReset:
		g.board.Reset()
		g.clock.Reset()
		g.recorded = false
		g.sounds.SetMusicPaused(false)
	case input.ActionMoveLeft:
		g.board.MoveLeft()
	case input.ActionMoveRight:
		g.board.MoveRight()
	case input.ActionRotateCW:
		g.board.Rotate(engine.RotateCW)
	case input.ActionRotateCCW:
		g.board.Rotate(engine.RotateCCW)
	case input.ActionSoftDrop:
		g.board.SoftDrop()
	case input.ActionHardDrop:
		g.board.HardDrop()
	}
	return true
}

func (g *Game) cleanup() {
	g.sounds.Cleanup()
	g.screen.Fini()
}

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "shape randomizer seed")
	muted := flag.Bool("mute", false, "start with audio muted")
	flag.Parse()

	game, err := NewGame(*seed, *muted)
	if err != nil {
		log.Printf("failed to start: %v", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
