package main

import (
	"context"
	"fmt"

	"PongArena/config"
	"PongArena/core"
	"PongArena/desktop"
	"PongArena/logger"
	"PongArena/terminal"

	"github.com/sirupsen/logrus"
)

// PongGame is one session: a simulation, the front end that drives it and the session log.
type PongGame struct {
	settings config.Settings
	game     *core.Game
	session  string
}

func NewPongGame(settings config.Settings) *PongGame {
	return &PongGame{
		settings: settings,
		game:     core.NewGame(settings.Stepper()),
	}
}

// Start runs the configured front end until the players quit or ctx is cancelled.
func (p *PongGame) Start(ctx context.Context) error {
	p.session = logger.Log.NewSession()
	logger.Log.Info(fmt.Sprintf(logger.SessionStartMsg, p.settings.Frontend, p.settings.Timestep))

	err := p.runFrontend(ctx)
	if err != nil {
		logger.Log.Error(fmt.Sprintf(logger.ShellErrorMsg, err))
	}

	logger.Log.Info(fmt.Sprintf(logger.SessionEndMsg, p.game.Score.Left, p.game.Score.Right))
	return err
}

func (p *PongGame) runFrontend(ctx context.Context) error {
	switch p.settings.Frontend {
	case config.FrontendDesktop:
		d := desktop.New(ctx, p.game)
		d.OnEvent(logEvent)
		return d.Run(p.settings.WindowTitle)
	default:
		screen, err := terminal.NewScreen()
		if err != nil {
			return err
		}
		t := terminal.New(screen, p.game, p.settings.FrameInterval, p.settings.KeyHold)
		t.OnEvent(logEvent)
		return t.Run(ctx)
	}
}

func logEvent(ev core.Event) {
	entry := logger.Log.With(logrus.Fields{
		"event":   ev.Kind.String(),
		"contact": ev.Contact.Type.String(),
	})

	switch ev.Kind {
	case core.EventWallScore:
		side := "left"
		if ev.Contact.Type == core.ContactLeft {
			side = "right"
		}
		entry.Infof(logger.ScoreMsg, side, ev.Score.Left, ev.Score.Right)
	case core.EventPaddleHit:
		entry.Debugf(logger.PaddleHitMsg, ev.Contact.Type)
	case core.EventWallBounce:
		entry.Debugf(logger.WallBounceMsg, ev.Contact.Type)
	}
}
