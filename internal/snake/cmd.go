package snake

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"mtoohey.com/texui/internal/cmd"
	"mtoohey.com/texui/internal/grid"
	"mtoohey.com/texui/internal/keys"
	"mtoohey.com/texui/internal/sound"
	"mtoohey.com/texui/internal/term"

	"github.com/faiface/beep"
	"github.com/gdamore/tcell/v2"
)

type Cmd struct {
	Width      int             `default:"32" help:"Width of the playing field, including the wall."`
	Height     int             `default:"16" help:"Height of the playing field, including the status line and wall."`
	Length     int             `default:"5" help:"Initial length of the snake."`
	Sound      bool            `negatable:"true" default:"true" help:"Chime when the snake eats or dies."`
	SampleRate beep.SampleRate `default:"44100" help:"Sample rate of the chimes."`
	// Seed is the seed used to place food. The current time is used when it
	// is zero.
	Seed int64 `help:"Seed used to place food. The current time is used when not provided."`
}

func (c Cmd) Run(g cmd.Globals) (err error) {
	logger, closeLog, err := g.Logger()
	if err != nil {
		return err
	}
	defer func() {
		closeErr := closeLog()

		if err == nil {
			err = closeErr
		}
	}()

	b, err := g.NewBuffer(c.Width, c.Height)
	if err != nil {
		return err
	}

	var chimer sound.Chimer = sound.Silent{}
	if c.Sound {
		s, err := sound.OpenSpeaker(c.SampleRate)
		if err != nil {
			logger.Printf("continuing without sound: %s", err)
		} else {
			defer s.Close()
			chimer = s
		}
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Printf("starting game with seed %d", seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	s := session{
		screen:  screen,
		surface: term.NewScreen(screen, tcell.StyleDefault),
		buf:     b,
		chimer:  chimer,
		logger:  logger,
	}
	return s.play(c.Length, rand.New(rand.NewSource(seed)))
}

// session ties a game to the screen it is shown on.
type session struct {
	screen  tcell.Screen
	surface term.Surface
	buf     *grid.Buffer
	chimer  sound.Chimer
	logger  *log.Logger
}

const startMessage = "Press ENTER to start"

// play shows the start screen, then runs a game until it is quit with ESC or
// Ctrl-C. A finished game stays on screen until then.
func (s *session) play(length int, rng *rand.Rand) error {
	g, err := newGame(s.buf.Width(), s.buf.Height(), length, rng)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	defer wg.Wait()

	evCh := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.screen.ChannelEvents(evCh, quit)
	}()

	if err := s.showStart(); err != nil {
		return err
	}

	started := false
	var tick <-chan time.Time
	for {
		select {
		case ev, ok := <-evCh:
			if !ok {
				return nil
			}

			switch ev := ev.(type) {
			case *tcell.EventError:
				return fmt.Errorf("got error event: %w", ev)

			case *tcell.EventResize:
				s.screen.Sync()

			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}

				name, ok := keys.FromTcell(ev)
				if !ok {
					continue
				}

				switch {
				case name == keys.Esc:
					return nil

				case !started && name == keys.Enter:
					started = true
					if err := s.show(g); err != nil {
						return err
					}
					tick = time.After(g.delay())

				case started:
					g.steer(name)
				}
			}

		case <-tick:
			if g.step() {
				s.chimer.Chime(880, time.Millisecond*80)
			}

			if g.over {
				s.logger.Printf("game over with length %d", len(g.body))
				s.chimer.Chime(220, time.Millisecond*400)
				tick = nil
			} else {
				tick = time.After(g.delay())
			}

			if err := s.show(g); err != nil {
				return err
			}
		}
	}
}

func (s *session) showStart() error {
	s.buf.Clear()

	x := (s.buf.Width() - len(startMessage)) / 2
	if x < 0 {
		x = 0
	}
	if _, err := s.buf.DrawString(x, s.buf.Height()/2, startMessage, grid.TextOptions{}); err != nil {
		return fmt.Errorf("failed to draw start screen: %w", err)
	}

	return s.flush()
}

func (s *session) show(g *game) error {
	if err := g.draw(s.buf); err != nil {
		return err
	}

	return s.flush()
}

func (s *session) flush() error {
	if err := s.surface.Flush(s.buf, term.At(0, 0)); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}

	return nil
}
