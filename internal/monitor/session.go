package monitor

import (
	"context"
	"fmt"
	"io"

	"github.com/cwbudde/algo-trim/dsp/signal"
	"github.com/cwbudde/algo-trim/plugin"
)

// Config describes one monitor session.
type Config struct {
	SampleRate int
	BlockSize  int
	// Status receives a status line after every handled key. May be nil.
	Status io.Writer
}

// Run plays src through proc until ctx is done, the keys channel closes or
// a quit key arrives.
func Run(ctx context.Context, cfg Config, src *signal.Loop, proc *plugin.Processor, keys <-chan byte) error {
	if err := proc.Prepare(float64(cfg.SampleRate), cfg.BlockSize); err != nil {
		return err
	}
	defer proc.Release()

	r, err := NewRenderer(src, proc, cfg.BlockSize)
	if err != nil {
		return err
	}

	player, err := NewPlayer(cfg.SampleRate, r.Channels())
	if err != nil {
		return err
	}
	defer player.Close()

	player.Start(r)

	return Control(ctx, NewController(proc.Binding()), keys, func() {
		if cfg.Status != nil {
			fmt.Fprintf(cfg.Status, "\r%s\x1b[K", Status(proc.Params()))
		}
	})
}

// Control applies keys until quit, ctx cancellation or channel close. onChange
// runs after every key that changed a parameter.
func Control(ctx context.Context, c *Controller, keys <-chan byte, onChange func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case b, ok := <-keys:
			if !ok {
				return nil
			}

			if _, mapped := ParseKey(b); !mapped {
				continue
			}

			quit, err := c.HandleKey(b)
			if err != nil {
				return err
			}

			if quit {
				return nil
			}

			if onChange != nil {
				onChange()
			}
		}
	}
}
