package monitor

import (
	"fmt"

	"github.com/cwbudde/algo-trim/dsp/trim"
	"github.com/cwbudde/algo-trim/plugin"
)

// GainStepDB is the gain change per key press.
const GainStepDB = 1.0

// Command is what a key press asks for.
type Command uint8

const (
	CmdGainUp Command = iota + 1
	CmdGainDown
	CmdTogglePhase
	CmdToggleFlip
	CmdSolo
	CmdQuit
)

// Action is a decoded key press. Solo is only meaningful for CmdSolo.
type Action struct {
	Cmd  Command
	Solo trim.SoloMode
}

var keyActions = map[byte]Action{
	'+': {Cmd: CmdGainUp},
	'=': {Cmd: CmdGainUp},
	'-': {Cmd: CmdGainDown},
	'p': {Cmd: CmdTogglePhase},
	'f': {Cmd: CmdToggleFlip},
	'm': {Cmd: CmdSolo, Solo: trim.SoloMid},
	's': {Cmd: CmdSolo, Solo: trim.SoloSide},
	'l': {Cmd: CmdSolo, Solo: trim.SoloLeft},
	'r': {Cmd: CmdSolo, Solo: trim.SoloRight},
	'o': {Cmd: CmdSolo, Solo: trim.SoloStereo},
	'q': {Cmd: CmdQuit},
	3:   {Cmd: CmdQuit}, // Ctrl-C in raw mode
}

// ParseKey maps a raw terminal byte to an action. Letters are case-insensitive.
func ParseKey(b byte) (Action, bool) {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}

	a, ok := keyActions[b]

	return a, ok
}

// Help is the key legend printed when the monitor starts.
const Help = "keys: +/- gain, p phase, f flip, m s l r o solo mid/side/left/right/stereo, q quit"

// Controller turns key presses into parameter changes.
type Controller struct {
	binding *plugin.Binding
}

// NewController returns a controller writing through b.
func NewController(b *plugin.Binding) *Controller {
	return &Controller{binding: b}
}

// Handle applies a. Solo selection goes through the radio adapter so the
// audio callback never sees two solo flags at once.
func (c *Controller) Handle(a Action) error {
	switch a.Cmd {
	case CmdGainUp, CmdGainDown:
		step := GainStepDB
		if a.Cmd == CmdGainDown {
			step = -step
		}

		db, err := c.binding.Value(plugin.IDGain)
		if err != nil {
			return err
		}

		return c.binding.Apply(plugin.Change{ID: plugin.IDGain, Value: db + step})
	case CmdTogglePhase:
		return c.toggle(plugin.IDPhaseReverse)
	case CmdToggleFlip:
		return c.toggle(plugin.IDStereoFlip)
	case CmdSolo:
		return c.binding.SelectSolo(a.Solo)
	case CmdQuit:
		return nil
	default:
		return fmt.Errorf("monitor: unknown command %d", a.Cmd)
	}
}

// HandleKey decodes and applies one key. Unmapped keys are ignored.
func (c *Controller) HandleKey(b byte) (quit bool, err error) {
	a, ok := ParseKey(b)
	if !ok {
		return false, nil
	}

	if a.Cmd == CmdQuit {
		return true, nil
	}

	return false, c.Handle(a)
}

func (c *Controller) toggle(id string) error {
	v, err := c.binding.Value(id)
	if err != nil {
		return err
	}

	return c.binding.Apply(plugin.Change{ID: id, Value: 1 - v})
}

// Status renders the current parameters on one line.
func Status(p *trim.Params) string {
	s := p.Snapshot()

	gain, _ := plugin.Lookup(plugin.IDGain)
	phase, _ := plugin.Lookup(plugin.IDPhaseReverse)
	flip, _ := plugin.Lookup(plugin.IDStereoFlip)

	return fmt.Sprintf("gain %s | solo %v | phase %s | flip %s",
		gain.Format(s.GainDB),
		s.Solo,
		phase.Format(boolValue(s.PhaseReverse)),
		flip.Format(boolValue(s.StereoFlip)),
	)
}

func boolValue(on bool) float64 {
	if on {
		return 1
	}

	return 0
}
