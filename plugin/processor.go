package plugin

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-trim/dsp/trim"
)

// ProcessorOption mutates the initial parameter values of a Processor.
type ProcessorOption func(*processorConfig) error

type processorConfig struct {
	gainDB float64
	solo   trim.SoloMode
	phase  bool
	flip   bool
}

func defaultProcessorConfig() processorConfig {
	return processorConfig{
		gainDB: trim.DefaultGainDB,
		solo:   trim.DefaultSoloMode,
	}
}

// WithGainDB sets the initial gain in dB, within [MinGainDB, MaxGainDB].
func WithGainDB(db float64) ProcessorOption {
	return func(cfg *processorConfig) error {
		if db < trim.MinGainDB || db > trim.MaxGainDB || math.IsNaN(db) {
			return fmt.Errorf("plugin: gain must be in [%g, %g] dB: %f",
				trim.MinGainDB, trim.MaxGainDB, db)
		}

		cfg.gainDB = db

		return nil
	}
}

// WithSoloMode sets the initial solo selection.
func WithSoloMode(mode trim.SoloMode) ProcessorOption {
	return func(cfg *processorConfig) error {
		if !mode.Valid() {
			return fmt.Errorf("plugin: invalid solo mode %v", mode)
		}

		cfg.solo = mode

		return nil
	}
}

// WithPhaseReverse sets the initial polarity inversion.
func WithPhaseReverse(on bool) ProcessorOption {
	return func(cfg *processorConfig) error {
		cfg.phase = on
		return nil
	}
}

// WithStereoFlip sets the initial left/right swap.
func WithStereoFlip(on bool) ProcessorOption {
	return func(cfg *processorConfig) error {
		cfg.flip = on
		return nil
	}
}

// Processor bundles the parameter state, its binding and the engine into
// one effect instance.
//
// ProcessBlock and ProcessBlockIO are the audio-callback side; everything
// else belongs to the host/UI side. The two sides may run concurrently.
type Processor struct {
	info    Info
	params  *trim.Params
	binding *Binding
	engine  *trim.Engine

	sampleRate float64
	maxBlock   int
}

// NewProcessor creates an effect instance with default parameters and
// optional overrides.
func NewProcessor(opts ...ProcessorOption) (*Processor, error) {
	cfg := defaultProcessorConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	params := trim.NewParams()
	params.SetGainDB(cfg.gainDB)
	params.SelectSolo(cfg.solo)
	params.SetPhaseReverse(cfg.phase)
	params.SetStereoFlip(cfg.flip)

	return &Processor{
		info:    DefaultInfo(),
		params:  params,
		binding: NewBinding(params),
		engine:  trim.NewEngine(),
	}, nil
}

// Info returns the effect metadata.
func (p *Processor) Info() Info { return p.info }

// Params returns the shared parameter state.
func (p *Processor) Params() *trim.Params { return p.params }

// Binding returns the change-event adapter for the parameter state.
func (p *Processor) Binding() *Binding { return p.binding }

// Parameters returns the parameter metadata.
func (p *Processor) Parameters() []Descriptor { return Descriptors() }

// Prepare is called before playback starts. The engine keeps no
// sample-rate dependent state, so only the arguments are checked.
func (p *Processor) Prepare(sampleRate float64, maxBlock int) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("plugin: sample rate must be > 0 and finite: %f", sampleRate)
	}

	if maxBlock <= 0 {
		return fmt.Errorf("plugin: max block size must be > 0: %d", maxBlock)
	}

	p.sampleRate = sampleRate
	p.maxBlock = maxBlock

	return nil
}

// Release is called after playback stops. Nothing is held between
// Prepare and Release.
func (p *Processor) Release() {}

// SampleRate returns the rate passed to the last Prepare, or 0.
func (p *Processor) SampleRate() float64 { return p.sampleRate }

// MaxBlock returns the block size passed to the last Prepare, or 0.
func (p *Processor) MaxBlock() int { return p.maxBlock }

// ProcessBlock transforms block in place. See trim.Engine.Process.
func (p *Processor) ProcessBlock(block [][]float64) {
	p.engine.Process(block, p.params)
}

// ProcessBlockIO handles a host buffer with more output channels than input
// channels: output channels at index numInputs and above are silenced before
// the engine runs on the whole buffer.
func (p *Processor) ProcessBlockIO(block [][]float64, numInputs int) {
	for ch := max(numInputs, 0); ch < len(block); ch++ {
		clear(block[ch])
	}

	p.engine.Process(block, p.params)
}

// NumPrograms reports one program slot.
func (p *Processor) NumPrograms() int { return 1 }

// CurrentProgram always returns 0.
func (p *Processor) CurrentProgram() int { return 0 }

// SetProgram ignores the request; there is only one program.
func (p *Processor) SetProgram(int) {}

// ProgramName returns the name of the single program slot.
func (p *Processor) ProgramName(index int) string {
	if index != 0 {
		return ""
	}

	return defaultProgramName
}

// SaveState returns no data: no state format is defined.
func (p *Processor) SaveState() []byte { return nil }

// LoadState ignores data: no state format is defined.
func (p *Processor) LoadState([]byte) error { return nil }
