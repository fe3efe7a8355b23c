package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(44100), WithBlockSize(128))
	if cfg.SampleRate != 44100 {
		t.Fatalf("sample rate = %v, want 44100", cfg.SampleRate)
	}

	if cfg.BlockSize != 128 {
		t.Fatalf("block size = %d, want 128", cfg.BlockSize)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithBlockSize(-1), nil)

	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}
