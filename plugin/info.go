package plugin

// Info describes the effect to a host.
type Info struct {
	ID       string
	Name     string
	Vendor   string
	Version  string
	Category string

	AcceptsMIDI  bool
	ProducesMIDI bool
	IsMIDIEffect bool

	// TailSeconds is how long output continues after input stops.
	TailSeconds float64
}

// DefaultInfo returns the metadata of the trim effect.
func DefaultInfo() Info {
	return Info{
		ID:       "com.cwbudde.algo-trim",
		Name:     "Trim",
		Vendor:   "cwbudde",
		Version:  "0.1.0",
		Category: "Fx|Tools",
	}
}

// defaultProgramName is the name of the single program slot. Some hosts do
// not cope with zero programs, so one is always reported.
const defaultProgramName = "Default"
