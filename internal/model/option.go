package model

// OptionID identifies one of the two competing pilot projects.
type OptionID string

const (
	OptionCustomer OptionID = "customer" // Option A: Customer-Facing Bot
	OptionInternal OptionID = "internal" // Option B: Internal Advisor-Assist
)

// Valid reports whether id names a known option.
func (id OptionID) Valid() bool {
	return id == OptionCustomer || id == OptionInternal
}

// DriverGroup separates drivers that feed the impact composite from those
// that feed the risk composite.
type DriverGroup string

const (
	GroupImpact DriverGroup = "impact"
	GroupRisk   DriverGroup = "risk"
)

// DriverSpec declares a single slider-style input and its contribution to a
// composite score.
type DriverSpec struct {
	Key     string      `json:"key" yaml:"key"`
	Label   string      `json:"label" yaml:"label"`
	Group   DriverGroup `json:"group" yaml:"group"`
	Min     int         `json:"min" yaml:"min"`
	Max     int         `json:"max" yaml:"max"`
	Weight  float64     `json:"weight" yaml:"weight"`
	Default int         `json:"default" yaml:"default"`
	Unit    string      `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// InRange reports whether v lies within the declared [Min, Max].
func (d DriverSpec) InRange(v int) bool {
	return v >= d.Min && v <= d.Max
}

// OptionSpec describes a pilot option: its labels and fixed driver table.
type OptionSpec struct {
	ID                 OptionID     `json:"id" yaml:"id"`
	Label              string       `json:"label" yaml:"label"`
	Tagline            string       `json:"tagline" yaml:"tagline"`
	RecommendationName string       `json:"recommendation_name" yaml:"recommendation_name"`
	Drivers            []DriverSpec `json:"drivers" yaml:"drivers"`
}

// Driver returns the spec for key, if declared.
func (o OptionSpec) Driver(key string) (DriverSpec, bool) {
	for _, d := range o.Drivers {
		if d.Key == key {
			return d, true
		}
	}
	return DriverSpec{}, false
}

// Group returns the drivers belonging to g, in declaration order.
func (o OptionSpec) Group(g DriverGroup) []DriverSpec {
	var out []DriverSpec
	for _, d := range o.Drivers {
		if d.Group == g {
			out = append(out, d)
		}
	}
	return out
}

// Defaults returns an OptionInput populated with every driver's default value.
func (o OptionSpec) Defaults() OptionInput {
	in := OptionInput{ID: o.ID, Drivers: make(map[string]int, len(o.Drivers))}
	for _, d := range o.Drivers {
		in.Drivers[d.Key] = d.Default
	}
	return in
}

// OptionInput is the user-controlled slider state for one option.
type OptionInput struct {
	ID      OptionID       `json:"id" yaml:"id"`
	Drivers map[string]int `json:"drivers" yaml:"drivers"`
}

// Clone returns a deep copy of the input.
func (in OptionInput) Clone() OptionInput {
	out := OptionInput{ID: in.ID, Drivers: make(map[string]int, len(in.Drivers))}
	for k, v := range in.Drivers {
		out.Drivers[k] = v
	}
	return out
}
