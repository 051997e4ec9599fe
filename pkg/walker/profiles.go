package walker

import (
	"fmt"
	"sort"
)

// WalkProfile is a named, immutable bundle of walk parameters.
type WalkProfile struct {
	Name            string  `json:"name"`
	Steps           int     `json:"steps"`
	MaxFlips        int     `json:"max_flips"`
	Temperature     float64 `json:"temperature"`
	FrequencyWeight float64 `json:"frequency_weight"`
}

// Validate checks the profile's parameters against their documented ranges.
// MaxFlips is checked against the absolute build limit here; a walk
// additionally checks it against the radius its graph was built with.
func (p WalkProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: profile name must not be empty", ErrInvalidParameter)
	}
	if p.Steps < 1 {
		return fmt.Errorf("%w: profile %q steps %d, want >= 1", ErrInvalidParameter, p.Name, p.Steps)
	}
	if p.MaxFlips < 1 || p.MaxFlips > MaxBuildDistance {
		return fmt.Errorf("%w: profile %q max flips %d, want 1..%d", ErrInvalidParameter, p.Name, p.MaxFlips, MaxBuildDistance)
	}
	if p.Temperature <= 0 {
		return fmt.Errorf("%w: profile %q temperature %g, want > 0", ErrInvalidParameter, p.Name, p.Temperature)
	}
	if p.FrequencyWeight < -2 || p.FrequencyWeight > 2 {
		return fmt.Errorf("%w: profile %q frequency weight %g, want -2..2", ErrInvalidParameter, p.Name, p.FrequencyWeight)
	}
	return nil
}

// builtinProfiles are the walk presets every registry starts with.
var builtinProfiles = []WalkProfile{
	{Name: "clerical", Steps: 5, MaxFlips: 1, Temperature: 0.3, FrequencyWeight: 1.0},
	{Name: "dialect", Steps: 5, MaxFlips: 2, Temperature: 0.7, FrequencyWeight: 0.0},
	{Name: "goblin", Steps: 5, MaxFlips: 2, Temperature: 1.5, FrequencyWeight: -0.5},
	{Name: "ritual", Steps: 5, MaxFlips: 3, Temperature: 2.5, FrequencyWeight: -1.0},
}

// ProfileRegistry maps profile names to parameter bundles. A registry is
// populated at startup (built-ins plus any configured extras) and read-only
// afterwards; it is not safe to Register concurrently with walks.
type ProfileRegistry struct {
	profiles map[string]WalkProfile
}

// NewProfileRegistry returns a registry preloaded with the built-in
// clerical, dialect, goblin and ritual presets.
func NewProfileRegistry() *ProfileRegistry {
	r := &ProfileRegistry{profiles: make(map[string]WalkProfile, len(builtinProfiles))}
	for _, p := range builtinProfiles {
		r.profiles[p.Name] = p
	}
	return r
}

// Register validates and adds a profile, overwriting any existing profile
// with the same name. This is how service configuration extends the
// built-in preset table.
func (r *ProfileRegistry) Register(p WalkProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.profiles[p.Name] = p
	return nil
}

// Resolve returns the profile registered under the given name.
func (r *ProfileRegistry) Resolve(name string) (WalkProfile, error) {
	p, ok := r.profiles[name]
	if !ok {
		return WalkProfile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

// Profiles returns all registered profiles sorted by name.
func (r *ProfileRegistry) Profiles() []WalkProfile {
	out := make([]WalkProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
