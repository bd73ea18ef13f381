package genealogy

import "github.com/matzehuels/rimealogy/pkg/world"

// Edge colors.
const (
	colorDefault = "black"
	colorFormer  = "brown"
	colorDeath   = "#80800080"
)

// DeceasedMarker is appended to the labels of named persons who are dead.
const DeceasedMarker = "💀"

// Palette holds node fill colors.
type Palette struct {
	Player    string `toml:"player" yaml:"player" json:"player"`
	Neutral   string `toml:"neutral" yaml:"neutral" json:"neutral"`
	Friendly  string `toml:"friendly" yaml:"friendly" json:"friendly"`
	Hostile   string `toml:"hostile" yaml:"hostile" json:"hostile"`
	Anonymous string `toml:"anonymous" yaml:"anonymous" json:"anonymous"`
}

// DefaultPalette returns the standard pastel palette.
func DefaultPalette() Palette {
	return Palette{
		Player:    "#DDDDFF",
		Neutral:   "#DDDDDD",
		Friendly:  "#DDFFDD",
		Hostile:   "#FFDDDD",
		Anonymous: "#EEEEEE",
	}
}

// WithDefaults returns p with empty entries taken from [DefaultPalette].
func (p Palette) WithDefaults() Palette {
	d := DefaultPalette()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&p.Player, d.Player)
	fill(&p.Neutral, d.Neutral)
	fill(&p.Friendly, d.Friendly)
	fill(&p.Hostile, d.Hostile)
	fill(&p.Anonymous, d.Anonymous)
	return p
}

// Fill returns the fill color for a faction standing.
func (p Palette) Fill(s world.Standing) string {
	switch s {
	case world.StandingPlayer:
		return p.Player
	case world.StandingFriendly:
		return p.Friendly
	case world.StandingHostile:
		return p.Hostile
	default:
		return p.Neutral
	}
}
