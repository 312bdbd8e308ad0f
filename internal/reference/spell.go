package reference

import (
	"fmt"
	"strings"
)

// Spell is an SRD spell.
type Spell struct {
	Name          string        `yaml:"name"`
	Level         int           `yaml:"level"`
	School        string        `yaml:"school"`
	Ritual        bool          `yaml:"ritual"`
	Concentration bool          `yaml:"concentration"`
	CastingTime   string        `yaml:"casting_time"`
	Range         string        `yaml:"range"`
	Area          *AreaOfEffect `yaml:"area_of_effect"`
	Components    []string      `yaml:"components"`
	Material      string        `yaml:"material"`
	Duration      string        `yaml:"duration"`
	Desc          []string      `yaml:"desc"`
	HigherLevel   []string      `yaml:"higher_level"`
}

// AreaOfEffect is the shape and size in feet of a spell's area.
type AreaOfEffect struct {
	Type string `yaml:"type"`
	Size int    `yaml:"size"`
}

// LevelLine is the italic line under the heading, e.g. "3rd-level evocation".
func (s *Spell) LevelLine() string {
	var line string
	switch s.Level {
	case 0:
		line = s.School + " cantrip"
	default:
		line = ordinal(s.Level) + "-level " + strings.ToLower(s.School)
	}
	if s.Ritual {
		line += " (ritual)"
	}
	return line
}

// Details renders the spell block.
func (s *Spell) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n*%s*\n\n", s.Name, s.LevelLine())
	fmt.Fprintf(&b, "**Casting Time:** %s", s.CastingTime)

	fmt.Fprintf(&b, "\\\n**Range:** %s", s.Range)
	if s.Area != nil && s.Area.Type != "" && s.Area.Size > 0 {
		fmt.Fprintf(&b, " (%d' %s)", s.Area.Size, s.Area.Type)
	}

	if len(s.Components) > 0 {
		fmt.Fprintf(&b, "\\\n**Components:** %s", strings.Join(s.Components, ", "))
		if s.Material != "" {
			fmt.Fprintf(&b, " (%s)", strings.ToLower(strings.TrimRight(s.Material, ".")))
		}
	}

	if s.Concentration {
		fmt.Fprintf(&b, "\\\n**Duration:** Concentration, %s", strings.ToLower(s.Duration))
	} else {
		fmt.Fprintf(&b, "\\\n**Duration:** %s", s.Duration)
	}

	if len(s.Desc) > 0 {
		b.WriteString("\n\n")
		b.WriteString(textBlock(s.Desc))
	}
	if len(s.HigherLevel) > 0 {
		b.WriteString("\n\n***At higher levels:*** ")
		b.WriteString(textBlock(s.HigherLevel))
	}
	return b.String()
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}

func textBlock(paragraphs []string) string {
	return strings.Join(paragraphs, "\n\n")
}
