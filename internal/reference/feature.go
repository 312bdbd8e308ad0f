package reference

import (
	"fmt"
	"strings"
)

// Feature is an SRD class feature.
type Feature struct {
	Name  string   `yaml:"name"`
	Class string   `yaml:"class"`
	Level int      `yaml:"level"`
	Desc  []string `yaml:"desc"`
}

// Details renders the feature block.
func (f *Feature) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n**Class:** %s\\\n**Level:** %d", f.Name, f.Class, f.Level)
	if len(f.Desc) > 0 {
		b.WriteString("\n\n")
		b.WriteString(textBlock(f.Desc))
	}
	return b.String()
}
