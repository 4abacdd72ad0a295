package container

import "strings"

// DepSpec is the parsed form of a dependency descriptor string. Suffixes
// compose commutatively and only apply when a descriptor comes from a
// registration's dependency list — never to the name passed directly to
// Register or Get.
type DepSpec struct {
	Name     string
	Optional bool
	Factory  bool
}

const factorySigil = "Factory"

// parseDep strips the "?" (optional), "!" (factory), and trailing literal
// "Factory" sigils from a raw dependency descriptor, in any order, leaving
// the base service name.
func parseDep(raw string) DepSpec {
	name := raw
	spec := DepSpec{}

	for {
		switch {
		case strings.HasSuffix(name, "?"):
			spec.Optional = true
			name = strings.TrimSuffix(name, "?")
		case strings.HasSuffix(name, "!"):
			spec.Factory = true
			name = strings.TrimSuffix(name, "!")
		case strings.HasSuffix(name, factorySigil) && len(name) > len(factorySigil):
			spec.Factory = true
			name = strings.TrimSuffix(name, factorySigil)
		default:
			spec.Name = name
			return spec
		}
	}
}
