package roster

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var rosterYAML []byte

type document struct {
	Fighters []*Fighter `yaml:"fighters"`
}

// Load parses the embedded roster and returns the fighters keyed by id.
// Attack slots omitted from the table fall back to the base fighter's
// light/heavy/special definitions.
func Load() (map[string]*Fighter, error) {
	return Parse(rosterYAML)
}

// Parse decodes a roster document and validates it.
func Parse(data []byte) (map[string]*Fighter, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if len(doc.Fighters) == 0 {
		return nil, fmt.Errorf("parse roster: no fighters defined")
	}

	out := make(map[string]*Fighter, len(doc.Fighters))
	for _, f := range doc.Fighters {
		if f.ID == "" {
			return nil, fmt.Errorf("parse roster: fighter with empty id")
		}
		if _, dup := out[f.ID]; dup {
			return nil, fmt.Errorf("parse roster: duplicate fighter id %q", f.ID)
		}
		if f.Speed <= 0 || f.Cooldown <= 0 {
			return nil, fmt.Errorf("parse roster: fighter %q: speed and cooldown must be positive", f.ID)
		}
		if f.Light == nil {
			f.Light = defaultLight()
		}
		if f.Heavy == nil {
			f.Heavy = defaultHeavy()
		}
		if f.Special == nil {
			f.Special = defaultSpecial()
		}
		for _, a := range []*Attack{f.Light, f.Heavy, f.Special} {
			if err := validateAttack(a); err != nil {
				return nil, fmt.Errorf("parse roster: fighter %q: %w", f.ID, err)
			}
		}
		out[f.ID] = f
	}
	return out, nil
}

func validateAttack(a *Attack) error {
	switch a.Shape {
	case ShapeStrike, ShapeDash, ShapeLunge:
		if a.Reach <= 0 || a.Height <= 0 {
			return fmt.Errorf("%s attack needs positive reach and height", a.Shape)
		}
	case ShapeBurst:
		if a.Count < 1 {
			return fmt.Errorf("burst attack needs count >= 1")
		}
		if a.Reach <= 0 || a.Height <= 0 {
			return fmt.Errorf("burst attack needs positive reach and height")
		}
	case ShapeShot:
		if a.Size <= 0 {
			return fmt.Errorf("shot attack needs positive size")
		}
	case ShapeHeal:
		if a.Heal <= 0 {
			return fmt.Errorf("heal attack needs positive heal amount")
		}
	case ShapeSlam:
		if a.Size <= 0 {
			return fmt.Errorf("slam attack needs positive size")
		}
	default:
		return fmt.Errorf("unknown attack shape %q", a.Shape)
	}
	if a.Damage < 0 || a.Knockback < 0 {
		return fmt.Errorf("damage and knockback must be non-negative")
	}
	return nil
}

// IDs returns the sorted fighter ids of a loaded roster.
func IDs(r map[string]*Fighter) []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
