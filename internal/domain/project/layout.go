package project

import "fmt"

// Layout maps logical fields to positional indices in a split export line.
// Different export generations shifted every column by one position, so the
// mapping is explicit and versioned instead of hard-coded in the parser.
type Layout struct {
	Version   string
	MinFields int
	Positions map[Field]int
}

// LayoutV1 matches exports whose lines start with the delimiter, leaving an
// empty piece at index 0. This is the canonical layout.
var LayoutV1 = Layout{
	Version:   "v1",
	MinFields: 9,
	Positions: map[Field]int{
		FieldPriorityLine:          1,
		FieldManager:               2,
		FieldNetwork:               3,
		FieldStudy:                 4,
		FieldStatus:                5,
		FieldDataSupport:           6,
		FieldPrincipalInvestigator: 7,
		FieldCoInvestigators:       8,
		FieldNationalNetwork:       9,
	},
}

// LayoutV2 matches exports without the leading delimiter; every column sits
// one position earlier.
var LayoutV2 = Layout{
	Version:   "v2",
	MinFields: 9,
	Positions: map[Field]int{
		FieldPriorityLine:          0,
		FieldManager:               1,
		FieldNetwork:               2,
		FieldStudy:                 3,
		FieldStatus:                4,
		FieldDataSupport:           5,
		FieldPrincipalInvestigator: 6,
		FieldCoInvestigators:       7,
		FieldNationalNetwork:       8,
	},
}

// LayoutByVersion resolves a layout by its version name.
func LayoutByVersion(version string) (Layout, error) {
	switch version {
	case "", LayoutV1.Version:
		return LayoutV1, nil
	case LayoutV2.Version:
		return LayoutV2, nil
	default:
		return Layout{}, fmt.Errorf("%w: %q", ErrUnknownLayout, version)
	}
}

// pick returns the field at the layout's position for f, or "" when the
// split line is too short.
func (l Layout) pick(parts []string, f Field) string {
	idx, ok := l.Positions[f]
	if !ok || idx < 0 || idx >= len(parts) {
		return ""
	}
	return parts[idx]
}
