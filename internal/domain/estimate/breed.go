// Package estimate turns girth and body-length measurements into live-weight
// and meat-yield estimates using published livestock heart-girth formulas.
package estimate

import (
	"fmt"
	"strings"
)

// Breed identifies the animal's breed for dressing-percentage adjustment.
type Breed int

// Supported breeds. The first five are beef breeds, Holstein and Jersey are
// dairy breeds; Brahman and Other carry no adjustment.
const (
	Angus Breed = iota
	Hereford
	Charolais
	Limousin
	Simmental
	Brahman
	Holstein
	Jersey
	OtherBreed
)

var breedNames = map[Breed]string{
	Angus:      "angus",
	Hereford:   "hereford",
	Charolais:  "charolais",
	Limousin:   "limousin",
	Simmental:  "simmental",
	Brahman:    "brahman",
	Holstein:   "holstein",
	Jersey:     "jersey",
	OtherBreed: "other",
}

// String returns the lowercase breed name.
func (b Breed) String() string {
	if name, ok := breedNames[b]; ok {
		return name
	}
	return "other"
}

// IsBeef reports whether the breed receives the beef dressing adjustment.
func (b Breed) IsBeef() bool {
	switch b {
	case Angus, Hereford, Charolais, Limousin, Simmental:
		return true
	default:
		return false
	}
}

// IsDairy reports whether the breed receives the dairy dressing adjustment.
func (b Breed) IsDairy() bool {
	return b == Holstein || b == Jersey
}

// ParseBreed parses a case-insensitive breed name.
func ParseBreed(s string) (Breed, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for b, name := range breedNames {
		if name == needle {
			return b, nil
		}
	}
	return OtherBreed, fmt.Errorf("%w: %q", ErrUnknownBreed, s)
}

// Breeds returns all breeds in declaration order.
func Breeds() []Breed {
	return []Breed{Angus, Hereford, Charolais, Limousin, Simmental, Brahman, Holstein, Jersey, OtherBreed}
}

// Condition is the body-condition score, ordered from thin to excellent.
type Condition int

// Supported body conditions.
const (
	Thin Condition = iota
	Average
	Good
	Excellent
)

var conditionNames = map[Condition]string{
	Thin:      "thin",
	Average:   "average",
	Good:      "good",
	Excellent: "excellent",
}

// String returns the lowercase condition name.
func (c Condition) String() string {
	if name, ok := conditionNames[c]; ok {
		return name
	}
	return "average"
}

// ParseCondition parses a case-insensitive condition name.
func ParseCondition(s string) (Condition, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for c, name := range conditionNames {
		if name == needle {
			return c, nil
		}
	}
	return Average, fmt.Errorf("%w: %q", ErrUnknownCondition, s)
}

// Conditions returns all conditions ordered from thin to excellent.
func Conditions() []Condition {
	return []Condition{Thin, Average, Good, Excellent}
}
