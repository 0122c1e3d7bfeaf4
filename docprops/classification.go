package docprops

import (
	"errors"
	"strings"
)

// ErrBlocked is returned when pasted content has a higher classification
// than the document it is pasted into.
var ErrBlocked = errors.New("docprops: classification blocks paste")

// ClassificationChecker decides whether content carrying the source user
// properties may be pasted into a document with the target properties.
type ClassificationChecker interface {
	CheckPaste(source, target map[string]string) error
}

// BusinessAuthorizationKey is the property holding the classification
// category name.
const BusinessAuthorizationKey = "urn:bails:IntellectualProperty:BusinessAuthorizationCategory:Name"

// LevelChecker compares the category named by Key against an ordered list
// of levels, lowest first. Unknown categories rank below every level.
type LevelChecker struct {
	Key    string
	Levels []string
}

// DefaultLevels are the usual TSCP categories.
var DefaultLevels = []string{"Non-Business", "General Business", "Confidential", "Internal Only"}

// NewLevelChecker returns a checker over BusinessAuthorizationKey with
// DefaultLevels.
func NewLevelChecker() *LevelChecker {
	return &LevelChecker{Key: BusinessAuthorizationKey, Levels: DefaultLevels}
}

func (c *LevelChecker) rank(props map[string]string) int {
	name, ok := props[c.Key]
	if !ok {
		return -1
	}
	for i, level := range c.Levels {
		if strings.EqualFold(level, name) {
			return i
		}
	}
	return -1
}

// CheckPaste implements ClassificationChecker.
func (c *LevelChecker) CheckPaste(source, target map[string]string) error {
	if c.rank(source) > c.rank(target) {
		return ErrBlocked
	}
	return nil
}
