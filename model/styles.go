package model

import (
	"strconv"
	"strings"

	"github.com/tsawler/rtfimport/importer"
	"github.com/tsawler/rtfimport/sprm"
)

// styleDef is one style sheet entry. The formatting holds only what
// differs from the parent style.
type styleDef struct {
	name    string
	typ     int
	basedOn int
	pPr     sprm.Sprms
	rPr     sprm.Sprms
}

// styleSheet resolves style names to their effective formatting.
type styleSheet struct {
	byIndex map[int]*styleDef
	byName  map[string]int
}

func newStyleSheet() *styleSheet {
	return &styleSheet{byIndex: make(map[int]*styleDef), byName: make(map[string]int)}
}

// load replaces the style definitions with those of t.
func (s *styleSheet) load(t *importer.Table) {
	s.byIndex = make(map[int]*styleDef)
	s.byName = make(map[string]int)
	for _, e := range t.Entries {
		def := &styleDef{basedOn: -1, typ: sprm.StyleTypeParagraph}
		p := e.Props
		if v := p.Sprms.Find(sprm.StyleName); v != nil {
			def.name = v.Str()
		}
		if v := p.Attributes.Find(sprm.StyleType); v != nil {
			def.typ = v.Int()
		}
		if v := p.Sprms.Find(sprm.StyleBasedOn); v != nil {
			def.basedOn = v.Int()
		}
		if v := p.Sprms.Find(sprm.StylePPr); v != nil {
			def.pPr = v.Sprms().Clone()
		}
		if v := p.Sprms.Find(sprm.StyleRPr); v != nil {
			def.rPr = v.Sprms().Clone()
		}
		s.byIndex[e.Index] = def
		if def.name != "" {
			s.byName[def.name] = e.Index
		}
	}
}

// chain returns the style at index and its ancestors, root first.
func (s *styleSheet) chain(index int) []*styleDef {
	var out []*styleDef
	seen := make(map[int]bool)
	for index >= 0 && !seen[index] {
		def, ok := s.byIndex[index]
		if !ok {
			break
		}
		seen[index] = true
		out = append(out, def)
		index = def.basedOn
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// index returns the index of the named style. An empty name is the default
// paragraph style.
func (s *styleSheet) index(name string) int {
	if name == "" {
		return 0
	}
	if i, ok := s.byName[name]; ok {
		return i
	}
	return -1
}

// paragraph returns the effective paragraph and character formatting of
// the named paragraph style.
func (s *styleSheet) paragraph(name string) (pPr, rPr sprm.Sprms) {
	for _, def := range s.chain(s.index(name)) {
		merge(&pPr, def.pPr)
		merge(&rPr, def.rPr)
	}
	return pPr, rPr
}

// character returns the effective formatting of the named character style.
func (s *styleSheet) character(name string) sprm.Sprms {
	var rPr sprm.Sprms
	if name == "" {
		return rPr
	}
	i, ok := s.byName[name]
	if !ok {
		return rPr
	}
	for _, def := range s.chain(i) {
		merge(&rPr, def.rPr)
	}
	return rPr
}

// merge puts the entries of src over dst.
func merge(dst *sprm.Sprms, src sprm.Sprms) {
	for _, e := range src.Entries() {
		dst.Put(e.ID, e.Value)
	}
}

// headingLevel derives a heading level from an outline level, which is
// 0-based, or from a "heading N" style name. It returns 0 for body text.
func headingLevel(outline *sprm.Value, styleName string) int {
	if outline != nil {
		if n := outline.Int(); n >= 0 && n < 9 {
			return min(n+1, 6)
		}
		return 0
	}
	name := strings.ToLower(strings.TrimSpace(styleName))
	switch {
	case name == "title":
		return 1
	case strings.HasPrefix(name, "heading "):
		n, err := strconv.Atoi(strings.TrimSpace(name[len("heading "):]))
		if err == nil && n >= 1 {
			return min(n, 6)
		}
	}
	return 0
}

// levelDef is one level of a numbering definition.
type levelDef struct {
	format int
	start  int
	text   string
}

// numbering resolves \ls numbers to level definitions.
type numbering struct {
	nums      map[int]int
	overrides map[int]map[int]int
	abstracts map[int]map[int]levelDef
}

func newNumbering() *numbering {
	return &numbering{
		nums:      make(map[int]int),
		overrides: make(map[int]map[int]int),
		abstracts: make(map[int]map[int]levelDef),
	}
}

// load replaces the definitions with those of the numbering table.
func (n *numbering) load(t *importer.Table) {
	*n = *newNumbering()
	p := t.Lookup(0)
	if p == nil {
		return
	}
	for _, e := range p.Sprms.Entries() {
		switch e.ID {
		case sprm.AbstractNum:
			id := e.Value.Attributes().Find(sprm.AbstractNumID)
			if id == nil {
				continue
			}
			levels := make(map[int]levelDef)
			for _, l := range e.Value.Sprms().Entries() {
				if l.ID != sprm.Lvl {
					continue
				}
				ilvl := 0
				if v := l.Value.Attributes().Find(sprm.LvlIlvl); v != nil {
					ilvl = v.Int()
				}
				def := levelDef{start: 1}
				ls := l.Value.Sprms()
				if v := ls.Find(sprm.LvlNumFmt); v != nil {
					def.format = v.Int()
				}
				if v := ls.Find(sprm.LvlStart); v != nil {
					def.start = v.Int()
				}
				if v := ls.Find(sprm.LvlText); v != nil {
					if t := v.Attributes().Find(sprm.LvlTextVal); t != nil {
						def.text = t.Str()
					}
				}
				levels[ilvl] = def
			}
			n.abstracts[id.Int()] = levels
		case sprm.Num:
			id := e.Value.Attributes().Find(sprm.NumID)
			abs := e.Value.Sprms().Find(sprm.NumAbstractNumID)
			if id == nil || abs == nil {
				continue
			}
			n.nums[id.Int()] = abs.Int()
			for _, o := range e.Value.Sprms().Entries() {
				if o.ID != sprm.LvlOverride {
					continue
				}
				ilvl := o.Value.Attributes().Find(sprm.LvlOverrideIlvl)
				start := o.Value.Sprms().Find(sprm.StartOverride)
				if ilvl == nil || start == nil {
					continue
				}
				if n.overrides[id.Int()] == nil {
					n.overrides[id.Int()] = make(map[int]int)
				}
				n.overrides[id.Int()][ilvl.Int()] = start.Int()
			}
		}
	}
}

// level returns the definition of level ilvl of list numID.
func (n *numbering) level(numID, ilvl int) (levelDef, bool) {
	abs, ok := n.nums[numID]
	if !ok {
		return levelDef{}, false
	}
	def, ok := n.abstracts[abs][ilvl]
	if !ok {
		return levelDef{}, false
	}
	if start, ok := n.overrides[numID][ilvl]; ok {
		def.start = start
	}
	return def, true
}

// ordered reports whether a level shows numbers rather than a bullet.
func (d levelDef) ordered() bool {
	return d.format != sprm.NumFmtBullet && d.format != sprm.NumFmtNone
}

// bullets are used for levels whose bullet is a symbol font character.
var bullets = []string{"•", "○", "■", "□", "▪", "▫", "►", "◦"}

// bulletChar returns a displayable bullet for a level text.
func bulletChar(text string, level int) string {
	if text != "" && !strings.Contains(text, "%") && isRenderableBullet(text) {
		return text
	}
	if level >= 0 && level < len(bullets) {
		return bullets[level]
	}
	return "•"
}

// isRenderableBullet rejects private use characters, which only display in
// symbol fonts, and control characters.
func isRenderableBullet(s string) bool {
	for _, r := range s {
		if r >= 0xE000 && r <= 0xF8FF || r < 0x20 {
			return false
		}
	}
	return len(s) > 0
}

// listLabel expands the %N placeholders of a level text with the counters
// of the levels above and including this one.
func listLabel(text string, counters []int, formats []int) string {
	var sb strings.Builder
	rs := []rune(text)
	for i := 0; i < len(rs); i++ {
		if rs[i] == '%' && i+1 < len(rs) && rs[i+1] >= '1' && rs[i+1] <= '9' {
			lvl := int(rs[i+1] - '1')
			if lvl < len(counters) {
				f := sprm.NumFmtDecimal
				if lvl < len(formats) {
					f = formats[lvl]
				}
				sb.WriteString(formatNumber(counters[lvl], f))
			}
			i++
			continue
		}
		sb.WriteRune(rs[i])
	}
	return sb.String()
}

// formatNumber renders n in a list number format.
func formatNumber(n, format int) string {
	switch format {
	case sprm.NumFmtUpperRoman:
		return strings.ToUpper(roman(n))
	case sprm.NumFmtLowerRoman:
		return roman(n)
	case sprm.NumFmtUpperLetter:
		return strings.ToUpper(letters(n))
	case sprm.NumFmtLowerLetter:
		return letters(n)
	case sprm.NumFmtDecimalZero:
		if n < 10 {
			return "0" + strconv.Itoa(n)
		}
	case sprm.NumFmtNone:
		return ""
	}
	return strconv.Itoa(n)
}

var romanNumerals = []struct {
	value int
	digit string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"}, {100, "c"}, {90, "xc"},
	{50, "l"}, {40, "xl"}, {10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

func roman(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	var sb strings.Builder
	for _, r := range romanNumerals {
		for n >= r.value {
			sb.WriteString(r.digit)
			n -= r.value
		}
	}
	return sb.String()
}

// letters renders 1 as a, 26 as z, 27 as aa.
func letters(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	c := string(rune('a' + (n-1)%26))
	return strings.Repeat(c, (n-1)/26+1)
}
