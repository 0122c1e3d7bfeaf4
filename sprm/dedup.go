package sprm

// defaultFor returns the value a property takes when it is not specified,
// for properties where that differs from "absent".
func defaultFor(id ID, styleType int) *Value {
	if styleType == StyleTypeCharacter {
		switch id {
		case Size, SizeCS:
			return Int(24)
		case ColorVal:
			return Int(0)
		case Bold, BoldCS, Italic, ItalicCS:
			return Int(0)
		case UnderlineVal:
			return Int(UnderlineNone)
		case FontsASCII, FontsEastAsia, FontsCS:
			return String("Times New Roman")
		}
	}
	if styleType == 0 || styleType == StyleTypeParagraph {
		switch id {
		case SpacingBefore, SpacingAfter, IndLeft, IndRight, IndFirstLine:
			return Int(0)
		case SpacingLineRule:
			return Int(RuleAuto)
		case SpacingLine:
			return Int(240)
		case PageBreakBefore:
			return Int(0)
		}
	}
	return nil
}

// childrenExpected lists sprms that must be kept even when deduplication
// empties them.
func childrenExpected(id ID) bool {
	return id == PBdr
}

// keepDuplicate lists properties that are never removed even when the style
// carries the same value.
func keepDuplicate(id ID, direct *Sprms) bool {
	switch id {
	case TabVal, TabLeader, TabPos,
		SpacingBeforeAutospacing, SpacingAfterAutospacing,
		BorderSz, BorderVal, BorderColor, BorderSpace,
		BdrTop, BdrLeft, BdrBottom, BdrRight,
		StyleType, StyleID, StyleName, StyleBasedOn:
		return true
	case IndFirstLine, IndLeft:
		return direct != nil && direct.Has(NumPr)
	}
	return false
}

// CloneAndDeduplicate returns a copy of s that only carries what differs
// from the reference (usually a style):
//
//   - properties equal to the reference are removed;
//   - nested properties are deduplicated recursively;
//   - properties the reference sets but s does not get their default value,
//     when one is known, since RTF formatting never inherits from the style.
//
// direct, when not nil, holds the direct paragraph properties and is used
// to keep list indents.
func (s Sprms) CloneAndDeduplicate(ref Sprms, styleType int, direct *Sprms) Sprms {
	ret := s.Clone()
	ret.ensureCopyBeforeWrite()
	for _, r := range ref.Entries() {
		own := ret.Find(r.ID)
		if own != nil {
			if r.Value.Equal(own) && !keepDuplicate(r.ID, direct) {
				ret.Erase(r.ID)
				continue
			}
			if r.Value.HasChildren() {
				sprms := own.sprms.CloneAndDeduplicate(r.Value.sprms, styleType, nil)
				attrs := own.attrs.CloneAndDeduplicate(r.Value.attrs, styleType, nil)
				if sprms.Empty() && attrs.Empty() && !childrenExpected(r.ID) {
					ret.Erase(r.ID)
				} else {
					ret.Put(r.ID, Props(attrs, sprms))
				}
			}
			continue
		}
		if def := defaultFor(r.ID, styleType); def != nil {
			ret.Put(r.ID, def)
			continue
		}
		if r.Value.HasChildren() {
			sprms := Sprms{}.CloneAndDeduplicate(r.Value.sprms, styleType, nil)
			attrs := Sprms{}.CloneAndDeduplicate(r.Value.attrs, styleType, nil)
			if !sprms.Empty() || !attrs.Empty() {
				ret.Put(r.ID, Props(attrs, sprms))
				if direct != nil {
					direct.Put(r.ID, Props(attrs, sprms))
				}
			}
		}
	}
	return ret
}

func listLevel(s Sprms) int {
	if v := NestedSprm(s, NumPr, NumPrIlvl); v != nil {
		return v.Int()
	}
	return 0
}

// DuplicateList copies the indents of the active list level of abstract onto
// the paragraph properties s, where s does not set them itself. This keeps
// the list indents when the paragraph is later deduplicated against its
// style.
func (s *Sprms) DuplicateList(abstract *Value) {
	if abstract == nil {
		return
	}
	level := listLevel(*s)
	for _, lvl := range abstract.sprms.Entries() {
		if lvl.ID != Lvl {
			continue
		}
		ilvl := lvl.Value.attrs.Find(LvlIlvl)
		if ilvl == nil || ilvl.Int() != level {
			continue
		}
		for _, p := range lvl.Value.sprms.Entries() {
			if p.ID != Ind {
				continue
			}
			for _, a := range p.Value.attrs.Entries() {
				if a.ID != IndLeft && a.ID != IndFirstLine {
					continue
				}
				if NestedAttribute(*s, Ind, a.ID) == nil {
					PutNestedAttribute(s, Ind, a.ID, a.Value)
				}
			}
		}
	}
}

// DeduplicateList removes a paragraph first-line indent that only repeats an
// invalid indent recorded for the list level.
func (s *Sprms) DeduplicateList(invalidFirstIndents map[int]int) {
	want, ok := invalidFirstIndents[listLevel(*s)]
	if !ok {
		return
	}
	v := NestedAttribute(*s, Ind, IndFirstLine)
	if v == nil {
		return
	}
	if v.Int() == want {
		EraseNestedAttribute(s, Ind, IndFirstLine)
	}
}
