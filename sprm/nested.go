package sprm

// ColorAuto is the color value meaning "automatic".
const ColorAuto = -1

func putNested(s *Sprms, parent, id ID, v *Value, policy Policy, attribute bool) {
	p := s.FindForWrite(parent)
	if p == nil {
		var attrs Sprms
		if parent == TcShd {
			attrs.Put(ShdColor, Int(ColorAuto))
			attrs.Put(ShdFill, Int(ColorAuto))
		}
		p = Props(attrs, Sprms{})
		s.Set(parent, p, policy)
	}
	if attribute {
		p.Attributes().Set(id, v, policy)
	} else {
		p.Sprms().Set(id, v, policy)
	}
}

// PutNestedAttribute sets attribute id of the parent sprm, creating the parent
// when it does not exist yet. A new cell shading parent starts with automatic
// color and fill.
func PutNestedAttribute(s *Sprms, parent, id ID, v *Value) {
	putNested(s, parent, id, v, Overwrite, true)
}

// PutNestedAttributePolicy is PutNestedAttribute with an explicit policy.
func PutNestedAttributePolicy(s *Sprms, parent, id ID, v *Value, policy Policy) {
	putNested(s, parent, id, v, policy, true)
}

// PutNestedSprm sets child sprm id of the parent sprm, creating the parent
// when needed.
func PutNestedSprm(s *Sprms, parent, id ID, v *Value) {
	putNested(s, parent, id, v, Overwrite, false)
}

// PutNestedSprmPolicy is PutNestedSprm with an explicit policy.
func PutNestedSprmPolicy(s *Sprms, parent, id ID, v *Value, policy Policy) {
	putNested(s, parent, id, v, policy, false)
}

// NestedAttribute returns attribute id of the parent sprm, or nil.
func NestedAttribute(s Sprms, parent, id ID) *Value {
	p := s.Find(parent)
	if p == nil {
		return nil
	}
	return p.attrs.Find(id)
}

// NestedSprm returns child sprm id of the parent sprm, or nil.
func NestedSprm(s Sprms, parent, id ID) *Value {
	p := s.Find(parent)
	if p == nil {
		return nil
	}
	return p.sprms.Find(id)
}

// EraseNestedAttribute removes attribute id of the parent sprm.
func EraseNestedAttribute(s *Sprms, parent, id ID) bool {
	p := s.FindForWrite(parent)
	if p == nil {
		return false
	}
	return p.Attributes().Erase(id)
}

// LastAttributes returns the attributes of the last sprm stored under id,
// ready for modification, or nil.
func LastAttributes(s *Sprms, id ID) *Sprms {
	p := s.FindLastForWrite(id)
	if p == nil {
		return nil
	}
	return p.Attributes()
}
