package data

// Domain is the schema of a table: ordered attributes plus optional
// class variables. Deriving routines build new Domains instead of
// mutating an existing one, so a Domain can be shared freely once built.
type Domain struct {
	// Attributes are the feature columns, in table column order.
	Attributes []Variable

	// ClassVars are the target columns, usually zero or one.
	ClassVars []Variable
}

// NewDomain creates a domain over copies of the given variable slices.
func NewDomain(attributes, classVars []Variable) *Domain {
	d := &Domain{
		Attributes: make([]Variable, len(attributes)),
		ClassVars:  make([]Variable, len(classVars)),
	}
	copy(d.Attributes, attributes)
	copy(d.ClassVars, classVars)
	return d
}

// Variables returns the attributes followed by the class variables.
func (d *Domain) Variables() []Variable {
	out := make([]Variable, 0, len(d.Attributes)+len(d.ClassVars))
	out = append(out, d.Attributes...)
	return append(out, d.ClassVars...)
}

// ByName returns the variable with the given name, searching the
// attributes first and the class variables second.
func (d *Domain) ByName(name string) (Variable, bool) {
	for _, v := range d.Attributes {
		if v.Name() == name {
			return v, true
		}
	}
	for _, v := range d.ClassVars {
		if v.Name() == name {
			return v, true
		}
	}
	return nil, false
}

// ClassVar returns the first class variable, or nil when there is none.
func (d *Domain) ClassVar() Variable {
	if len(d.ClassVars) == 0 {
		return nil
	}
	return d.ClassVars[0]
}

// HasDiscreteClass reports whether the domain has a class variable and
// the first one is discrete.
func (d *Domain) HasDiscreteClass() bool {
	cv := d.ClassVar()
	return cv != nil && cv.IsDiscrete()
}

// index locates v by name and reports its column position and whether
// the position is in the class part.
func (d *Domain) index(v Variable) (pos int, class, ok bool) {
	for i, a := range d.Attributes {
		if a.Name() == v.Name() {
			return i, false, true
		}
	}
	for i, c := range d.ClassVars {
		if c.Name() == v.Name() {
			return i, true, true
		}
	}
	return 0, false, false
}
