package constraints

import "github.com/nextmv-io/sdk/mip"

// reifyOr creates a fresh boolean "has" and posts the paired linear
// inequalities that make has = OR(bools) hold at every integral solution:
// has is forced to 1 if any input is 1, and forced to 0 only if all are 0.
// This is the same paired-inequality technique order-fulfillment-gosdk uses
// to pin its billable-weight variable to a max() of two linear expressions,
// generalized to an arbitrary-width boolean OR.
func reifyOr(m mip.Model, bools []mip.Bool) mip.Bool {
	has := m.NewBool()
	if len(bools) == 0 {
		// An OR over no terms is false; pin has to 0.
		pin := m.NewConstraint(mip.Equal, 0)
		pin.NewTerm(1, has)
		return has
	}
	sum := m.NewConstraint(mip.LessThanOrEqual, 0)
	sum.NewTerm(1, has)
	for _, b := range bools {
		sum.NewTerm(-1, b)
		upper := m.NewConstraint(mip.LessThanOrEqual, 0)
		upper.NewTerm(1, b)
		upper.NewTerm(-1, has)
	}
	return has
}

// reifyComplement creates a fresh boolean that equals 1-a at every
// integral solution.
func reifyComplement(m mip.Model, a mip.Bool) mip.Bool {
	v := m.NewBool()
	link := m.NewConstraint(mip.Equal, 1)
	link.NewTerm(1, v)
	link.NewTerm(1, a)
	return v
}

// reifyEqual creates a fresh boolean equal to a at every integral solution;
// used when a violation indicator must alias an existing variable rather
// than negate it.
func reifyEqual(m mip.Model, a mip.Bool) mip.Bool {
	v := m.NewBool()
	link := m.NewConstraint(mip.Equal, 0)
	link.NewTerm(1, v)
	link.NewTerm(-1, a)
	return v
}

// reifyAnd creates a fresh boolean that equals a AND b at every integral
// solution, via the textbook three-inequality linearization.
func reifyAnd(m mip.Model, a, b mip.Bool) mip.Bool {
	v := m.NewBool()
	c1 := m.NewConstraint(mip.LessThanOrEqual, 0)
	c1.NewTerm(1, v)
	c1.NewTerm(-1, a)
	c2 := m.NewConstraint(mip.LessThanOrEqual, 0)
	c2.NewTerm(1, v)
	c2.NewTerm(-1, b)
	c3 := m.NewConstraint(mip.LessThanOrEqual, 1)
	c3.NewTerm(1, a)
	c3.NewTerm(1, b)
	c3.NewTerm(-1, v)
	return v
}

// reifyAndNot creates a fresh boolean that equals a AND (NOT b) at every
// integral solution, used by the shift-order-preference constraint
// (trigger ∧ ¬preferred).
func reifyAndNot(m mip.Model, a, b mip.Bool) mip.Bool {
	v := m.NewBool()
	c1 := m.NewConstraint(mip.LessThanOrEqual, 0)
	c1.NewTerm(1, v)
	c1.NewTerm(-1, a)
	c2 := m.NewConstraint(mip.LessThanOrEqual, 1)
	c2.NewTerm(1, v)
	c2.NewTerm(1, b)
	c3 := m.NewConstraint(mip.LessThanOrEqual, 0)
	c3.NewTerm(1, a)
	c3.NewTerm(-1, b)
	c3.NewTerm(-1, v)
	return v
}

// pinTrue posts a constraint that forces a boolean to 1, used to encode a
// compile-time-true trigger (e.g. an unavailability trigger known to hold)
// without special-casing downstream reification code.
func pinTrue(m mip.Model, a mip.Bool) {
	c := m.NewConstraint(mip.Equal, 1)
	c.NewTerm(1, a)
}

// pinFalse posts a constraint that forces a boolean to 0.
func pinFalse(m mip.Model, a mip.Bool) {
	c := m.NewConstraint(mip.Equal, 0)
	c.NewTerm(1, a)
}
