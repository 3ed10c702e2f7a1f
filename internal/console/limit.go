package console

import "strconv"

// Limit bounds how many entries a single render pass emits. It never
// bounds how many entries may be appended. The zero value is no limit.
// Limits are comparable with ==.
type Limit struct {
	max     int
	limited bool
}

// NoLimit returns the unbounded limit policy.
func NoLimit() Limit {
	return Limit{}
}

// LimitedTo returns a policy rendering at most max entries per pass.
// A limit of zero is valid: such a render emits only the truncation note.
func LimitedTo(max int) Limit {
	return Limit{max: max, limited: true}
}

// String is the canonical display form: the count, or "[no limit]".
func (l Limit) String() string {
	if !l.limited {
		return "[no limit]"
	}
	return strconv.Itoa(l.max)
}
