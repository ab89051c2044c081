package stage

// PrimRange iterates a prim subtree depth-first, yielding both pre-order
// and post-order visits. Callers that must not process a prim twice skip
// iterations where PostVisit reports true.
//
// The iterator is single-use and not safe for concurrent use; create one
// per traversal.
type PrimRange struct {
	stack []rangeFrame
	cur   Prim
	post  bool
}

type rangeFrame struct {
	prim Prim
	post bool
}

// NewPrimRange returns an iterator rooted at root. The root itself is
// included in the range.
func NewPrimRange(root Prim) *PrimRange {
	r := &PrimRange{}
	if root != nil {
		r.stack = []rangeFrame{{prim: root}}
	}
	return r
}

// Next advances to the next visit. It returns false when the range is
// exhausted.
func (r *PrimRange) Next() bool {
	if len(r.stack) == 0 {
		r.cur = nil
		return false
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.cur, r.post = top.prim, top.post

	if !top.post {
		// Re-push for the post-order visit, then children in reverse so the
		// first child is visited first.
		r.stack = append(r.stack, rangeFrame{prim: top.prim, post: true})
		children := top.prim.Children()
		for i := len(children) - 1; i >= 0; i-- {
			r.stack = append(r.stack, rangeFrame{prim: children[i]})
		}
	}
	return true
}

// Prim returns the prim of the current visit.
func (r *PrimRange) Prim() Prim { return r.cur }

// PostVisit reports whether the current visit is the post-order revisit.
func (r *PrimRange) PostVisit() bool { return r.post }
