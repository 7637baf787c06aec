// Package model holds the generic nested representation a parsed
// transaction set is bound into: a tree of LoopRecord nodes, each owning
// the segments that belong to one loop instance and the child loop
// instances nested beneath it. Transaction shapes vary per (transaction
// code, version), so this core stays dynamic — the same split golevel7
// draws between its dynamic hl7.Message/Segment core and the typed
// segments.MSH/segments.PID convenience layer bound via struct tags. The
// typed convenience layer here is the transactions package, built on top
// of LoopRecord via bind.
package model

import "github.com/edihub/x12/x12"

// LoopRecord is one instance of one loop within a bound transaction set.
// The root LoopRecord represents the transaction set itself (ST...SE).
type LoopRecord struct {
	LoopID   string
	Parent   *LoopRecord
	Segments []x12.Segment
	Children []*LoopRecord
}

// NewRecord creates an empty loop instance with the given parent. parent
// may be nil only for the transaction-set root.
func NewRecord(loopID string, parent *LoopRecord) *LoopRecord {
	return &LoopRecord{LoopID: loopID, Parent: parent}
}

// AddSegment appends a segment directly owned by this loop instance (not
// by any of its children).
func (r *LoopRecord) AddSegment(seg x12.Segment) {
	r.Segments = append(r.Segments, seg)
}

// AddChild appends a nested loop instance.
func (r *LoopRecord) AddChild(child *LoopRecord) {
	r.Children = append(r.Children, child)
}

// Segment returns the first segment with the given ID owned directly by
// this loop instance.
func (r *LoopRecord) Segment(id string) (x12.Segment, bool) {
	for _, s := range r.Segments {
		if s.ID == id {
			return s, true
		}
	}
	return x12.Segment{}, false
}

// SegmentsByID returns every segment with the given ID owned directly by
// this loop instance, in wire order.
func (r *LoopRecord) SegmentsByID(id string) []x12.Segment {
	var out []x12.Segment
	for _, s := range r.Segments {
		if s.ID == id {
			out = append(out, s)
		}
	}
	return out
}

// Find returns the first descendant (depth-first, including r itself)
// whose LoopID matches id.
func (r *LoopRecord) Find(id string) *LoopRecord {
	if r.LoopID == id {
		return r
	}
	for _, c := range r.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant (including r itself) whose LoopID
// matches id, in depth-first wire order.
func (r *LoopRecord) FindAll(id string) []*LoopRecord {
	var out []*LoopRecord
	if r.LoopID == id {
		out = append(out, r)
	}
	for _, c := range r.Children {
		out = append(out, c.FindAll(id)...)
	}
	return out
}

// AllSegments flattens every segment owned anywhere in the subtree rooted
// at r: r's own segments first, then each child's subtree in order.
// Consumed by validate.HLHierarchyValid, which only needs every HL segment
// in the order it occurred.
//
// At the transaction root specifically this is NOT wire order: parser.go
// appends ST/BHT/SE directly onto the root instead of threading them
// through loopctx, so SE lands in r.Segments (and therefore ahead of every
// child loop's segments here) even though it is the last segment on the
// wire. Harmless for HLHierarchyValid, which ignores non-HL segments, but
// this method must not be reused for anything that depends on true wire
// order without first resolving that exception.
func (r *LoopRecord) AllSegments() []x12.Segment {
	out := append([]x12.Segment{}, r.Segments...)
	for _, c := range r.Children {
		out = append(out, c.AllSegments()...)
	}
	return out
}
