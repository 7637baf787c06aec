// Package loopctx reconstructs the loop hierarchy of a transaction set
// from its flat segment stream. X12 carries no explicit loop begin/end
// markers — a segment's loop membership is inferred from the dispatch
// table plus the position of the current "cursor" in the loop tree, the
// same way an HL segment's parent/child relationship is inferred from its
// HL02 pointer rather than being nested in the wire format. This is the
// one genuinely novel algorithm in this port: golevel7's HL7 segments are
// flat with no inferred grouping, so there is no direct analog to adapt —
// Context's frame-stack shape still follows the teacher's style of
// grouping per-parse state into one struct (parse.parser's config +
// accumulated state fields).
package loopctx

import (
	"fmt"

	"github.com/edihub/x12/dispatch"
	"github.com/edihub/x12/model"
	"github.com/edihub/x12/schema"
	"github.com/edihub/x12/x12"
)

// Frame is one entry in the context's loop stack: the loop instance
// currently open at that depth, paired with the schema node describing
// its shape.
type Frame struct {
	Loop   *schema.Loop
	Record *model.LoopRecord
}

// Context tracks the loop-inference cursor for one transaction set parse,
// plus the HL side channels the 270/271 and 276/277 hierarchies depend on
// to resolve HL02 parent pointers into already-open loop instances.
type Context struct {
	tree  *schema.Loop
	stack []Frame

	// Subscriber and Patient hold the most recently opened 2000C/2100C
	// (subscriber) and 2000D/2100D (dependent) loop instances, mirroring the
	// subscriber_record/patient_record side channels described in spec §4.5
	// — later dependent segments (e.g. a claim loop that always belongs to
	// "the current subscriber") read these directly instead of walking back
	// up the stack.
	Subscriber *model.LoopRecord
	Patient    *model.LoopRecord

	// HLByID maps an HL segment's HL01 identifier to the loop instance it
	// opened, so a later HL's HL02 parent pointer can be resolved directly
	// instead of by position.
	HLByID map[string]*model.LoopRecord
}

// New creates a Context rooted at the transaction set's own loop (the
// ST...SE boundary), per the supplied loop schema tree.
func New(tree *schema.Loop) *Context {
	root := model.NewRecord(tree.ID, nil)
	return &Context{
		tree:   tree,
		stack:  []Frame{{Loop: tree, Record: root}},
		HLByID: make(map[string]*model.LoopRecord),
	}
}

// Root returns the transaction-set root record.
func (c *Context) Root() *model.LoopRecord {
	return c.stack[0].Record
}

// Current returns the loop instance currently open at the top of the
// stack — the one a plain (non-dispatch-matched) segment should be
// appended to.
func (c *Context) Current() *model.LoopRecord {
	return c.stack[len(c.stack)-1].Record
}

// Append adds seg directly to the loop instance currently open, honoring
// the current loop's declared member list (spec §4.5 edge case (a)): a
// segment with no slot in the current loop's schema is dropped with a
// warning Diagnostic rather than attached. A segment that is accepted is
// always appended; case (a) is the only reason Append ever refuses one.
func (c *Context) Append(seg x12.Segment) []x12.Diagnostic {
	top := c.stack[len(c.stack)-1]
	if !top.Loop.Accepts(seg.ID) {
		w := &x12.StructureWarning{
			Location: x12.Seg(seg.ID, seg.Index),
			Reason:   fmt.Sprintf("not a declared member of loop %s", top.Loop.ID),
		}
		return []x12.Diagnostic{{
			Severity: x12.SeverityWarning,
			Kind:     x12.KindLoop,
			Location: w.Location,
			Message:  w.Error(),
			Rule:     "loop-membership",
			Err:      w,
		}}
	}
	top.Record.AddSegment(seg)
	return nil
}

// Enter opens an instance of the loop named by rule.Target and makes it
// the current frame, per the unwind-to-common-ancestor-then-descend
// algorithm:
//
//  1. Compute the schema path from the transaction root to Target.
//  2. Find how much of that path already matches the open stack, frame by
//     frame from the root — the deepest point the two agree is the common
//     ancestor.
//  3. Pop frames back to the common ancestor.
//  4. If rule.NewInstance and the common ancestor is itself an open
//     instance of Target's loop, pop one further level first, so a second
//     NM1 of the same loop type opens a sibling rather than being folded
//     into the first.
//  5. Descend, creating a fresh LoopRecord for every schema node from the
//     (possibly re-popped) ancestor down to Target.
//
// Every intermediate loop synthesized in step 5 other than Target itself
// is opened without ever having seen its own trigger segment — the
// incoming segment belongs further down the tree. That is spec §4.5 edge
// case (b), "a segment that appears before its loop's first expected
// segment": the loop is still created and descended into, but a warning
// Diagnostic is returned alongside the opened record.
//
// Enter panics if Target is not reachable from the transaction root — that
// is a dispatch/schema configuration error, not a data error, and should
// have been caught building the dispatch table.
func (c *Context) Enter(rule dispatch.Rule) (*model.LoopRecord, []x12.Diagnostic) {
	if rule.RelativeToCurrent {
		return c.enterRelative(rule)
	}

	path := schemaPath(c.tree, rule.Target)
	if path == nil {
		panic("loopctx: target loop " + rule.Target + " not reachable from transaction root")
	}

	common := 0
	for common < len(path) && common < len(c.stack) && path[common].ID == c.stack[common].Loop.ID {
		common++
	}
	c.stack = c.stack[:common]

	if rule.NewInstance && common == len(path) && common > 0 {
		// The requested loop is already open and this match should start a
		// fresh sibling instance rather than reuse it.
		c.stack = c.stack[:common-1]
		common--
	}

	var diags []x12.Diagnostic
	for i := common; i < len(path); i++ {
		parent := c.stack[len(c.stack)-1].Record
		rec := model.NewRecord(path[i].ID, parent)
		parent.AddChild(rec)

		triggered := i == len(path)-1
		if !triggered && path[i].TriggerID != "" {
			w := &x12.StructureWarning{
				Location: x12.Seg(rule.SegmentID, 0),
				Reason:   fmt.Sprintf("loop %s opened implicitly by %s before its own trigger segment %s was seen", path[i].ID, rule.SegmentID, path[i].TriggerID),
			}
			diags = append(diags, x12.Diagnostic{
				Severity: x12.SeverityWarning,
				Kind:     x12.KindLoop,
				Location: w.Location,
				Message:  w.Error(),
				Rule:     "unexpected-segment-order",
				Err:      w,
			})
		}
		c.stack = append(c.stack, Frame{Loop: path[i], Record: rec})
	}

	cur := c.Current()
	c.trackSideChannels(cur)
	return cur, diags
}

// enterRelative opens the child of the currently-open loop whose schema
// declares rule.SegmentID as its trigger, per Rule.RelativeToCurrent. When
// rule.NewInstance is set and the open loop is itself triggered by
// rule.SegmentID, that loop is closed first, so the new instance opens as
// its sibling. The opened child is always the immediate trigger of
// rule.SegmentID, so edge case (b) never applies here — only
// absolute-Target Enter can skip an intermediate loop's own trigger while
// descending.
func (c *Context) enterRelative(rule dispatch.Rule) (*model.LoopRecord, []x12.Diagnostic) {
	top := c.stack[len(c.stack)-1]
	if rule.NewInstance && len(c.stack) > 1 && top.Loop.TriggerID == rule.SegmentID {
		c.stack = c.stack[:len(c.stack)-1]
		top = c.stack[len(c.stack)-1]
	}
	for _, child := range top.Loop.Children {
		if child.TriggerID == rule.SegmentID {
			rec := model.NewRecord(child.ID, top.Record)
			top.Record.AddChild(rec)
			c.stack = append(c.stack, Frame{Loop: child, Record: rec})
			cur := c.Current()
			c.trackSideChannels(cur)
			return cur, nil
		}
	}
	panic("loopctx: no child of " + top.Loop.ID + " triggers on segment " + rule.SegmentID)
}

// trackSideChannels updates Subscriber/Patient when a loop instance
// matching those well-known roles is entered. The loop IDs checked here
// are the 270/271 and 276/277 conventions this port settled on (2000C/
// 2100C subscriber, 2000D/2100D dependent); other transaction sets
// simply never populate these fields.
func (c *Context) trackSideChannels(rec *model.LoopRecord) {
	switch rec.LoopID {
	case "2000C", "2100C":
		c.Subscriber = rec
	case "2000D", "2100D":
		c.Patient = rec
	}
}

// RegisterHL records that an HL segment with the given HL01 identifier
// opened rec, so a later HL segment's HL02 can look up its parent by ID.
func (c *Context) RegisterHL(hlID string, rec *model.LoopRecord) {
	c.HLByID[hlID] = rec
}

// ParentOf resolves an HL02 parent identifier to the loop instance it
// points at, if that HL has been seen yet.
func (c *Context) ParentOf(parentHLID string) (*model.LoopRecord, bool) {
	rec, ok := c.HLByID[parentHLID]
	return rec, ok
}

// schemaPath returns the loop-schema nodes from root to the node with the
// given ID, inclusive, or nil if no such node exists.
func schemaPath(root *schema.Loop, targetID string) []*schema.Loop {
	if root.ID == targetID {
		return []*schema.Loop{root}
	}
	for _, c := range root.Children {
		if p := schemaPath(c, targetID); p != nil {
			return append([]*schema.Loop{root}, p...)
		}
	}
	return nil
}
