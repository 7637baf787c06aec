// Package parse ties the tokenizer, dispatch table, loop-inference
// context, shape binder, and semantic validator together into a single
// entry point: raw interchange bytes in, a bound and validated result out.
// Its shape follows the teacher's parse.Parser — a config struct built
// from functional options, a context-aware Parse/ParseContext pair, and a
// periodic cancellation check every 100 segments for large inputs — scaled
// up one level, since an X12 interchange can carry many transaction sets
// per functional group where an HL7 message is always exactly one.
package parse

import (
	"context"
	"errors"
	"fmt"

	"github.com/edihub/x12/ack"
	"github.com/edihub/x12/bind"
	"github.com/edihub/x12/dispatch"
	"github.com/edihub/x12/loopctx"
	"github.com/edihub/x12/model"
	"github.com/edihub/x12/schema"
	"github.com/edihub/x12/tokenize"
	"github.com/edihub/x12/transactions"
	"github.com/edihub/x12/x12"
)

// ErrContextCanceled is returned when the parsing context is canceled
// mid-parse.
var ErrContextCanceled = errors.New("parsing canceled")

// ErrUnterminatedTransaction is returned when an ST segment is never
// followed by a matching SE before the interchange runs out of segments.
var ErrUnterminatedTransaction = errors.New("transaction set has no terminating SE segment")

// Parser parses raw X12 interchange bytes into a Result: the flat
// interchange plus one bound, validated TransactionResult per ST...SE
// transaction set found.
type Parser interface {
	Parse(data []byte) (*Result, error)
	ParseContext(ctx context.Context, data []byte) (*Result, error)
}

type parser struct {
	cfg config
}

// New creates a Parser with the given options.
func New(opts ...Option) Parser {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &parser{cfg: cfg}
}

// Parse parses raw interchange bytes.
func (p *parser) Parse(data []byte) (*Result, error) {
	return p.ParseContext(context.Background(), data)
}

// Result is the outcome of parsing one interchange.
type Result struct {
	Interchange  x12.Interchange
	Transactions []TransactionResult
}

// TransactionResult is the outcome of binding and validating one ST...SE
// transaction set.
type TransactionResult struct {
	Code               string
	ControlNumber      string
	FunctionalIDCode   string // GS01 of the enclosing functional group
	GroupControlNumber string // GS06 of the enclosing functional group
	Root               *model.LoopRecord
	Report             *x12.Report
	SegmentCount       int // segments read between ST and SE, inclusive
	Ack                *x12.Interchange
}

// ParseContext parses raw interchange bytes with cancellation support.
func (p *parser) ParseContext(ctx context.Context, data []byte) (*Result, error) {
	if err := checkCanceled(ctx); err != nil {
		return nil, err
	}

	ic, err := tokenize.Tokenize(data, p.cfg.tokenizeOpts...)
	if err != nil {
		return nil, err
	}

	result := &Result{Interchange: ic}
	var gsFunctionalCode, gsControlNumber string

	lastCheck := 0
	for i := 0; i < len(ic.Segments); {
		if i-lastCheck >= 100 {
			lastCheck = i
			if err := checkCanceled(ctx); err != nil {
				return nil, err
			}
		}

		seg := ic.Segments[i]
		switch seg.ID {
		case "GS":
			gsFunctionalCode = seg.At(1).String()
			gsControlNumber = seg.At(6).String()
			i++
		case "ST":
			tr, next, err := p.parseTransaction(ic.Segments, i, gsFunctionalCode, gsControlNumber)
			if err != nil {
				return nil, err
			}
			result.Transactions = append(result.Transactions, tr)
			i = next
		default:
			i++
		}
	}

	return result, nil
}

// parseTransaction binds and validates the ST...SE transaction set
// beginning at segs[start], returning the index of the segment following
// its SE.
func (p *parser) parseTransaction(segs []x12.Segment, start int, gsFunc, gsCtl string) (TransactionResult, int, error) {
	st := segs[start]
	code := st.At(1).String()
	registry, table, tree, modeled := selectionFor(code)

	var root *model.LoopRecord
	var lctx *loopctx.Context
	if modeled {
		lctx = loopctx.New(tree)
		root = lctx.Root()
	} else {
		root = model.NewRecord(code, nil)
	}

	// preValidateDiags accumulates every diagnostic produced while
	// tokenizing into bound segments and loop instances — shape checks and
	// loop-structure warnings alike. Per spec §5's ordering guarantee
	// (tokenizer, then binder, then segment/loop/transaction validators),
	// these must all land in the report ahead of the validator's output,
	// so they are collected here and prepended below rather than appended
	// after Validate runs.
	var preValidateDiags []x12.Diagnostic
	segCount := 0
	foundSE := false
	i := start
	for ; i < len(segs); i++ {
		seg := segs[i]
		if seg.ID == "ST" && i != start {
			return TransactionResult{}, i, &x12.StructureError{
				Reason: fmt.Sprintf("duplicate ST at segment index %d before the SE of ST%s control %s",
					seg.Index, code, st.At(2).String()),
			}
		}

		switch {
		case seg.ID == "ST" || seg.ID == "BHT" || seg.ID == "SE":
			root.AddSegment(seg)
			if def, ok := registry.Lookup(seg.ID); ok {
				preValidateDiags = append(preValidateDiags, bind.Shape(seg, def)...)
			}
		case modeled:
			if rule, ok := table.Match(seg); ok {
				_, diags := lctx.Enter(rule)
				preValidateDiags = append(preValidateDiags, diags...)
			}
			// Bind against the schema as it applies within the loop the
			// segment now belongs to, so a loop-local override (spec §4.3)
			// takes precedence over the segment's base schema.
			loopID := lctx.Current().LoopID
			if def, ok := registry.LookupInLoop(seg.ID, loopID); ok {
				preValidateDiags = append(preValidateDiags, bind.Shape(seg, def)...)
			}
			preValidateDiags = append(preValidateDiags, lctx.Append(seg)...)
			if seg.ID == "HL" {
				lctx.RegisterHL(seg.At(1).String(), lctx.Current())
			}
		default:
			root.AddSegment(seg)
			if def, ok := registry.Lookup(seg.ID); ok {
				preValidateDiags = append(preValidateDiags, bind.Shape(seg, def)...)
			}
		}

		segCount++
		if seg.ID == "SE" {
			foundSE = true
			i++
			break
		}
	}

	if !foundSE {
		return TransactionResult{}, i, fmt.Errorf("%w: ST%s control %s at segment index %d",
			ErrUnterminatedTransaction, code, st.At(2).String(), st.Index)
	}

	report := &x12.Report{}
	for _, d := range preValidateDiags {
		report.Add(d)
	}
	validated := p.cfg.validator.Validate(root, segCount)
	report.Diagnostics = append(report.Diagnostics, validated.Diagnostics...)

	tr := TransactionResult{
		Code:               code,
		ControlNumber:      st.At(2).String(),
		FunctionalIDCode:   gsFunc,
		GroupControlNumber: gsCtl,
		Root:               root,
		Report:             report,
		SegmentCount:       segCount,
	}

	if p.cfg.generateAcks {
		ackIC := p.cfg.ackBuilder.Acknowledge(ack.Input{
			FunctionalIDCode:      gsFunc,
			GroupControlNumber:    gsCtl,
			TransactionSetCode:    code,
			TransactionControlNum: tr.ControlNumber,
			SegmentsInTransaction: segCount,
			Report:                tr.Report,
		})
		tr.Ack = &ackIC
	}

	return tr, i, nil
}

// selectionFor resolves a transaction set code to its segment registry,
// dispatch table, and loop tree. The bool return reports whether the code
// is one of the two fully-modeled transaction sets (270/271, 276/277); a
// false return means registry is transactions.StructuralRegistry and table/tree
// are nil, so the caller falls back to appending every segment flat onto
// the transaction root instead of walking loopctx.
func selectionFor(code string) (registry *schema.Registry, table *dispatch.Table, tree *schema.Loop, modeled bool) {
	switch code {
	case transactions.Eligibility270, transactions.Eligibility271:
		return transactions.EligibilityRegistry(), transactions.EligibilityDispatchTable(), transactions.EligibilityLoopTree(), true
	case transactions.ClaimStatus276, transactions.ClaimStatus277:
		return transactions.ClaimStatusRegistry(), transactions.ClaimStatusDispatchTable(), transactions.ClaimStatusLoopTree(), true
	default:
		return transactions.StructuralRegistry(), nil, nil, false
	}
}

func checkCanceled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrContextCanceled, ctx.Err())
	default:
		return nil
	}
}
