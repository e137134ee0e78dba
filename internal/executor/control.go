package executor

import (
	"github.com/golang-plc/stcore/internal/ast"
	"github.com/golang-plc/stcore/internal/evaluator"
	"github.com/golang-plc/stcore/internal/stvalue"
)

// execIf implements IF/ELSIF/ELSE (spec.md §4.3): the main condition,
// then each ELSIF in order, then ELSE, taking the first branch whose
// condition is true.
func (e *Executor) execIf(s *ast.IfStatement) (Signal, error) {
	v, err := evaluator.Evaluate(s.Condition, e.Ctx)
	if err != nil {
		return SignalNone, err
	}
	if stvalue.ToBool(v) {
		return e.ExecuteBlock(s.Then)
	}
	for _, clause := range s.Elsif {
		cv, err := evaluator.Evaluate(clause.Condition, e.Ctx)
		if err != nil {
			return SignalNone, err
		}
		if stvalue.ToBool(cv) {
			return e.ExecuteBlock(clause.Then)
		}
	}
	if s.Else != nil {
		return e.ExecuteBlock(s.Else)
	}
	return SignalNone, nil
}

// execCase implements CASE (spec.md §4.3): the selector is matched
// against each clause's labels in order, single values or inclusive
// ranges; a range given high-to-low (Low > High) is accepted as an
// alias for the ascending range, with a one-shot warning per executor
// instance, rather than matching nothing.
func (e *Executor) execCase(s *ast.CaseStatement) (Signal, error) {
	sel, err := evaluator.Evaluate(s.Selector, e.Ctx)
	if err != nil {
		return SignalNone, err
	}
	selector := stvalue.ToInt(sel)

	for _, clause := range s.Cases {
		if e.caseLabelsMatch(clause.Labels, selector) {
			return e.ExecuteBlock(clause.Body)
		}
	}
	if s.Else != nil {
		return e.ExecuteBlock(s.Else)
	}
	return SignalNone, nil
}

func (e *Executor) caseLabelsMatch(labels []ast.CaseLabel, selector int64) bool {
	for _, label := range labels {
		if !label.IsRange {
			if selector == label.Value {
				return true
			}
			continue
		}
		low, high := label.Low, label.High
		if low > high {
			if !e.warnedDescendingRange {
				e.Ctx.Sink.Warn("CASE range %d..%d given high-to-low, treated as %d..%d", low, high, high, low)
				e.warnedDescendingRange = true
			}
			low, high = high, low
		}
		if selector >= low && selector <= high {
			return true
		}
	}
	return false
}
