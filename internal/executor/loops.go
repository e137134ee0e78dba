package executor

import (
	"github.com/golang-plc/stcore/internal/ast"
	"github.com/golang-plc/stcore/internal/evaluator"
	"github.com/golang-plc/stcore/internal/stvalue"
)

// maxLoopIterations caps every loop construct (spec.md §4.3, §8): a
// runaway FOR/WHILE/REPEAT logs a warning and stops rather than
// hanging the scan forever.
const maxLoopIterations = 10000

// execFor implements FOR var := start TO end [BY step] (spec.md §4.3).
// Step defaults to 1; a step of 0 is a warned no-op loop (it would
// never terminate on its own, so it is skipped entirely rather than
// run to the iteration cap).
func (e *Executor) execFor(s *ast.ForStatement) (Signal, error) {
	startV, err := evaluator.Evaluate(s.Start, e.Ctx)
	if err != nil {
		return SignalNone, err
	}
	endV, err := evaluator.Evaluate(s.End, e.Ctx)
	if err != nil {
		return SignalNone, err
	}
	step := int64(1)
	if s.Step != nil {
		sv, err := evaluator.Evaluate(s.Step, e.Ctx)
		if err != nil {
			return SignalNone, err
		}
		step = stvalue.ToInt(sv)
	}
	if step == 0 {
		e.Ctx.Sink.Warn("FOR %s: step is 0, loop skipped", s.Variable)
		return SignalNone, nil
	}

	i := stvalue.ToInt(startV)
	end := stvalue.ToInt(endV)

	for iter := 0; ; iter++ {
		if step > 0 && i > end {
			break
		}
		if step < 0 && i < end {
			break
		}
		if iter >= maxLoopIterations {
			e.Ctx.Sink.Warn("FOR %s: exceeded %d iterations, loop terminated", s.Variable, maxLoopIterations)
			break
		}

		e.assignScalar(s.Variable, stvalue.NewInt(i))

		sig, err := e.ExecuteBlock(s.Body)
		if err != nil {
			return SignalNone, err
		}
		switch sig {
		case SignalExit:
			return SignalNone, nil
		case SignalReturn:
			return SignalReturn, nil
		}

		i += step
	}
	return SignalNone, nil
}

// execWhile implements WHILE condition DO ... (pre-test, spec.md §4.3).
func (e *Executor) execWhile(s *ast.WhileStatement) (Signal, error) {
	for iter := 0; ; iter++ {
		cv, err := evaluator.Evaluate(s.Condition, e.Ctx)
		if err != nil {
			return SignalNone, err
		}
		if !stvalue.ToBool(cv) {
			return SignalNone, nil
		}
		if iter >= maxLoopIterations {
			e.Ctx.Sink.Warn("WHILE: exceeded %d iterations, loop terminated", maxLoopIterations)
			return SignalNone, nil
		}

		sig, err := e.ExecuteBlock(s.Body)
		if err != nil {
			return SignalNone, err
		}
		switch sig {
		case SignalExit:
			return SignalNone, nil
		case SignalReturn:
			return SignalReturn, nil
		}
	}
}

// execRepeat implements REPEAT ... UNTIL condition (post-test, exits
// once the condition becomes true — spec.md §4.3).
func (e *Executor) execRepeat(s *ast.RepeatStatement) (Signal, error) {
	for iter := 0; ; iter++ {
		sig, err := e.ExecuteBlock(s.Body)
		if err != nil {
			return SignalNone, err
		}
		switch sig {
		case SignalExit:
			return SignalNone, nil
		case SignalReturn:
			return SignalReturn, nil
		}

		cv, err := evaluator.Evaluate(s.Condition, e.Ctx)
		if err != nil {
			return SignalNone, err
		}
		if stvalue.ToBool(cv) {
			return SignalNone, nil
		}
		if iter >= maxLoopIterations {
			e.Ctx.Sink.Warn("REPEAT: exceeded %d iterations, loop terminated", maxLoopIterations)
			return SignalNone, nil
		}
	}
}
