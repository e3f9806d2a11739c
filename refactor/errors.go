package refactor

import "errors"

var (
	// ErrNilFactoredForm indicates a CutEvaluator returned ok=true alongside
	// a nil FactoredForm, which Materialize can never satisfy.
	ErrNilFactoredForm = errors.New("refactor: evaluator returned ok=true with a nil factored form")

	// ErrFaninNotReady indicates UpdateLevelLazy's precondition failed: a
	// node's fanin is neither already Handled this pass nor a PI/Constant1
	// (spec §4.8 step 3).
	ErrFaninNotReady = errors.New("refactor: lazy level update attempted before a fanin was ready")
)
