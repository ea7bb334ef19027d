package analysis

import (
	"errors"

	"github.com/TFMV/cyclo/frontend"
)

// ErrDegenerateOperator reports a binary-expression node whose operator
// cannot be located: it has no left operand, or the operand's tokens do not
// form a proper prefix of the expression's tokens.
var ErrDegenerateOperator = errors.New("degenerate binary expression")

// ResolveOperator returns the operator symbol of a binary-expression node.
//
// The grammar does not expose the operator directly, so it is recovered from
// token counts: the left operand's tokens are a prefix of the full
// expression's tokens, making the operator the token immediately after them.
func ResolveOperator(n frontend.Node) (string, error) {
	left, ok := n.FirstChild()
	if !ok {
		return "", ErrDegenerateOperator
	}

	expr := n.Tokens()
	operand := left.Tokens()
	if len(operand) >= len(expr) {
		return "", ErrDegenerateOperator
	}
	return expr[len(operand)].Spelling(), nil
}
