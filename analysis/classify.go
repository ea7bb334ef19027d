// Package analysis implements the decision-point counting behind cyclomatic
// complexity: classifying nodes, resolving binary operators, folding a tally
// over a function body, and converting the tally into a complexity value.
package analysis

import "github.com/TFMV/cyclo/frontend"

// DecisionTally accumulates edge and node contributions over one function's
// subtree. A fresh zero tally is used per function and discarded after the
// complexity is computed.
type DecisionTally struct {
	Edges int
	Nodes int
}

// Add merges another tally into t.
func (t *DecisionTally) Add(o DecisionTally) {
	t.Edges += o.Edges
	t.Nodes += o.Nodes
}

// decision is the contribution of a single decision point: one graph node
// with two outgoing edges.
var decision = DecisionTally{Edges: 2, Nodes: 1}

// Classify returns the contribution of a single node. Conditionals, loops,
// switch arms, and ternaries always contribute; binary expressions contribute
// only when the resolved operator short-circuits (&& or ||). A binary
// expression whose operator cannot be resolved contributes nothing.
func Classify(n frontend.Node) DecisionTally {
	switch n.Kind() {
	case frontend.KindConditional,
		frontend.KindBoundedLoop,
		frontend.KindUnboundedLoop,
		frontend.KindDefaultBranch,
		frontend.KindCaseBranch,
		frontend.KindConditionalExpr:
		return decision
	case frontend.KindBinaryOperator:
		op, err := ResolveOperator(n)
		if err != nil {
			return DecisionTally{}
		}
		if op == "&&" || op == "||" {
			return decision
		}
	}
	return DecisionTally{}
}
