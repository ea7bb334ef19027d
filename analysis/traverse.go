package analysis

import "github.com/TFMV/cyclo/frontend"

// CountDecisions folds Classify over n and every descendant in depth-first
// pre-order, siblings in source order. The traversal never terminates early:
// nested decision points each contribute independently.
func CountDecisions(n frontend.Node) DecisionTally {
	tally := Classify(n)
	for _, child := range n.Children() {
		tally.Add(CountDecisions(child))
	}
	return tally
}

// Functions returns every function-definition node under root, at any
// nesting depth, in pre-order (textual order of declaration for the common
// non-nested case).
func Functions(root frontend.Node) []frontend.Node {
	var fns []frontend.Node
	var walk func(n frontend.Node)
	walk = func(n frontend.Node) {
		if n.Kind() == frontend.KindFunctionDefinition {
			fns = append(fns, n)
		}
		for _, child := range n.Children() {
			walk(child)
		}
	}
	walk(root)
	return fns
}
