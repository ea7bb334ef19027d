package analysis

// Complexity converts a function's decision tally into cyclomatic complexity
// using M = E - N + 2 over the implied control-flow graph. The tally's node
// count is raised by one for the function's single entry node, which the
// classifier never produces. A body with no decision points yields 1.
func Complexity(t DecisionTally) int {
	return t.Edges - (t.Nodes + 1) + 2
}
