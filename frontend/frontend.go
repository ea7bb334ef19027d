// Package frontend wraps tree-sitter's C grammar behind the small surface the
// complexity analysis needs: node kinds, locations, spellings, child order,
// and the lexical tokens spanning a node's extent.
package frontend

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
)

// Kind identifies the syntactic role of a node. Only the roles the decision
// classifier cares about are distinguished; everything else is KindOther.
type Kind int

const (
	KindOther Kind = iota
	KindConditional
	KindBoundedLoop
	KindUnboundedLoop
	KindDefaultBranch
	KindCaseBranch
	KindConditionalExpr
	KindBinaryOperator
	KindFunctionDefinition
)

// ParseError reports that a translation unit could not be parsed into a
// well-formed tree.
type ParseError struct {
	File string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse translation unit %s", e.File)
}

// Unit is one parsed translation unit. Nodes handed out by a Unit are only
// valid until Close is called.
type Unit struct {
	tree *sitter.Tree
	src  []byte
}

// Parse parses src as C source. A tree containing syntax errors yields a
// *ParseError rather than a partial unit.
func Parse(ctx context.Context, name string, src []byte) (*Unit, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(c.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return nil, &ParseError{File: name}
	}
	return &Unit{tree: tree, src: src}, nil
}

// Root returns the translation-unit node.
func (u *Unit) Root() Node {
	return Node{n: u.tree.RootNode(), src: u.src}
}

// Close releases the underlying tree.
func (u *Unit) Close() {
	u.tree.Close()
}

// Node is a handle into a Unit's tree.
type Node struct {
	n   *sitter.Node
	src []byte
}

// Kind maps the grammar's node type onto the closed Kind enum. tree-sitter's
// C grammar folds default branches into case_statement, so the two kinds are
// split here by the leading keyword token.
func (nd Node) Kind() Kind {
	switch nd.n.Type() {
	case "if_statement":
		return KindConditional
	case "for_statement":
		return KindBoundedLoop
	case "while_statement":
		return KindUnboundedLoop
	case "case_statement":
		if first := nd.n.Child(0); first != nil && first.Type() == "default" {
			return KindDefaultBranch
		}
		return KindCaseBranch
	case "conditional_expression":
		return KindConditionalExpr
	case "binary_expression":
		return KindBinaryOperator
	case "function_definition":
		return KindFunctionDefinition
	}
	return KindOther
}

// Line returns the 1-based source line of the node's start.
func (nd Node) Line() int {
	return int(nd.n.StartPoint().Row) + 1
}

// Column returns the 1-based source column of the node's start.
func (nd Node) Column() int {
	return int(nd.n.StartPoint().Column) + 1
}

// Spelling returns the declared identifier for function definitions, and the
// raw source extent for any other node.
func (nd Node) Spelling() string {
	if nd.n.Type() == "function_definition" {
		if name := functionName(nd.n, nd.src); name != "" {
			return name
		}
	}
	return nd.n.Content(nd.src)
}

// functionName resolves the identifier of a function_definition through its
// declarator chain (pointer and parenthesized declarators wrap the
// function_declarator, which wraps the identifier).
func functionName(n *sitter.Node, src []byte) string {
	d := n.ChildByFieldName("declarator")
	for d != nil && d.Type() != "identifier" {
		next := d.ChildByFieldName("declarator")
		if next == nil {
			next = d.NamedChild(0)
		}
		d = next
	}
	if d == nil {
		return ""
	}
	return d.Content(src)
}

// FirstChild returns the node's first child in source order. For binary
// expressions that is the left-hand operand.
func (nd Node) FirstChild() (Node, bool) {
	child := nd.n.Child(0)
	if child == nil {
		return Node{}, false
	}
	return Node{n: child, src: nd.src}, true
}

// Children returns all children in source order, unnamed nodes included.
func (nd Node) Children() []Node {
	count := int(nd.n.ChildCount())
	children := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, Node{n: nd.n.Child(i), src: nd.src})
	}
	return children
}

// Token is one lexical unit drawn from a node's source extent.
type Token struct {
	spelling string
}

// Spelling returns the token's source text.
func (t Token) Spelling() string {
	return t.spelling
}

// Tokens returns the lexical tokens spanning the node's extent in source
// order. The leaves of the subtree are exactly the tokens of the extent,
// since the grammar keeps every keyword and punctuation mark as a leaf.
func (nd Node) Tokens() []Token {
	var tokens []Token
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n.ChildCount() == 0 {
			tokens = append(tokens, Token{spelling: n.Content(nd.src)})
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(nd.n)
	return tokens
}
