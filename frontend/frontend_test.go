package frontend_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/cyclo/frontend"
)

func parse(t *testing.T, src string) *frontend.Unit {
	t.Helper()
	unit, err := frontend.Parse(context.Background(), "test.c", []byte(src))
	require.NoError(t, err)
	t.Cleanup(unit.Close)
	return unit
}

func findKind(n frontend.Node, kind frontend.Kind) (frontend.Node, bool) {
	if n.Kind() == kind {
		return n, true
	}
	for _, child := range n.Children() {
		if found, ok := findKind(child, kind); ok {
			return found, true
		}
	}
	return frontend.Node{}, false
}

func countKind(n frontend.Node, kind frontend.Kind) int {
	count := 0
	if n.Kind() == kind {
		count++
	}
	for _, child := range n.Children() {
		count += countKind(child, kind)
	}
	return count
}

func TestParseError(t *testing.T) {
	_, err := frontend.Parse(context.Background(), "broken.c", []byte("int f( {"))
	require.Error(t, err)

	var parseErr *frontend.ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "broken.c", parseErr.File)
}

func TestKinds(t *testing.T) {
	src := `int f(int x) {
		if (x > 0) { x--; }
		while (x < 10) { x++; }
		for (int i = 0; i < x; i++) { }
		switch (x) {
		case 1: return 1;
		case 2: return 2;
		default: return 0;
		}
	}`
	unit := parse(t, src)
	root := unit.Root()

	assert.Equal(t, frontend.KindOther, root.Kind())
	assert.Equal(t, 1, countKind(root, frontend.KindFunctionDefinition))
	assert.Equal(t, 1, countKind(root, frontend.KindConditional))
	assert.Equal(t, 1, countKind(root, frontend.KindUnboundedLoop))
	assert.Equal(t, 1, countKind(root, frontend.KindBoundedLoop))
	assert.Equal(t, 2, countKind(root, frontend.KindCaseBranch))
	assert.Equal(t, 1, countKind(root, frontend.KindDefaultBranch))
}

func TestSpelling(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "plain function",
			src:  "int add(int a, int b) { return a + b; }",
			want: "add",
		},
		{
			name: "pointer return",
			src:  "char *name(void) { return 0; }",
			want: "name",
		},
		{
			name: "double pointer return",
			src:  "char **rows(void) { return 0; }",
			want: "rows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := parse(t, tt.src)
			fn, ok := findKind(unit.Root(), frontend.KindFunctionDefinition)
			require.True(t, ok)
			assert.Equal(t, tt.want, fn.Spelling())
		})
	}
}

func TestLocation(t *testing.T) {
	src := "\n\nint f(void) { return 0; }\n"
	unit := parse(t, src)
	fn, ok := findKind(unit.Root(), frontend.KindFunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, 3, fn.Line())
	assert.Equal(t, 1, fn.Column())
}

func TestTokens(t *testing.T) {
	unit := parse(t, "int f(int a, int b) { return a && b; }")
	expr, ok := findKind(unit.Root(), frontend.KindBinaryOperator)
	require.True(t, ok)

	var spellings []string
	for _, tok := range expr.Tokens() {
		spellings = append(spellings, tok.Spelling())
	}
	assert.Equal(t, []string{"a", "&&", "b"}, spellings)
}

func TestFirstChildIsLeftOperand(t *testing.T) {
	unit := parse(t, "int f(int a, int b) { return a && b; }")
	expr, ok := findKind(unit.Root(), frontend.KindBinaryOperator)
	require.True(t, ok)

	left, ok := expr.FirstChild()
	require.True(t, ok)
	assert.Equal(t, "a", left.Spelling())
}
