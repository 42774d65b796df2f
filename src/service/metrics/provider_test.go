package metrics

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-health/src/config"
	"project-health/src/model"
	"project-health/src/service/workspace"
	"project-health/src/syntax"
	. "project-health/src/syntax/syntaxtest"
)

// fakeParser serves prepared trees by path
type fakeParser struct {
	mu     sync.Mutex
	roots  map[string]syntax.Node
	parsed int
}

func (f *fakeParser) Parse(ctx context.Context, path string) (syntax.Tree, error) {
	f.mu.Lock()
	f.parsed++
	f.mu.Unlock()

	root, ok := f.roots[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", syntax.ErrTreeUnavailable, path)
	}
	return treeOf{root}, nil
}

type treeOf struct{ root syntax.Node }

func (t treeOf) Root() syntax.Node { return t.root }
func (t treeOf) Close()            {}

// slowNode delays Children so a deadline can expire mid-walk
type slowNode struct {
	*Node
	delay time.Duration
}

func (s slowNode) Children() []syntax.Node {
	time.Sleep(s.delay)
	return s.Node.Children()
}

func newProject(parser workspace.Parser, name string, paths ...string) *workspace.Project {
	project := &workspace.Project{Name: name, Path: name + "/" + name + ".csproj"}
	for _, p := range paths {
		project.Documents = append(project.Documents, workspace.NewDocument(p+".cs", p, name+"/"+p+".cs", parser))
	}
	return project
}

func testProvider() *Provider {
	cfg := config.DefaultConfig()
	return NewProvider(cfg.Analysis, cfg.Concurrency)
}

// additive returns a method with n statements of the form x + y
func additive(n int) *Node {
	stmts := make([]*Node, n)
	for i := range stmts {
		stmts[i] = N(syntax.KindExpressionStatement,
			N(syntax.KindBinaryExpression, Ident("x"), Tok(syntax.KindPlusToken, "+"), Ident("y")))
	}
	return Unit(Method(stmts...))
}

func TestProvider_ComputesDocumentsInOrder(t *testing.T) {
	parser := &fakeParser{roots: map[string]syntax.Node{
		"a": Unit(Method(If(Stmt("a")), If(Stmt("b")))),
		"b": additive(3),
	}}
	project := newProject(parser, "App", "a", "missing", "b")

	pm, err := testProvider().ProjectMetrics(context.Background(), project)
	require.NoError(t, err)
	require.Len(t, pm.Documents, 3)

	a, missing, b := pm.Documents[0], pm.Documents[1], pm.Documents[2]
	assert.Equal(t, "a.cs", a.Document.Name)
	assert.True(t, a.Available)
	assert.Equal(t, 3, a.Complexity)
	assert.Equal(t, 4, a.Statements)
	assert.True(t, a.HasMaintainability)

	assert.False(t, missing.Available)
	assert.Nil(t, missing.Error)
	assert.Equal(t, []model.DocumentRef{missing.Document}, pm.Omitted())

	assert.Equal(t, 1, b.Complexity)
	assert.Equal(t, 3, b.Operators)
	assert.Equal(t, 6, b.Operands)
	want, err := MaintainabilityIndex(1, 3, 9*3.169925001442312)
	require.NoError(t, err)
	assert.InDelta(t, want, b.MaintainabilityIndex, 1e-6)

	complexity := pm.ComplexityResults()
	require.Len(t, complexity.Documents, 2)
	assert.Equal(t, "a.cs", complexity.Documents[0].Document.Name)
	assert.Equal(t, "b.cs", complexity.Documents[1].Document.Name)
}

func TestProvider_ZeroStatementsSkippedSilently(t *testing.T) {
	parser := &fakeParser{roots: map[string]syntax.Node{"empty": Unit(Ident("X"))}}
	pm, err := testProvider().ProjectMetrics(context.Background(), newProject(parser, "App", "empty"))
	require.NoError(t, err)

	doc := pm.Documents[0]
	assert.True(t, doc.Available)
	assert.False(t, doc.HasMaintainability)
	assert.Nil(t, doc.Error)
	assert.Empty(t, pm.MaintainabilityResults().Documents)
}

func TestProvider_ZeroVocabularyIsDegenerate(t *testing.T) {
	parser := &fakeParser{roots: map[string]syntax.Node{
		"bare": Unit(Method(N(syntax.KindReturnStatement))),
	}}
	pm, err := testProvider().ProjectMetrics(context.Background(), newProject(parser, "App", "bare"))
	require.NoError(t, err)

	doc := pm.Documents[0]
	assert.False(t, doc.VolumeDefined)
	assert.False(t, doc.HasMaintainability)
	require.NotNil(t, doc.Error)
	assert.Equal(t, model.ReasonDegenerateVolume, doc.Error.Reason)
	assert.Len(t, pm.Errors(), 1)
}

func TestProvider_DocumentTimeoutIsContained(t *testing.T) {
	slow := slowNode{Node: additive(2), delay: 20 * time.Millisecond}
	parser := &fakeParser{roots: map[string]syntax.Node{
		"slow": slow,
		"fast": additive(2),
	}}

	cfg := config.DefaultConfig()
	cfg.Analysis.DocumentTimeout = time.Millisecond
	provider := NewProvider(cfg.Analysis, cfg.Concurrency)

	pm, err := provider.ProjectMetrics(context.Background(), newProject(parser, "App", "slow", "fast"))
	require.NoError(t, err)

	slowDoc, fastDoc := pm.Documents[0], pm.Documents[1]
	require.NotNil(t, slowDoc.Error)
	assert.Equal(t, model.ReasonCancelled, slowDoc.Error.Reason)
	assert.False(t, slowDoc.Available)
	assert.False(t, slowDoc.HasMaintainability)

	assert.Nil(t, fastDoc.Error)
	assert.True(t, fastDoc.HasMaintainability)

	// The cancelled document leaves both result sets and is reported as an error only
	assert.Len(t, pm.MaintainabilityResults().Documents, 1)
	require.Len(t, pm.ComplexityResults().Documents, 1)
	assert.Equal(t, fastDoc.Document, pm.ComplexityResults().Documents[0].Document)
	assert.Empty(t, pm.Omitted())
	assert.Len(t, pm.Errors(), 1)
}

func TestProvider_CancelledRun(t *testing.T) {
	parser := &fakeParser{roots: map[string]syntax.Node{"a": additive(1)}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testProvider().ProjectMetrics(ctx, newProject(parser, "App", "a"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProvider_CachesProjects(t *testing.T) {
	parser := &fakeParser{roots: map[string]syntax.Node{"a": additive(1), "b": additive(2)}}
	app := newProject(parser, "App", "a")
	lib := newProject(parser, "Lib", "b")
	solution := &workspace.Solution{Projects: []*workspace.Project{app, lib}}

	provider := testProvider()

	var mu sync.Mutex
	var seen []int
	provider.SetProgress(func(done, total int, _ string) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 2, total)
		seen = append(seen, done)
	})

	require.NoError(t, provider.Compute(context.Background(), solution))
	assert.ElementsMatch(t, []int{1, 2}, seen)
	assert.Equal(t, 2, parser.parsed)

	first, err := provider.ProjectMetrics(context.Background(), app)
	require.NoError(t, err)
	second, err := provider.ProjectMetrics(context.Background(), app)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 2, parser.parsed)
}
