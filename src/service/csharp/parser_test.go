package csharp

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-health/src/service/metrics"
	"project-health/src/syntax"
)

func parse(t *testing.T, code string) syntax.Tree {
	t.Helper()
	tree, err := NewParser().ParseSource([]byte(code))
	require.NoError(t, err)
	t.Cleanup(tree.Close)
	return tree
}

func TestParse_StraightLineComplexity(t *testing.T) {
	tree := parse(t, `
class Calculator
{
    int Add(int a, int b)
    {
        return a + b;
    }
}`)

	assert.Equal(t, 1, metrics.CyclomaticComplexity(tree.Root()))
}

func TestParse_DecisionPoints(t *testing.T) {
	tree := parse(t, `
class Worker
{
    void Run(int a, int b)
    {
        if (a > 0 && b > 0)
        {
            System.Console.WriteLine(a);
        }
        while (a < 10)
        {
            a++;
        }
    }
}`)

	// if, &&, while
	assert.Equal(t, 4, metrics.CyclomaticComplexity(tree.Root()))

	count, err := metrics.CountStatements(context.Background(), tree.Root())
	require.NoError(t, err)
	// if, WriteLine, while, a++ (blocks are not counted)
	assert.Equal(t, 4, count)
}

func TestParse_CatchAndLogicalOr(t *testing.T) {
	tree := parse(t, `
class Reader
{
    void Read(bool a, bool b)
    {
        try
        {
            if (a || b)
            {
                Load();
            }
        }
        catch (System.Exception)
        {
            Log();
        }
    }
}`)

	// if, ||, catch
	assert.Equal(t, 4, metrics.CyclomaticComplexity(tree.Root()))
}

func TestParse_NestedBlockStatements(t *testing.T) {
	tree := parse(t, `
class Counter
{
    void Step(int a)
    {
        System.Console.WriteLine(a);
        if (a > 0)
        {
            a++;
            System.Console.WriteLine(a);
        }
        return;
    }
}`)

	count, err := metrics.CountStatements(context.Background(), tree.Root())
	require.NoError(t, err)
	// WriteLine, if, a++, WriteLine, return
	assert.Equal(t, 5, count)
}

func TestParse_GuardClauses(t *testing.T) {
	tree := parse(t, `
class Service
{
    void Handle(string name, object payload)
    {
        if (name == null) throw new System.ArgumentNullException(nameof(name));
        System.ArgumentNullException.ThrowIfNull(payload);
        System.Console.WriteLine(name);
    }
}`)

	count, err := metrics.CountStatements(context.Background(), tree.Root())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestParse_HalsteadOperandsSkipDeclarations(t *testing.T) {
	tree := parse(t, `
class A
{
    int M(int a, int b, int c)
    {
        return a + b - c;
    }
}`)

	counts := metrics.CountHalstead(tree.Root())
	assert.Equal(t, 2, counts.Operators)
	assert.Equal(t, 3, counts.Operands)

	volume, err := counts.Volume()
	require.NoError(t, err)
	assert.InDelta(t, 5*math.Log2(5), volume, 1e-9)
}

func TestParse_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Program.cs")
	require.NoError(t, os.WriteFile(path, []byte(`class P { static void Main() { } }`), 0644))

	tree, err := NewParser().Parse(context.Background(), path)
	require.NoError(t, err)
	defer tree.Close()

	assert.NotNil(t, tree.Root())
}

func TestParse_MissingFileIsUnavailable(t *testing.T) {
	_, err := NewParser().Parse(context.Background(), filepath.Join(t.TempDir(), "Missing.cs"))
	assert.ErrorIs(t, err, syntax.ErrTreeUnavailable)
}
