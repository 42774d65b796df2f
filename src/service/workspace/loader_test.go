package workspace

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-health/src/config"
	"project-health/src/syntax"
	"project-health/src/util"
)

func touch(t *testing.T, root string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		path := filepath.Join(root, filepath.FromSlash(r))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("// "+r), 0644))
	}
}

func newTestLoader() *Loader {
	cfg := config.DefaultConfig()
	return NewLoader(cfg.Analysis, util.NewExclusionMatcher(cfg.Exclusions), nil)
}

func documentPaths(p *Project) []string {
	var paths []string
	for _, d := range p.Documents {
		paths = append(paths, d.RelPath)
	}
	return paths
}

func TestLoad_SolutionFileOrder(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"src/Zeta/Zeta.csproj", "src/Zeta/B.cs", "src/Zeta/A.cs",
		"src/Alpha/Alpha.csproj", "src/Alpha/Core/Thing.cs",
	)
	sln := `Microsoft Visual Studio Solution File, Format Version 12.00
Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Zeta", "src\Zeta\Zeta.csproj", "{A}"
EndProject
Project("{2150E333-8FDC-42A3-9474-1A3956D46DE8}") = "Solution Items", "Solution Items", "{B}"
EndProject
Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Alpha", "src\Alpha\Alpha.csproj", "{C}"
EndProject
Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Ghost", "src\Ghost\Ghost.csproj", "{D}"
EndProject
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "Shop.sln"), []byte(sln), 0644))

	solution, err := newTestLoader().Load(root)
	require.NoError(t, err)

	assert.Equal(t, "Shop", solution.Name)
	require.Len(t, solution.Projects, 2)
	assert.Equal(t, "Zeta", solution.Projects[0].Name)
	assert.Equal(t, "src/Zeta/Zeta.csproj", solution.Projects[0].Path)
	assert.Equal(t, []string{"src/Zeta/A.cs", "src/Zeta/B.cs"}, documentPaths(solution.Projects[0]))
	assert.Equal(t, "Alpha", solution.Projects[1].Name)
	assert.Equal(t, []string{"src/Alpha/Core/Thing.cs"}, documentPaths(solution.Projects[1]))
	assert.Equal(t, 3, solution.DocumentCount())
}

func TestLoad_ProjectWalk(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"Web/Web.csproj", "Web/Startup.cs", "Web/bin/Debug/Gen.cs", "Web/obj/X.g.cs",
		"Web/Views/Home.Designer.cs",
		"Web/Plugins/Plugin.csproj", "Web/Plugins/Plugin.cs",
	)

	solution, err := newTestLoader().Load(root)
	require.NoError(t, err)

	require.Len(t, solution.Projects, 2)
	assert.Equal(t, "Plugin", solution.Projects[0].Name)
	assert.Equal(t, []string{"Web/Plugins/Plugin.cs"}, documentPaths(solution.Projects[0]))
	assert.Equal(t, "Web", solution.Projects[1].Name)
	assert.Equal(t, []string{"Web/Startup.cs"}, documentPaths(solution.Projects[1]))
}

func TestLoad_SingleProjectFile(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "Lib.csproj", "Lib.cs")

	solution, err := newTestLoader().Load(filepath.Join(root, "Lib.csproj"))
	require.NoError(t, err)

	require.Len(t, solution.Projects, 1)
	assert.Equal(t, "Lib", solution.Name)
	assert.Equal(t, []string{"Lib.cs"}, documentPaths(solution.Projects[0]))
}

func TestLoad_ProjectExclusions(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "App/App.csproj", "App/A.cs", "App.Tests/App.Tests.csproj", "App.Tests/T.cs")

	cfg := config.DefaultConfig()
	cfg.Exclusions.ProjectPatterns = []string{"*.Tests"}
	loader := NewLoader(cfg.Analysis, util.NewExclusionMatcher(cfg.Exclusions), nil)

	solution, err := loader.Load(root)
	require.NoError(t, err)
	require.Len(t, solution.Projects, 1)
	assert.Equal(t, "App", solution.Projects[0].Name)
}

func TestLoad_Errors(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "notes.txt")

	_, err := newTestLoader().Load(filepath.Join(root, "missing.sln"))
	assert.Error(t, err)

	_, err = newTestLoader().Load(filepath.Join(root, "notes.txt"))
	assert.Error(t, err)
}

func TestDocument_IDAndOpen(t *testing.T) {
	a := NewDocument("A.cs", "/tmp/A.cs", "App/A.cs", nil)
	b := NewDocument("A.cs", "/other/A.cs", "App/A.cs", nil)
	c := NewDocument("B.cs", "/tmp/B.cs", "App/B.cs", nil)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), a.ID())
	assert.Equal(t, a.ID(), b.ID())
	assert.NotEqual(t, a.ID(), c.ID())
	assert.Equal(t, "App/A.cs", a.Ref().Path)

	_, err := a.Open(context.Background())
	assert.ErrorIs(t, err, syntax.ErrTreeUnavailable)
}
