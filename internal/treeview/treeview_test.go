package treeview

import (
	"bytes"
	"testing"

	"github.com/mattsolo1/grove-core/tui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-changes/pkg/models"
	"github.com/mattsolo1/grove-changes/pkg/tree"
)

type store struct {
	checked   []string
	collapsed []string
	selected  string
}

func (s *store) CollapsedFolders() []string { return s.collapsed }
func (s *store) CheckedFiles() []string     { return s.checked }
func (s *store) SelectedPath() string       { return s.selected }
func (s *store) AddCheckedNode(string)      {}
func (s *store) RemoveCheckedNode(string)   {}

func changeTree(st *store) *tree.Tree[models.Change] {
	t := tree.New[models.Change](tree.Options{
		Title:        "Changes",
		IsCheckable:  true,
		IsSelectable: true,
	}, st)
	t.SetDecorator(Decorate[models.Change])
	t.Load([]tree.Record[models.Change]{
		{Path: "README.md", Data: models.Change{Path: "README.md", IndexStatus: '?', WorktreeStatus: '?'}},
		{Path: "src/a.go", IsChecked: true, Data: models.Change{Path: "src/a.go", IndexStatus: 'M', WorktreeStatus: ' '}},
		{Path: "src/b.go", Data: models.Change{Path: "src/b.go", IndexStatus: ' ', WorktreeStatus: 'D'}},
	})
	return t
}

func TestRenderPlain(t *testing.T) {
	tr := changeTree(&store{selected: "src/b.go"})

	var buf bytes.Buffer
	err := Render(&buf, tr, Options[models.Change]{
		Detail: func(n *tree.Node[models.Change]) string {
			if n.Data == nil {
				return ""
			}
			return n.Data.StatusLabel()
		},
	})
	require.NoError(t, err)

	want := "Changes\n" +
		"    [ ] README.md Untracked\n" +
		"  ▾ [-] src\n" +
		"      [x] a.go Modified\n" +
		"▶     [ ] b.go Deleted\n" +
		"1/3 checked\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderCollapsedFolder(t *testing.T) {
	tr := changeTree(&store{collapsed: []string{"src"}})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tr, Options[models.Change]{Icons: true}))

	want := "Changes\n" +
		"    [ ] " + theme.IconNote + " README.md\n" +
		"  ▸ [-] " + theme.IconFolder + " src\n" +
		"1/3 checked\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderBranches(t *testing.T) {
	tr := tree.New[models.Branch](tree.Options{Title: "Branches", DisplayRootNode: true}, nil)
	tr.SetDecorator(DecorateBranch)
	tr.Load([]tree.Record[models.Branch]{
		{Path: "main", IsActive: true, Data: models.Branch{Name: "main", IsCurrent: true}},
		{Path: "origin/main", Data: models.Branch{Name: "main", Remote: "origin"}},
	})

	assert.Equal(t, theme.IconRepo, tr.Node(tr.IndexOf("main")).Icon)
	assert.Equal(t, theme.IconEarth, tr.Node(tr.IndexOf("origin/main")).Icon)
	assert.Equal(t, theme.IconFolder, tr.Node(tr.IndexOf("origin")).Icon)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tr, Options[models.Branch]{}))

	want := "  ▾ Branches\n" +
		"      main *\n" +
		"    ▾ origin\n" +
		"        main\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderEmpty(t *testing.T) {
	tr := tree.New[models.Change](tree.Options{Title: "Changes", IsCheckable: true}, nil)
	tr.Load(nil)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tr, Options[models.Change]{}))
	assert.Equal(t, "Changes\nNo changes.\n", buf.String())
}

func TestDecorateContainer(t *testing.T) {
	tr := tree.New[models.Change](tree.Options{Title: "Changes", PromoteMetaFiles: true}, nil)
	tr.SetDecorator(Decorate[models.Change])
	tr.Load([]tree.Record[models.Change]{
		{Path: "assets/logo.png"},
		{Path: "assets/logo.png.meta"},
	})

	assert.Equal(t, theme.IconFolderTree, tr.Node(tr.IndexOf("assets/logo.png")).Icon)
	assert.Equal(t, theme.IconNote, tr.Node(tr.IndexOf("assets/logo.png.meta")).Icon)
}
