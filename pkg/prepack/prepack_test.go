package prepack

import (
	"testing"

	"github.com/arthur-debert/wspackager/pkg/errors"
	"github.com/arthur-debert/wspackager/pkg/plan"
	"github.com/arthur-debert/wspackager/pkg/testutil"
	"github.com/arthur-debert/wspackager/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifierFor(decls ...types.FileDeclaration) *plan.Classifier {
	return plan.NewClassifier(plan.Dedupe(decls))
}

func TestRunWritesNestedArchives(t *testing.T) {
	fx := testutil.NewFixture(t).
		File("files/lib/a.php", "a").
		File("files/style.css", "css").
		File("templates/index.tpl", "tpl")

	pp := New(fx.FS(), classifierFor(
		types.FileDeclaration{Path: "files.tar"},
		types.FileDeclaration{Path: "templates.tar", Intermediate: true},
	))

	artifacts, err := pp.Run(types.PackagingPlan{
		Prepack: []string{"files", "templates"},
		Direct:  []string{"package.xml"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"files.tar", "templates.tar"}, artifacts)

	entries := testutil.ReadArchive(t, fx.FS(), "files.tar")
	assert.Equal(t, []string{"lib/", "lib/a.php", "style.css"}, testutil.Names(entries))
	for _, e := range entries {
		assert.Equal(t, int64(0777), e.Mode, e.Name)
	}

	assert.False(t, testutil.IsGzipFile(t, fx.FS(), "templates.tar"))
	assert.Equal(t, []string{"index.tpl"}, testutil.ListArchive(t, fx.FS(), "templates.tar"))
}

func TestRunEmbedsNestedIntermediate(t *testing.T) {
	fx := testutil.NewFixture(t).
		File("files/app.php", "app").
		File("files/vendor/lib.php", "lib")

	pp := New(fx.FS(), classifierFor(
		types.FileDeclaration{Path: "files.tar"},
		types.FileDeclaration{Path: "files/vendor.tar", Intermediate: true},
	))

	artifacts, err := pp.Run(types.PackagingPlan{
		Prepack: []string{"files", "files/vendor"},
		Direct:  []string{"package.xml"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"files/vendor.tar", "files.tar"}, artifacts)

	names := testutil.ListArchive(t, fx.FS(), "files.tar")
	assert.Equal(t, []string{"app.php", "vendor.tar"}, names)
	assert.Equal(t, []string{"lib.php"}, testutil.ListArchive(t, fx.FS(), "files/vendor.tar"))
}

func TestRunEmptyPlan(t *testing.T) {
	fx := testutil.NewFixture(t)
	artifacts, err := New(fx.FS(), classifierFor()).Run(types.PackagingPlan{Direct: []string{"package.xml"}})
	require.NoError(t, err)
	assert.Empty(t, artifacts)
}

func TestRunRejectsRegularFile(t *testing.T) {
	fx := testutil.NewFixture(t).File("plugins/readme.txt", "doc")

	_, err := New(fx.FS(), classifierFor()).Run(types.PackagingPlan{Prepack: []string{"plugins/readme.txt"}})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPrepackage))
	assert.False(t, fx.Exists("plugins/readme.txt.tar"))
}

func TestRunFailureKeepsPartialArtifacts(t *testing.T) {
	fx := testutil.NewFixture(t).File("files/a.php", "a")

	pp := New(fx.FS(), classifierFor())
	artifacts, err := pp.Run(types.PackagingPlan{Prepack: []string{"files", "missing"}})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPrepackage))

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "missing", details["dir"])
	assert.Equal(t, []string{"files.tar", "missing.tar"}, details["artifacts"])
	assert.Equal(t, []string{"files.tar", "missing.tar"}, artifacts)

	assert.True(t, fx.Exists("files.tar"))
	assert.True(t, fx.Exists("missing.tar"))
}

func TestRunFailureRemovesPartialArtifacts(t *testing.T) {
	fx := testutil.NewFixture(t).File("files/a.php", "a")

	pp := New(fx.FS(), classifierFor())
	pp.RemovePartial = true
	artifacts, err := pp.Run(types.PackagingPlan{Prepack: []string{"files", "missing"}})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPrepackage))
	assert.Empty(t, artifacts)
	assert.False(t, fx.Exists("files.tar"))
	assert.False(t, fx.Exists("missing.tar"))
}

func TestOrder(t *testing.T) {
	tests := []struct {
		name string
		dirs []string
		want []string
	}{
		{"flat keeps order", []string{"b", "a", "c"}, []string{"b", "a", "c"}},
		{"nested first", []string{"files", "files/vendor", "templates"}, []string{"files/vendor", "files", "templates"}},
		{"deepest first", []string{"a", "a/b", "a/b/c"}, []string{"a/b/c", "a/b", "a"}},
		{"empty", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Order(tt.dirs))
		})
	}
}

func TestCleanup(t *testing.T) {
	fx := testutil.NewFixture(t).
		File("files.tar", "x").
		File("templates.tar", "y")

	failed := Cleanup(fx.FS(), []string{"files.tar", "templates.tar", "already-gone.tar"})

	assert.Empty(t, failed)
	assert.False(t, fx.Exists("files.tar"))
	assert.False(t, fx.Exists("templates.tar"))
}

func TestCleanupReportsFailures(t *testing.T) {
	fx := testutil.NewFixture(t).
		File("files.tar", "x").
		File("templates.tar", "y")

	failed := Cleanup(afero.NewReadOnlyFs(fx.FS()), []string{"files.tar", "templates.tar"})

	assert.Equal(t, []string{"files.tar", "templates.tar"}, failed)
	assert.True(t, fx.Exists("files.tar"))
}
