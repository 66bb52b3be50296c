package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArchiveSuffixHelpers(t *testing.T) {
	tests := []struct {
		path      string
		hasSuffix bool
		trimmed   string
	}{
		{"templates.tar", true, "templates"},
		{"TEMPLATES.TAR", true, "TEMPLATES"},
		{"files", false, "files"},
		{"requirements/pkg.tar@", false, "requirements/pkg.tar@"},
		{".tar", true, ""},
		{"tar", false, "tar"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.hasSuffix, HasArchiveSuffix(tt.path))
			assert.Equal(t, tt.trimmed, TrimArchiveSuffix(tt.path))
			assert.Equal(t, tt.hasSuffix, FileDeclaration{Path: tt.path}.WantsPrepack())
		})
	}
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "files/a.txt", NormalizePath("./files//a.txt"))
	assert.Equal(t, "files/a.txt", NormalizePath(`files\a.txt`))
	assert.Equal(t, "", NormalizePath("."))
	assert.Equal(t, "", NormalizePath(""))
	assert.Equal(t, "files", NormalizePath("files/"))
}

func TestPackagingPlanFiles(t *testing.T) {
	plan := PackagingPlan{
		Prepack: []string{"files", "templates"},
		Direct:  []string{"package.xml", "page.xml"},
	}

	assert.Equal(t, []string{"files.tar", "templates.tar"}, plan.Archives())
	assert.Equal(t, []string{"package.xml", "page.xml", "files.tar", "templates.tar"}, plan.Files())
	assert.True(t, plan.Contains("files"))
	assert.True(t, plan.Contains("page.xml"))
	assert.False(t, plan.Contains("files.tar"))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "resolving", StateResolving.String())
	assert.Equal(t, "done", StateDone.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", State(99).String())

	assert.True(t, StateAssembling.CanFail())
	assert.False(t, StateCleaningUp.CanFail())
	assert.True(t, StateDone.Terminal())
	assert.False(t, StatePlanBuilt.Terminal())
}
