package steps

import (
	"testing"

	"github.com/foldertemplate/ftg/cli/structure"
	"github.com/foldertemplate/ftg/cli/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoStructures() []structure.Structure {
	app := libStructure()
	app.Name = "App"
	return []structure.Structure{libStructure(), app}
}

func TestSelectStructureByName(t *testing.T) {
	genCtx := newGenerateCtx("", twoStructures()...)
	genCtx.StructureName = "App"
	runCtx := NewRunContext()

	prompter := &mockPrompter{}
	require.NoError(t, SelectStructure{Prompter: prompter}.Run(genCtx, &runCtx))
	assert.Equal(t, "App", runCtx.Structure.Name)
	assert.Empty(t, prompter.labels)
}

func TestSelectStructureSingle(t *testing.T) {
	genCtx := newGenerateCtx("", libStructure())
	genCtx.SilentMode = true
	runCtx := NewRunContext()

	require.NoError(t, SelectStructure{Prompter: &mockPrompter{}}.Run(genCtx, &runCtx))
	assert.Equal(t, "Lib", runCtx.Structure.Name)
}

func TestSelectStructureMenu(t *testing.T) {
	genCtx := newGenerateCtx("", twoStructures()...)
	runCtx := NewRunContext()

	prompter := &mockPrompter{selections: []string{"App"}}
	require.NoError(t, SelectStructure{Prompter: prompter}.Run(genCtx, &runCtx))
	assert.Equal(t, "App", runCtx.Structure.Name)
	assert.Equal(t, []string{"Select a structure"}, prompter.labels)

	prompter = &mockPrompter{err: util.ErrCmdAbort}
	assert.ErrorIs(t, SelectStructure{Prompter: prompter}.Run(genCtx, &runCtx),
		util.ErrCmdAbort)
}

func TestSelectStructureErrors(t *testing.T) {
	genCtx := newGenerateCtx("", twoStructures()...)
	genCtx.SilentMode = true
	runCtx := NewRunContext()

	err := SelectStructure{Prompter: &mockPrompter{}}.Run(genCtx, &runCtx)
	assert.ErrorContains(t, err, "structure name is required in non-interactive mode")

	genCtx.StructureName = "Service"
	err = SelectStructure{Prompter: &mockPrompter{}}.Run(genCtx, &runCtx)
	assert.True(t, structure.IsCode(err, structure.CodeStructureNotFound))
	assert.Nil(t, runCtx.Structure)
}
