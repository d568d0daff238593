package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stride-careers/stride/pkg/types"
)

func TestTemplateCreateExtractsPlaceholders(t *testing.T) {
	fx := newFixture(t, "u-1")

	tpl, err := fx.ws.Templates().Create(types.Template{
		Name:    "Follow-up",
		Content: "Hi {{name}}, thanks for the chat about the role at {{company}}.",
	})
	require.NoError(t, err)

	assert.Equal(t, "u-1", tpl.UserID)
	assert.Equal(t, types.DefaultTemplateType, tpl.TemplateType)
	assert.Equal(t, []string{"name", "company"}, tpl.Placeholders)
	assert.Equal(t, 0, tpl.UsageCount)
}

func TestTemplateRenderBumpsUsage(t *testing.T) {
	fx := newFixture(t, "u-1")

	tpl, err := fx.ws.Templates().Create(types.Template{
		Name:    "Intro",
		Content: "Hi {{name}}!",
	})
	require.NoError(t, err)

	out, err := fx.ws.Templates().Render(tpl.ID, map[string]string{"name": "Dana"})
	require.NoError(t, err)
	assert.Equal(t, "Hi Dana!", out)

	out, err = fx.ws.Templates().Render(tpl.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hi {{name}}!", out, "missing vars left in place")

	templates, err := fx.ws.Templates().List()
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, 2, templates[0].UsageCount)
}

func TestTemplateRenderMissing(t *testing.T) {
	fx := newFixture(t, "u-1")

	_, err := fx.ws.Templates().Render("nonesuch", nil)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestTemplateUpdateContentReextracts(t *testing.T) {
	fx := newFixture(t, "u-1")

	tpl, err := fx.ws.Templates().Create(types.Template{
		Name:    "Intro",
		Content: "Hi {{name}}!",
	})
	require.NoError(t, err)

	content := "Dear {{hiring_manager}}, I am writing about {{job_title}}."
	require.NoError(t, fx.ws.Templates().Update(tpl.ID, types.TemplatePatch{Content: &content}))

	templates, err := fx.ws.Templates().List()
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, content, templates[0].Content)
	assert.Equal(t, []string{"hiring_manager", "job_title"}, templates[0].Placeholders)
}

func TestTemplateRemove(t *testing.T) {
	fx := newFixture(t, "u-1")

	tpl, err := fx.ws.Templates().Create(types.Template{Name: "t", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, fx.ws.Templates().Remove(tpl.ID))
	assert.ErrorIs(t, fx.ws.Templates().Remove(tpl.ID), types.ErrNotFound)
}
