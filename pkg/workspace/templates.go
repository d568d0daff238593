package workspace

import "github.com/stride-careers/stride/pkg/types"

// Templates is the sync accessor for message templates, scoped to the
// current principal.
type Templates struct {
	ws *Workspace
}

// List returns the principal's templates, newest first.
func (t *Templates) List() ([]types.Template, error) {
	uid, err := t.ws.requireUser()
	if err != nil {
		return nil, err
	}
	rows, err := t.ws.list(types.TemplatesCollection, types.Query{
		Filter:  map[string]any{"user_id": uid},
		OrderBy: []types.Order{{Column: "created_at", Desc: true}},
	})
	if err != nil {
		return nil, err
	}
	templates := make([]types.Template, len(rows))
	for i, r := range rows {
		templates[i] = types.TemplateFromRow(r)
	}
	return templates, nil
}

// Create stores a new template owned by the current principal. An empty
// type defaults to email; placeholders are extracted from the content.
func (t *Templates) Create(tpl types.Template) (*types.Template, error) {
	uid, err := t.ws.requireUser()
	if err != nil {
		return nil, err
	}
	tplType := tpl.TemplateType
	if tplType == "" {
		tplType = types.DefaultTemplateType
	}
	row, err := t.ws.store.Insert(types.TemplatesCollection, types.Row{
		"user_id":       uid,
		"name":          tpl.Name,
		"template_type": tplType,
		"subject":       tpl.Subject,
		"content":       tpl.Content,
		"placeholders":  types.ExtractPlaceholders(tpl.Content),
	})
	if err != nil {
		return nil, types.NewRemoteError("insert", types.TemplatesCollection, err)
	}
	t.ws.invalidate(types.TemplatesCollection)
	created := types.TemplateFromRow(row)
	t.ws.log.Info().Str("template_id", created.ID).Msg("template created")
	return &created, nil
}

// Update merges the patch into the template. Only named fields change;
// a content change re-extracts placeholders. Last write wins.
func (t *Templates) Update(id string, patch types.TemplatePatch) error {
	if _, err := t.ws.requireUser(); err != nil {
		return err
	}
	if err := t.ws.store.Update(types.TemplatesCollection, id, patch.Row()); err != nil {
		return types.NewRemoteError("update", types.TemplatesCollection, err)
	}
	t.ws.invalidate(types.TemplatesCollection)
	return nil
}

// Remove deletes the template.
func (t *Templates) Remove(id string) error {
	if _, err := t.ws.requireUser(); err != nil {
		return err
	}
	if err := t.ws.store.Delete(types.TemplatesCollection, id); err != nil {
		return types.NewRemoteError("delete", types.TemplatesCollection, err)
	}
	t.ws.invalidate(types.TemplatesCollection)
	return nil
}

// Render substitutes vars into the template's content and bumps its
// usage count. The rendered text is returned even when the usage-count
// update fails; the error reports that failure so the caller can show
// the notice.
func (t *Templates) Render(id string, vars map[string]string) (string, error) {
	if _, err := t.ws.requireUser(); err != nil {
		return "", err
	}
	rows, err := t.ws.store.Select(types.TemplatesCollection, types.Query{
		Filter: map[string]any{"id": id},
	})
	if err != nil {
		return "", types.NewRemoteError("select", types.TemplatesCollection, err)
	}
	if len(rows) == 0 {
		return "", types.NewRemoteError("select", types.TemplatesCollection, types.ErrNotFound)
	}
	tpl := types.TemplateFromRow(rows[0])

	rendered := tpl.Render(vars)
	next := tpl.UsageCount + 1
	if err := t.Update(id, types.TemplatePatch{UsageCount: &next}); err != nil {
		return rendered, err
	}
	return rendered, nil
}
