package types

import (
	"regexp"
	"strings"
	"time"
)

// DefaultTemplateType is used when a template is created without a type.
const DefaultTemplateType = "email"

// placeholderPattern matches {{name}} tokens in template content.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Template is a reusable outreach message owned by one principal.
// Placeholders are extracted from {{name}} tokens in Content at creation;
// UsageCount is bumped by the sync layer on each render.
type Template struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	TemplateType string    `json:"template_type"`
	Subject      string    `json:"subject,omitempty"`
	Content      string    `json:"content"`
	Placeholders []string  `json:"placeholders,omitempty"`
	UsageCount   int       `json:"usage_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ExtractPlaceholders returns the distinct {{name}} tokens in content, in
// order of first appearance.
func ExtractPlaceholders(content string) []string {
	var out []string
	seen := map[string]bool{}
	for _, m := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		name := m[1]
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

// Render substitutes placeholder values into the template content.
// Placeholders without a value in vars are left in place so the caller
// can spot what is still missing.
func (t Template) Render(vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(t.Content, func(tok string) string {
		name := placeholderPattern.FindStringSubmatch(tok)[1]
		if v, ok := vars[name]; ok {
			return v
		}
		return tok
	})
}

// RenderSubject substitutes placeholder values into the subject line.
func (t Template) RenderSubject(vars map[string]string) string {
	if !strings.Contains(t.Subject, "{{") {
		return t.Subject
	}
	return Template{Content: t.Subject}.Render(vars)
}

// TemplateFromRow hydrates a Template from a store row.
func TemplateFromRow(r Row) Template {
	return Template{
		ID:           rowString(r, "id"),
		UserID:       rowString(r, "user_id"),
		Name:         rowString(r, "name"),
		TemplateType: rowString(r, "template_type"),
		Subject:      rowString(r, "subject"),
		Content:      rowString(r, "content"),
		Placeholders: rowStrings(r, "placeholders"),
		UsageCount:   rowInt(r, "usage_count"),
		CreatedAt:    rowTime(r, "created_at"),
		UpdatedAt:    rowTime(r, "updated_at"),
	}
}

// TemplatePatch names the template fields an update may change. Nil
// fields are left untouched by the store; last write wins. When Content
// changes, the sync layer re-extracts placeholders.
type TemplatePatch struct {
	Name         *string
	TemplateType *string
	Subject      *string
	Content      *string
	UsageCount   *int
}

// Row converts the patch to the partial row sent to the store.
func (p TemplatePatch) Row() Row {
	r := Row{}
	if p.Name != nil {
		r["name"] = *p.Name
	}
	if p.TemplateType != nil {
		r["template_type"] = *p.TemplateType
	}
	if p.Subject != nil {
		r["subject"] = *p.Subject
	}
	if p.Content != nil {
		r["content"] = *p.Content
		r["placeholders"] = ExtractPlaceholders(*p.Content)
	}
	if p.UsageCount != nil {
		r["usage_count"] = *p.UsageCount
	}
	return r
}
