package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "distinct tokens in order",
			content: "Hi {{interviewer_name}}, thanks for the chat at {{company_name}}.",
			want:    []string{"interviewer_name", "company_name"},
		},
		{
			name:    "repeated token appears once",
			content: "{{name}} and again {{name}}",
			want:    []string{"name"},
		},
		{
			name:    "whitespace inside braces tolerated",
			content: "Hello {{ first_name }}",
			want:    []string{"first_name"},
		},
		{
			name:    "no tokens",
			content: "plain text",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPlaceholders(tt.content))
		})
	}
}

func TestTemplateRender(t *testing.T) {
	tpl := Template{Content: "Hi {{name}}, welcome to {{company}}!"}

	t.Run("substitutes known vars", func(t *testing.T) {
		got := tpl.Render(map[string]string{"name": "Sam", "company": "Acme"})
		assert.Equal(t, "Hi Sam, welcome to Acme!", got)
	})

	t.Run("missing vars left in place", func(t *testing.T) {
		got := tpl.Render(map[string]string{"name": "Sam"})
		assert.Equal(t, "Hi Sam, welcome to {{company}}!", got)
	})
}

func TestTemplateRenderSubject(t *testing.T) {
	tpl := Template{Subject: "Thanks, {{name}}"}
	assert.Equal(t, "Thanks, Sam", tpl.RenderSubject(map[string]string{"name": "Sam"}))

	plain := Template{Subject: "No placeholders here"}
	assert.Equal(t, "No placeholders here", plain.RenderSubject(nil))
}

func TestTemplatePatchRow(t *testing.T) {
	t.Run("content change re-extracts placeholders", func(t *testing.T) {
		content := "Dear {{hiring_manager}}"
		row := TemplatePatch{Content: &content}.Row()

		assert.Equal(t, content, row["content"])
		assert.Equal(t, []string{"hiring_manager"}, row["placeholders"])
	})

	t.Run("usage count alone", func(t *testing.T) {
		n := 3
		row := TemplatePatch{UsageCount: &n}.Row()
		assert.Equal(t, Row{"usage_count": 3}, row)
	})
}
