package catalog

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

type markdownRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func newMarkdownRenderer() *markdownRenderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("p", "span", "strong")
	policy.RequireNoFollowOnLinks(true)
	return &markdownRenderer{
		md:     goldmark.New(),
		policy: policy,
	}
}

// Render converts markdown copy into sanitised HTML.
func (r *markdownRenderer) Render(source string) (template.HTML, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("catalog: render markdown: %w", err)
	}
	return template.HTML(strings.TrimSpace(r.policy.Sanitize(buf.String()))), nil
}
