package report

import (
	"bytes"

	"github.com/rotisserie/eris"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in advisor output is dropped, not passed through.
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// MarkdownToHTML renders an advisor narrative to HTML.
func MarkdownToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", eris.Wrap(err, "report: render markdown")
	}
	return buf.String(), nil
}
