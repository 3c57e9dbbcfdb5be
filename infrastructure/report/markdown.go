package report

import (
	"io"

	"github.com/nao1215/markdown"

	"github.com/rios0rios0/licensegen/domain"
)

// MarkdownWriter renders the report as a GitHub-flavored markdown table,
// for embedding in documentation instead of shipping the raw CSV.
type MarkdownWriter struct{}

// NewMarkdownWriter creates the markdown report writer.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

var _ Writer = (*MarkdownWriter)(nil)

func (w *MarkdownWriter) Name() string { return "markdown" }

func (w *MarkdownWriter) Write(out io.Writer, records []domain.Record) error {
	md := markdown.NewMarkdown(out)

	md.H1("Third-Party Licenses")
	md.PlainText("")

	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{record.Component, record.Origin, record.License, record.Copyright}
	}

	md.Table(markdown.TableSet{
		Header: reportHeader,
		Rows:   rows,
	})

	return md.Build()
}
