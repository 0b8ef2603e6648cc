package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/wbmirror/wbmirror/internal/model"
)

// MarkdownWriter outputs the summary in Markdown format, designed for
// documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent,
// type-safe markdown generation with table and GitHub alert support.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(summary *model.Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary)
	w.writeFailures(md, summary)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and run property table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, summary *model.Summary) {
	md.H1("Mirror Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Seed", "`" + summary.Seed + "`"},
			{"Snapshot", summary.Timestamp},
			{"Output directory", "`" + summary.OutputDir + "`"},
			{"Started", summary.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", summary.Duration.Round(summaryDurationUnit).String()},
			{"Documents", strconv.Itoa(summary.Documents)},
			{"Assets", strconv.Itoa(summary.Assets)},
			{"Failed", strconv.Itoa(summary.Failed)},
			{"Bytes written", strconv.FormatInt(summary.Bytes, 10)},
		},
	})
	md.PlainText("")

	if summary.Failed == 0 {
		md.Tip("Every discovered address was mirrored.")
	} else {
		md.Warningf("%d address(es) could not be fetched and are missing from the mirror.", summary.Failed)
	}
	md.PlainText("")
}

// writeFailures lists the addresses that could not be fetched.
func (w *MarkdownWriter) writeFailures(md *markdown.Markdown, summary *model.Summary) {
	if len(summary.Failures) == 0 {
		return
	}

	md.H2("Failed Addresses")
	md.PlainText("")
	items := make([]string, 0, len(summary.Failures))
	for _, addr := range summary.Failures {
		items = append(items, "`"+addr+"`")
	}
	md.BulletList(items...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [wbmirror](https://github.com/wbmirror/wbmirror)*")
}
