package diagfmt

import (
	"encoding/json"
	"io"

	"volt/internal/diag"
	"volt/internal/source"
)

// DiagnosticOutput — сериализуемое представление одной диагностики.
type DiagnosticOutput struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	File     string       `json:"file"`
	Span     source.Span  `json:"span"`
	Line     uint32       `json:"line,omitempty"`
	Col      uint32       `json:"col,omitempty"`
	Notes    []NoteOutput `json:"notes,omitempty"`
}

type NoteOutput struct {
	Message string      `json:"message"`
	Span    source.Span `json:"span"`
}

// JSON сериализует диагностики Bag в массив JSON-объектов.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	output := make([]DiagnosticOutput, 0, bag.Len())
	for _, d := range bag.Items() {
		if opts.Max > 0 && len(output) >= opts.Max {
			break
		}

		out := DiagnosticOutput{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Span:     d.Primary,
		}
		if file := fs.Get(d.Primary.File); file != nil {
			out.File = file.Path
		}
		if opts.IncludePositions {
			start, _ := fs.Resolve(d.Primary)
			out.Line = start.Line
			out.Col = start.Col
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				out.Notes = append(out.Notes, NoteOutput{Message: n.Msg, Span: n.Span})
			}
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
