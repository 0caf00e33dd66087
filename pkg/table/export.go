package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Format is an export format as named in the UI. "xls" produces CSV text and "pdf"
// produces a plain-text report. Neither is a real spreadsheet or PDF.
type Format string

const (
	FormatXLS Format = "xls"
	FormatPDF Format = "pdf"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat accepts the UI names and their actual file types.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xls", "csv", "":
		return FormatXLS, nil
	case "pdf", "txt", "text":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Extension is the extension of the file actually produced.
func (f Format) Extension() string {
	if f == FormatPDF {
		return ".txt"
	}
	return ".csv"
}

// ContentType is the MIME type of the file actually produced.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "text/plain; charset=utf-8"
	}
	return "text/csv; charset=utf-8"
}

// FileName builds "<base>-<yyyy-mm-dd><ext>".
func FileName(base string, f Format, at time.Time) string {
	return base + "-" + at.Format("2006-01-02") + f.Extension()
}

// ExportOptions carries report metadata.
type ExportOptions struct {
	Title       string
	GeneratedAt time.Time
}

// Export writes rows in format f. Only visible, non-action columns are written.
func (t *Table[T]) Export(w io.Writer, f Format, rows []T, v Visibility, opts ExportOptions) error {
	switch f {
	case FormatXLS:
		return t.WriteCSV(w, rows, v)
	case FormatPDF:
		return t.WriteReport(w, rows, v, opts)
	}
	return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
}

// WriteCSV writes a header line followed by one line per row. Every row field is
// wrapped in double quotes with embedded quotes doubled. CRLF inside a cell is written
// as LF, since CSV readers drop the CR of a quoted line break.
func (t *Table[T]) WriteCSV(w io.Writer, rows []T, v Visibility) error {
	bw := bufio.NewWriter(w)

	headers := t.Headers(v)
	for i, h := range headers {
		headers[i] = headerField(h)
	}
	if _, err := bw.WriteString(strings.Join(headers, ",") + "\n"); err != nil {
		return err
	}

	for _, cells := range t.Cells(rows, v) {
		for i, c := range cells {
			cells[i] = quoteField(c)
		}
		if _, err := bw.WriteString(strings.Join(cells, ",") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteReport writes a plain-text report: a title block, then one block per record
// listing "Header: value" lines.
func (t *Table[T]) WriteReport(w io.Writer, rows []T, v Visibility, opts ExportOptions) error {
	bw := bufio.NewWriter(w)
	title := opts.Title
	if title == "" {
		title = "Export"
	}
	generated := opts.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}

	fmt.Fprintf(bw, "%s Report\n", title)
	fmt.Fprintf(bw, "Generated: %s\n", generated.Format("2006-01-02 15:04"))
	fmt.Fprintf(bw, "Total records: %d\n", len(rows))

	headers := t.Headers(v)
	for i, cells := range t.Cells(rows, v) {
		fmt.Fprintf(bw, "\nRecord %d\n", i+1)
		for j, c := range cells {
			fmt.Fprintf(bw, "  %s: %s\n", headers[j], c)
		}
	}
	return bw.Flush()
}

func quoteField(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func headerField(s string) string {
	if strings.ContainsAny(s, ",\"\r\n") {
		return quoteField(s)
	}
	return s
}
