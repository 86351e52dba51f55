package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"strings-diff/internal/data"
	"strings-diff/internal/data/diff_state"
	"strings-diff/internal/diff"
)

const separatorWidth = 80

type Role int

const (
	Base Role = iota
	Target
)

// Printer writes comparison reports to Out and warnings to Err
type Printer struct {
	Out io.Writer
	Err io.Writer
	// Color enables colored diff markers
	Color bool
}

func NewPrinter(out io.Writer, err io.Writer, color bool) *Printer {
	return &Printer{
		Out:   out,
		Err:   err,
		Color: color,
	}
}

// PrintDuplicates warns about keys that appear more than once in file.
// Nothing is written if the file has no duplicates.
func (p *Printer) PrintDuplicates(role Role, file *data.ResourceFile) {
	if !file.HasDuplicates() {
		return
	}

	count := file.DuplicateKeys.Len()
	switch role {
	case Base:
		p.errorf("warning: base file has duplicate keys (same name appears more than once): %d\n", count)
	default:
		p.errorf("warning: target file has duplicate keys (same name appears more than once): %s (%d)\n", file.Path, count)
	}
	for _, key := range file.DuplicateKeys.Sorted() {
		p.errorf("  ! %s\n", key)
	}
}

// PrintComparison writes the report for a single base/target pair
func (p *Printer) PrintComparison(base *data.ResourceFile, target *data.ResourceFile, tags fmt.Stringer, result diff.Result) {
	p.printf("%s\n", strings.Repeat("=", separatorWidth))
	p.printf("Base   : %s\n", base.Path)
	p.printf("Target : %s\n", target.Path)
	p.printf("Tags   : %s\n", tags.String())
	p.printf("Base keys  : %d\n", base.Keys.Len())
	p.printf("Target keys: %d\n", target.Keys.Len())

	p.printSection("Missing (in base, not in target)", result.Missing.Sorted(), result)
	p.printSection("Extra   (in target, not in base)", result.Extra.Sorted(), result)
}

// PrintSummary writes a closing line when more than a single target was compared.
// Counts in the footer are digit grouped.
func (p *Printer) PrintSummary(targets int, targetsWithDiff int) {
	if targets < 2 {
		return
	}
	p.printf("%s\n", strings.Repeat("=", separatorWidth))
	p.printf("%s of %s targets differ from base\n", humanize.Comma(int64(targetsWithDiff)), humanize.Comma(int64(targets)))
}

func (p *Printer) printSection(title string, keys []string, result diff.Result) {
	p.printf("%s: %d\n", title, len(keys))
	for _, key := range keys {
		p.printf("  %s %s\n", p.marker(result.State(key)), key)
	}
}

func (p *Printer) marker(state diff_state.DiffState) string {
	marker := state.Marker()
	if !p.Color {
		return marker
	}
	switch state {
	case diff_state.Missing:
		return pterm.FgRed.Sprint(marker)
	case diff_state.Extra:
		return pterm.FgGreen.Sprint(marker)
	default:
		return marker
	}
}

func (p *Printer) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(p.Out, format, a...)
}

func (p *Printer) errorf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(p.Err, format, a...)
}
