package smoke

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	candymachinesdk "github.com/zzispp/candymachine-go-sdk"
)

// Reporter prints the human readable step lines. Step failures go to errOut,
// everything else to out.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
}

func NewReporter(out, errOut io.Writer) *Reporter {
	return &Reporter{out: out, errOut: errOut}
}

func (r *Reporter) Println(a ...interface{}) {
	fmt.Fprintln(r.out, a...)
}

func (r *Reporter) Success(step int, text string) {
	fmt.Fprintf(r.out, "%d. ✅ - %s\n", step, text)
}

// Failure prints a failed check on the regular output.
func (r *Reporter) Failure(step int, text string) {
	fmt.Fprintf(r.out, "%d. ❌ - %s\n", step, text)
}

// Error prints a failed step followed by its cause.
func (r *Reporter) Error(step int, text string, err error) {
	fmt.Fprintf(r.errOut, "%d. ❌ - %s %v\n", step, text, err)
}

// Accounts prints the generated identifiers of a run.
func (r *Reporter) Accounts(accounts candymachinesdk.Accounts) error {
	data := pterm.TableData{
		{"(index)", "Values"},
		{"keypair", accounts.Keypair.PublicKey().String()},
		{"collectionMint", accounts.CollectionMint.PublicKey().String()},
		{"treasury", accounts.Treasury.PublicKey().String()},
		{"candyMachine", accounts.CandyMachine.PublicKey().String()},
	}
	if !accounts.CollectionUpdateAuthority.PublicKey().Equals(accounts.Keypair.PublicKey()) {
		data = append(data, []string{"collectionUpdateAuthority", accounts.CollectionUpdateAuthority.PublicKey().String()})
	}
	return r.table(data)
}

// Summary prints one row per executed step.
func (r *Reporter) Summary(s *Summary) error {
	data := pterm.TableData{{"step", "name", "status", "duration"}}
	for _, step := range s.Steps {
		status := "ok"
		if step.Err != nil {
			status = "failed"
		}
		data = append(data, []string{
			strconv.Itoa(step.Step),
			step.Name,
			status,
			step.Duration.Round(time.Millisecond).String(),
		})
	}
	return r.table(data)
}

func (r *Reporter) table(data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithHeaderRowSeparator("-").WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("can't render table: %w", err)
	}
	fmt.Fprintln(r.out, out)
	return nil
}
