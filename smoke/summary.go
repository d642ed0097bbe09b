package smoke

import (
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/multierr"
)

type StepResult struct {
	Step     int
	Name     string
	Err      error
	Duration time.Duration
}

// Summary is the outcome of a run.
type Summary struct {
	Steps []StepResult
	// Minted holds the mint or asset address of every minted item, in order.
	Minted []solana.PublicKey
}

func (s *Summary) add(result StepResult) {
	s.Steps = append(s.Steps, result)
}

// Step returns the result of step n, if it ran.
func (s *Summary) Step(n int) (StepResult, bool) {
	for _, step := range s.Steps {
		if step.Step == n {
			return step, true
		}
	}
	return StepResult{}, false
}

// Err combines the errors of every failed step.
func (s *Summary) Err() error {
	var err error
	for _, step := range s.Steps {
		if step.Err != nil {
			err = multierr.Append(err, fmt.Errorf("step %d (%s): %w", step.Step, step.Name, step.Err))
		}
	}
	return err
}

func (s *Summary) Failed() bool {
	return s.Err() != nil
}
