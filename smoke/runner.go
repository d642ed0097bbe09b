// Package smoke runs the candy machine lifecycle as a sequence of isolated
// steps: a failed step is reported and the run moves on to the next one.
package smoke

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	candymachinesdk "github.com/zzispp/candymachine-go-sdk"
)

// ErrFetchCandyMachine is returned by a check when the candy machine could
// not be fetched or decoded. The cause is only logged.
var ErrFetchCandyMachine = errors.New("Error fetching the Candy Machine.")

type Options struct {
	AirdropLamports uint64
	ConfigLines     []candymachinesdk.ConfigLine
	Mints           int
	// Delete withdraws the candy machine and its candy guard as the last step.
	Delete bool
}

type Runner struct {
	backend  candymachinesdk.Backend
	opts     Options
	reporter *Reporter
	log      *zap.Logger
}

func NewRunner(backend candymachinesdk.Backend, opts Options, reporter *Reporter, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{backend: backend, opts: opts, reporter: reporter, log: log}
}

// Run executes every step and returns their results. It only stops early
// when ctx is done.
func (r *Runner) Run(ctx context.Context) *Summary {
	summary := &Summary{}
	accounts := r.backend.Accounts()
	identity := accounts.Keypair.PublicKey()
	candyMachine := accounts.CandyMachine.PublicKey()
	collection := accounts.CollectionMint.PublicKey()

	r.reporter.Println(fmt.Sprintf("Testing %s...", r.backend.Name()))
	r.reporter.Println("Important account information:")
	if err := r.reporter.Accounts(accounts); err != nil {
		r.log.Warn("can't print accounts", zap.Error(err))
	}

	r.step(ctx, summary, 1, "airdrop",
		func(ctx context.Context) (string, error) {
			sig, err := r.backend.Airdrop(ctx, r.opts.AirdropLamports)
			r.log.Debug("airdrop", zap.Stringer("signature", sig))
			return fmt.Sprintf("Airdropped %s SOL to the %s", formatSOL(r.opts.AirdropLamports), identity), err
		},
		"Error airdropping SOL to the wallet:",
	)

	r.step(ctx, summary, 2, "create collection",
		func(ctx context.Context) (string, error) {
			sig, err := r.backend.CreateCollection(ctx)
			r.log.Debug("create collection", zap.Stringer("signature", sig))
			return fmt.Sprintf("Created collection: %s", collection), err
		},
		"Error creating collection:",
	)

	r.step(ctx, summary, 3, "create candy machine",
		func(ctx context.Context) (string, error) {
			sig, err := r.backend.CreateCandyMachine(ctx)
			r.log.Debug("create candy machine", zap.Stringer("signature", sig))
			return fmt.Sprintf("Created Candy Machine: %s", candyMachine), err
		},
		"Error creating Candy Machine:",
	)

	r.step(ctx, summary, 4, "add config lines",
		func(ctx context.Context) (string, error) {
			sig, err := r.backend.AddConfigLines(ctx, 0, r.opts.ConfigLines)
			r.log.Debug("add config lines", zap.Stringer("signature", sig), zap.Int("lines", len(r.opts.ConfigLines)))
			return fmt.Sprintf("Added items to the Candy Machine: %s", candyMachine), err
		},
		"Error adding items to the Candy Machine:",
	)

	r.check(ctx, summary, 5, candymachinesdk.ExpectedCandyMachineState{
		ItemsLoaded:   uint32(len(r.opts.ConfigLines)),
		ItemsRedeemed: 0,
		Authority:     identity,
		Collection:    collection,
	})

	r.step(ctx, summary, 6, "mint",
		func(ctx context.Context) (string, error) {
			minted := 0
			for i := 0; i < r.opts.Mints; i++ {
				mint, sig, err := r.backend.Mint(ctx)
				if err != nil {
					r.log.Debug("mint failed", zap.Int("minted", minted), zap.Error(err))
					return "", err
				}
				r.log.Debug("minted", zap.Stringer("mint", mint), zap.Stringer("signature", sig))
				summary.Minted = append(summary.Minted, mint)
				minted++
			}
			return fmt.Sprintf("Minted %d NFTs.", minted), nil
		},
		"Error minting NFTs:",
	)

	r.check(ctx, summary, 7, candymachinesdk.ExpectedCandyMachineState{
		ItemsLoaded:   uint32(len(r.opts.ConfigLines)),
		ItemsRedeemed: uint64(r.opts.Mints),
		Authority:     identity,
		Collection:    collection,
	})

	if r.opts.Delete {
		r.step(ctx, summary, 8, "delete candy machine",
			func(ctx context.Context) (string, error) {
				sig, err := r.backend.DeleteCandyMachine(ctx)
				r.log.Debug("delete candy machine", zap.Stringer("signature", sig))
				return fmt.Sprintf("Deleted the Candy Machine: %s", candyMachine), err
			},
			"Error deleting the Candy Machine:",
		)
	}
	return summary
}

func (r *Runner) step(
	ctx context.Context,
	summary *Summary,
	n int,
	name string,
	fn func(context.Context) (string, error),
	failure string,
) {
	if err := ctx.Err(); err != nil {
		summary.add(StepResult{Step: n, Name: name, Err: err})
		return
	}
	start := time.Now()
	text, err := fn(ctx)
	result := StepResult{Step: n, Name: name, Err: err, Duration: time.Since(start)}
	summary.add(result)
	if err != nil {
		r.log.Info("step failed", zap.Int("step", n), zap.String("name", name), zap.Error(err))
		r.reporter.Error(n, failure, err)
		return
	}
	r.log.Info("step succeeded", zap.Int("step", n), zap.String("name", name), zap.Duration("duration", result.Duration))
	r.reporter.Success(n, text)
}

func (r *Runner) check(ctx context.Context, summary *Summary, n int, expected candymachinesdk.ExpectedCandyMachineState) {
	start := time.Now()
	err := r.CheckCandyMachine(ctx, n, expected)
	summary.add(StepResult{Step: n, Name: "verify", Err: err, Duration: time.Since(start)})
}

// CheckCandyMachine fetches the candy machine and compares it with expected.
// Step 0 prints nothing.
func (r *Runner) CheckCandyMachine(ctx context.Context, step int, expected candymachinesdk.ExpectedCandyMachineState) error {
	state, err := r.backend.FetchCandyMachine(ctx)
	if err != nil {
		r.log.Debug("can't fetch candy machine", zap.Int("step", step), zap.Error(err))
		if step != 0 {
			r.reporter.Failure(step, ErrFetchCandyMachine.Error())
		}
		return ErrFetchCandyMachine
	}
	if err := candymachinesdk.CompareCandyMachineState(state, expected); err != nil {
		r.log.Debug("unexpected candy machine state",
			zap.Int("step", step),
			zap.Uint64("itemsRedeemed", state.ItemsRedeemed),
			zap.Uint32("itemsLoaded", state.ItemsLoaded),
			zap.Stringer("authority", state.Authority),
			zap.Stringer("collection", state.CollectionMint),
		)
		if step != 0 {
			r.reporter.Failure(step, "Candy Machine incorrect configuration: "+err.Error())
		}
		return err
	}
	if step != 0 {
		r.reporter.Success(step, "Candy Machine has the correct configuration.")
	}
	return nil
}

func formatSOL(lamports uint64) string {
	return strconv.FormatFloat(float64(lamports)/float64(solana.LAMPORTS_PER_SOL), 'f', -1, 64)
}
