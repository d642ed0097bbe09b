package smoke

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"

	candymachinesdk "github.com/zzispp/candymachine-go-sdk"
)

// fakeBackend behaves like a healthy candy machine unless one of the error
// fields is set.
type fakeBackend struct {
	accounts candymachinesdk.Accounts

	airdropErr, collectionErr, createErr, addErr, fetchErr, deleteErr error
	// mintErrAt fails the mint with that 1-based index.
	mintErrAt int
	// authority overrides the authority of the fetched state.
	authority *solana.PublicKey

	loaded   uint32
	redeemed uint64
	deleted  bool
	calls    []string
}

var _ candymachinesdk.Backend = (*fakeBackend)(nil)

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	accounts, err := candymachinesdk.NewAccounts(solana.NewWallet().PrivateKey, false)
	require.NoError(t, err)
	return &fakeBackend{accounts: accounts}
}

func (f *fakeBackend) Name() string { return "Fake Candy Machine" }

func (f *fakeBackend) Accounts() candymachinesdk.Accounts { return f.accounts }

func (f *fakeBackend) Airdrop(ctx context.Context, lamports uint64) (solana.Signature, error) {
	f.calls = append(f.calls, "airdrop")
	return solana.Signature{}, f.airdropErr
}

func (f *fakeBackend) CreateCollection(ctx context.Context) (solana.Signature, error) {
	f.calls = append(f.calls, "collection")
	return solana.Signature{}, f.collectionErr
}

func (f *fakeBackend) CreateCandyMachine(ctx context.Context) (solana.Signature, error) {
	f.calls = append(f.calls, "create")
	return solana.Signature{}, f.createErr
}

func (f *fakeBackend) AddConfigLines(ctx context.Context, index uint32, lines []candymachinesdk.ConfigLine) (solana.Signature, error) {
	f.calls = append(f.calls, "add")
	if f.addErr != nil {
		return solana.Signature{}, f.addErr
	}
	f.loaded += uint32(len(lines))
	return solana.Signature{}, nil
}

func (f *fakeBackend) FetchCandyMachine(ctx context.Context) (*candymachinesdk.CandyMachineState, error) {
	f.calls = append(f.calls, "fetch")
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	authority := f.accounts.Keypair.PublicKey()
	if f.authority != nil {
		authority = *f.authority
	}
	return &candymachinesdk.CandyMachineState{
		Authority:      authority,
		CollectionMint: f.accounts.CollectionMint.PublicKey(),
		ItemsLoaded:    f.loaded,
		ItemsRedeemed:  f.redeemed,
	}, nil
}

func (f *fakeBackend) Mint(ctx context.Context) (solana.PublicKey, solana.Signature, error) {
	f.calls = append(f.calls, "mint")
	if f.mintErrAt != 0 && int(f.redeemed)+1 == f.mintErrAt {
		return solana.PublicKey{}, solana.Signature{}, errors.New("insufficient funds")
	}
	f.redeemed++
	return solana.NewWallet().PublicKey(), solana.Signature{}, nil
}

func (f *fakeBackend) DeleteCandyMachine(ctx context.Context) (solana.Signature, error) {
	f.calls = append(f.calls, "delete")
	f.deleted = f.deleteErr == nil
	return solana.Signature{}, f.deleteErr
}

var testLines = []candymachinesdk.ConfigLine{
	{Name: "1", URI: "https://arweave.net/gR62qxGsChALVAMdnyoq0KZzsSnN4VxYvx0ramlaJnY"},
	{Name: "2", URI: "https://arweave.net/Ya_V3r3k_c-BivoJiMUfO8vEpsi95c5dupYIh2cFdGo"},
	{Name: "3", URI: "https://arweave.net/8MPJnyFK0eBvYEKRgA6mxCBbGGEHIRXjC74Jl06ymDg"},
}

func run(t *testing.T, backend *fakeBackend, opts Options) (*Summary, string, string) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	r := NewRunner(backend, opts, NewReporter(out, errOut), zaptest.NewLogger(t))
	return r.Run(context.Background()), out.String(), errOut.String()
}

func defaultOptions() Options {
	return Options{
		AirdropLamports: 5 * solana.LAMPORTS_PER_SOL,
		ConfigLines:     testLines,
		Mints:           3,
	}
}

func TestRunHappyPath(t *testing.T) {
	require := require.New(t)
	backend := newFakeBackend(t)

	summary, out, errOut := run(t, backend, defaultOptions())
	require.NoError(summary.Err())
	require.False(summary.Failed())
	require.Empty(errOut)
	require.Len(summary.Minted, 3)
	require.Len(summary.Steps, 7)
	require.False(backend.deleted)

	identity := backend.accounts.Keypair.PublicKey().String()
	cm := backend.accounts.CandyMachine.PublicKey().String()
	for _, line := range []string{
		"Testing Fake Candy Machine...",
		"Important account information:",
		"1. ✅ - Airdropped 5 SOL to the " + identity,
		"2. ✅ - Created collection: " + backend.accounts.CollectionMint.PublicKey().String(),
		"3. ✅ - Created Candy Machine: " + cm,
		"4. ✅ - Added items to the Candy Machine: " + cm,
		"5. ✅ - Candy Machine has the correct configuration.",
		"6. ✅ - Minted 3 NFTs.",
		"7. ✅ - Candy Machine has the correct configuration.",
	} {
		require.Contains(out, line)
	}
	require.Contains(out, backend.accounts.Treasury.PublicKey().String())
	require.Less(strings.Index(out, "5. ✅"), strings.Index(out, "6. ✅"))
}

func TestRunDelete(t *testing.T) {
	backend := newFakeBackend(t)
	opts := defaultOptions()
	opts.Delete = true

	summary, out, _ := run(t, backend, opts)
	require.NoError(t, summary.Err())
	require.True(t, backend.deleted)
	require.Contains(t, out, "8. ✅ - Deleted the Candy Machine: "+backend.accounts.CandyMachine.PublicKey().String())
}

func TestRunAirdropFailureContinues(t *testing.T) {
	require := require.New(t)
	backend := newFakeBackend(t)
	backend.airdropErr = errors.New("airdrop limit reached")

	summary, out, errOut := run(t, backend, defaultOptions())
	require.Contains(errOut, "1. ❌ - Error airdropping SOL to the wallet: airdrop limit reached")
	require.Contains(out, "2. ✅ - Created collection:")
	require.Contains(out, "7. ✅ - Candy Machine has the correct configuration.")

	errs := multierr.Errors(summary.Err())
	require.Len(errs, 1)
	step, ok := summary.Step(1)
	require.True(ok)
	require.EqualError(step.Err, "airdrop limit reached")
}

func TestRunMintFailure(t *testing.T) {
	require := require.New(t)
	backend := newFakeBackend(t)
	backend.mintErrAt = 2

	summary, out, errOut := run(t, backend, defaultOptions())
	require.Contains(errOut, "6. ❌ - Error minting NFTs: insufficient funds")
	require.Contains(out, "7. ❌ - Candy Machine incorrect configuration: Incorrect number of items available in the Candy Machine.")
	require.Len(summary.Minted, 1)

	step, ok := summary.Step(7)
	require.True(ok)
	require.ErrorIs(step.Err, candymachinesdk.ErrItemsRedeemedMismatch)
	require.Len(multierr.Errors(summary.Err()), 2)
}

func TestRunAddConfigLinesFailure(t *testing.T) {
	backend := newFakeBackend(t)
	backend.addErr = errors.New("config line too long")

	_, out, errOut := run(t, backend, defaultOptions())
	require.Contains(t, errOut, "4. ❌ - Error adding items to the Candy Machine: config line too long")
	require.Contains(t, out, "5. ❌ - Candy Machine incorrect configuration: Incorrect number of items loaded in the Candy Machine.")
}

func TestRunCanceled(t *testing.T) {
	backend := newFakeBackend(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(backend, defaultOptions(), NewReporter(new(bytes.Buffer), new(bytes.Buffer)), nil)
	summary := r.Run(ctx)
	step, ok := summary.Step(1)
	require.True(t, ok)
	require.ErrorIs(t, step.Err, context.Canceled)
	require.NotContains(t, backend.calls, "airdrop")
}

func TestCheckCandyMachine(t *testing.T) {
	backend := newFakeBackend(t)
	backend.loaded = 3
	expected := candymachinesdk.ExpectedCandyMachineState{
		ItemsLoaded: 3,
		Authority:   backend.accounts.Keypair.PublicKey(),
		Collection:  backend.accounts.CollectionMint.PublicKey(),
	}

	tests := []struct {
		name    string
		step    int
		setup   func(*fakeBackend)
		wantErr error
		wantOut string
	}{
		{
			name:    "match",
			step:    5,
			wantOut: "5. ✅ - Candy Machine has the correct configuration.\n",
		},
		{
			name:    "silent",
			step:    0,
			setup:   func(f *fakeBackend) { f.redeemed = 1 },
			wantErr: candymachinesdk.ErrItemsRedeemedMismatch,
		},
		{
			name: "authority",
			step: 7,
			setup: func(f *fakeBackend) {
				other := solana.NewWallet().PublicKey()
				f.authority = &other
			},
			wantErr: candymachinesdk.ErrAuthorityMismatch,
			wantOut: "7. ❌ - Candy Machine incorrect configuration: Incorrect authority in the Candy Machine.\n",
		},
		{
			name:    "fetch error",
			step:    5,
			setup:   func(f *fakeBackend) { f.fetchErr = candymachinesdk.ErrAccountNotFound },
			wantErr: ErrFetchCandyMachine,
			wantOut: "5. ❌ - Error fetching the Candy Machine.\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := *backend
			if tt.setup != nil {
				tt.setup(&f)
			}
			out := new(bytes.Buffer)
			r := NewRunner(&f, Options{}, NewReporter(out, out), nil)
			err := r.CheckCandyMachine(context.Background(), tt.step, expected)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestSummaryTable(t *testing.T) {
	backend := newFakeBackend(t)
	backend.createErr = errors.New("boom")
	summary, _, _ := run(t, backend, defaultOptions())

	out := new(bytes.Buffer)
	require.NoError(t, NewReporter(out, out).Summary(summary))
	require.Contains(t, out.String(), "create candy machine")
	require.Contains(t, out.String(), "failed")
}
