package candymachinesdk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

var (
	// ErrTransactionFailed is returned when a transaction landed with an error.
	ErrTransactionFailed = errors.New("transaction failed")
	// ErrAccountNotFound is returned when an account does not exist at the
	// configured commitment.
	ErrAccountNotFound = errors.New("account not found")
)

// RPCClient is the subset of *rpc.Client used by the SDK.
type RPCClient interface {
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	SendTransactionWithOpts(ctx context.Context, transaction *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
	GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
	GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64, commitment rpc.CommitmentType) (uint64, error)
	RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64, commitment rpc.CommitmentType) (solana.Signature, error)
}

var _ RPCClient = (*rpc.Client)(nil)

// Client sends transactions on behalf of an identity, which pays fees and
// signs every transaction.
type Client struct {
	rpc      RPCClient
	identity solana.PrivateKey
	log      *zap.Logger

	commitment       rpc.CommitmentType
	skipPreflight    bool
	confirmTimeout   time.Duration
	pollInterval     time.Duration
	computeUnitPrice uint64
}

type Option func(*Client)

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithCommitment sets the commitment used for confirmations and reads.
func WithCommitment(commitment rpc.CommitmentType) Option {
	return func(c *Client) {
		c.commitment = commitment
	}
}

func WithSkipPreflight(skip bool) Option {
	return func(c *Client) {
		c.skipPreflight = skip
	}
}

// WithConfirmation sets how long to wait for a signature and how often to poll its status.
func WithConfirmation(timeout, pollInterval time.Duration) Option {
	return func(c *Client) {
		c.confirmTimeout = timeout
		c.pollInterval = pollInterval
	}
}

// WithComputeUnitPrice prepends a priority fee instruction (in micro-lamports
// per compute unit) to every transaction. Zero disables it.
func WithComputeUnitPrice(microLamports uint64) Option {
	return func(c *Client) {
		c.computeUnitPrice = microLamports
	}
}

// NewClient returns a client that skips preflight and confirms at the
// processed commitment unless told otherwise.
func NewClient(rpcClient RPCClient, identity solana.PrivateKey, opts ...Option) *Client {
	c := &Client{
		rpc:            rpcClient,
		identity:       identity,
		log:            zap.NewNop(),
		commitment:     rpc.CommitmentProcessed,
		skipPreflight:  true,
		confirmTimeout: 60 * time.Second,
		pollInterval:   500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Identity() solana.PublicKey {
	return c.identity.PublicKey()
}

// Airdrop requests lamports for the identity and waits for the airdrop to be confirmed.
func (c *Client) Airdrop(ctx context.Context, lamports uint64) (solana.Signature, error) {
	sig, err := c.rpc.RequestAirdrop(ctx, c.identity.PublicKey(), lamports, c.commitment)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't request airdrop: %w", err)
	}
	c.log.Debug("airdrop requested",
		zap.Stringer("account", c.identity.PublicKey()),
		zap.Uint64("lamports", lamports),
		zap.Stringer("signature", sig),
	)
	if err := c.waitForConfirmation(ctx, sig); err != nil {
		return sig, err
	}
	return sig, nil
}

func (c *Client) rentExemption(ctx context.Context, space uint64) (uint64, error) {
	lamports, err := c.rpc.GetMinimumBalanceForRentExemption(ctx, space, c.commitment)
	if err != nil {
		return 0, fmt.Errorf("can't get rent exemption for %d bytes: %w", space, err)
	}
	return lamports, nil
}
