package candymachinesdk

import (
	"context"
	"errors"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// fakeRPC records sent transactions and answers every signature status with
// status, or with nothing while status is nil.
type fakeRPC struct {
	mu sync.Mutex

	sent     []*solana.Transaction
	airdrops []uint64
	accounts map[solana.PublicKey]*rpc.Account
	status   *rpc.SignatureStatusesResult
	rent     uint64
	sendErr  error
}

func newFakeRPC() *fakeRPC {
	return &fakeRPC{
		accounts: map[solana.PublicKey]*rpc.Account{},
		status:   &rpc.SignatureStatusesResult{ConfirmationStatus: rpc.ConfirmationStatusProcessed},
		rent:     1_000_000,
	}
}

func (f *fakeRPC) GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
	return &rpc.GetLatestBlockhashResult{
		Value: &rpc.LatestBlockhashResult{Blockhash: solana.Hash{1, 2, 3}},
	}, nil
}

func (f *fakeRPC) SendTransactionWithOpts(ctx context.Context, tx *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return solana.Signature{}, f.sendErr
	}
	f.sent = append(f.sent, tx)
	return tx.Signatures[0], nil
}

func (f *fakeRPC) GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, sigs ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &rpc.GetSignatureStatusesResult{Value: []*rpc.SignatureStatusesResult{f.status}}, nil
}

func (f *fakeRPC) GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	acc, ok := f.accounts[account]
	if !ok {
		return nil, rpc.ErrNotFound
	}
	return &rpc.GetAccountInfoResult{Value: acc}, nil
}

func (f *fakeRPC) GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64, commitment rpc.CommitmentType) (uint64, error) {
	return f.rent, nil
}

func (f *fakeRPC) RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64, commitment rpc.CommitmentType) (solana.Signature, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if lamports == 0 {
		return solana.Signature{}, errors.New("invalid amount")
	}
	f.airdrops = append(f.airdrops, lamports)
	return solana.Signature{9}, nil
}

func (f *fakeRPC) setAccount(address, owner solana.PublicKey, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[address] = &rpc.Account{
		Owner: owner,
		Data:  rpc.DataBytesOrJSONFromBytes(data),
	}
}

func (f *fakeRPC) lastSent() *solana.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return nil
	}
	return f.sent[len(f.sent)-1]
}

// programIDs lists the program invoked by every instruction of tx.
func programIDs(tx *solana.Transaction) []solana.PublicKey {
	out := make([]solana.PublicKey, len(tx.Message.Instructions))
	for i, ix := range tx.Message.Instructions {
		out[i] = tx.Message.AccountKeys[ix.ProgramIDIndex]
	}
	return out
}

// instructionAccounts resolves the accounts of the i-th instruction of tx.
func instructionAccounts(tx *solana.Transaction, i int) []solana.PublicKey {
	ix := tx.Message.Instructions[i]
	out := make([]solana.PublicKey, len(ix.Accounts))
	for j, idx := range ix.Accounts {
		out[j] = tx.Message.AccountKeys[idx]
	}
	return out
}
