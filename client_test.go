package candymachinesdk

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	cb "github.com/gagliardetto/solana-go/programs/compute-budget"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, f *fakeRPC, opts ...Option) *Client {
	t.Helper()
	identity, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	opts = append([]Option{WithConfirmation(time.Second, time.Millisecond)}, opts...)
	return NewClient(f, identity, opts...)
}

func transferTo(from solana.PublicKey) (solana.Instruction, solana.PrivateKey) {
	account := solana.NewWallet().PrivateKey
	instr := system.NewCreateAccountInstruction(1, 0, solana.SystemProgramID, from, account.PublicKey()).Build()
	return instr, account
}

func TestSendAndConfirm(t *testing.T) {
	f := newFakeRPC()
	c := newTestClient(t, f)
	instr, account := transferTo(c.Identity())

	sig, err := c.SendAndConfirm(context.Background(), []solana.Instruction{instr}, account)
	require.NoError(t, err)

	tx := f.lastSent()
	require.NotNil(t, tx)
	assert.Equal(t, tx.Signatures[0], sig)
	assert.Len(t, tx.Signatures, 2)
	assert.Equal(t, c.Identity(), tx.Message.AccountKeys[0])
	assert.Equal(t, solana.Hash{1, 2, 3}, tx.Message.RecentBlockhash)
	require.NoError(t, tx.VerifySignatures())
}

func TestSendAndConfirmMissingSigner(t *testing.T) {
	f := newFakeRPC()
	c := newTestClient(t, f)
	instr, _ := transferTo(c.Identity())

	_, err := c.SendAndConfirm(context.Background(), []solana.Instruction{instr})
	require.Error(t, err)
	assert.Empty(t, f.sent)
}

func TestSendAndConfirmComputeUnitPrice(t *testing.T) {
	f := newFakeRPC()
	c := newTestClient(t, f, WithComputeUnitPrice(5000))
	instr, account := transferTo(c.Identity())

	_, err := c.SendAndConfirm(context.Background(), []solana.Instruction{instr}, account)
	require.NoError(t, err)
	assert.Equal(t, []solana.PublicKey{cb.ProgramID, solana.SystemProgramID}, programIDs(f.lastSent()))
}

func TestSendAndConfirmFailed(t *testing.T) {
	f := newFakeRPC()
	f.status = &rpc.SignatureStatusesResult{
		ConfirmationStatus: rpc.ConfirmationStatusProcessed,
		Err:                map[string]interface{}{"InstructionError": []interface{}{1, "Custom"}},
	}
	c := newTestClient(t, f)
	instr, account := transferTo(c.Identity())

	_, err := c.SendAndConfirm(context.Background(), []solana.Instruction{instr}, account)
	assert.True(t, errors.Is(err, ErrTransactionFailed))
}

func TestSendAndConfirmTimeout(t *testing.T) {
	f := newFakeRPC()
	f.status = nil
	c := newTestClient(t, f, WithConfirmation(20*time.Millisecond, time.Millisecond))
	instr, account := transferTo(c.Identity())

	_, err := c.SendAndConfirm(context.Background(), []solana.Instruction{instr}, account)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestSendAndConfirmSendError(t *testing.T) {
	f := newFakeRPC()
	f.sendErr = errors.New("node is behind")
	c := newTestClient(t, f)
	instr, account := transferTo(c.Identity())

	_, err := c.SendAndConfirm(context.Background(), []solana.Instruction{instr}, account)
	assert.ErrorContains(t, err, "node is behind")
}

func TestCommitmentReached(t *testing.T) {
	tests := []struct {
		status rpc.ConfirmationStatusType
		want   rpc.CommitmentType
		ok     bool
	}{
		{rpc.ConfirmationStatusProcessed, rpc.CommitmentProcessed, true},
		{rpc.ConfirmationStatusProcessed, rpc.CommitmentConfirmed, false},
		{rpc.ConfirmationStatusConfirmed, rpc.CommitmentProcessed, true},
		{rpc.ConfirmationStatusFinalized, rpc.CommitmentFinalized, true},
		{rpc.ConfirmationStatusConfirmed, rpc.CommitmentFinalized, false},
		{"", rpc.CommitmentProcessed, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, commitmentReached(tt.status, tt.want), "%s >= %s", tt.status, tt.want)
	}
}

func TestAirdrop(t *testing.T) {
	f := newFakeRPC()
	c := newTestClient(t, f)

	sig, err := c.Airdrop(context.Background(), 5*solana.LAMPORTS_PER_SOL)
	require.NoError(t, err)
	assert.Equal(t, solana.Signature{9}, sig)
	assert.Equal(t, []uint64{5 * solana.LAMPORTS_PER_SOL}, f.airdrops)

	_, err = c.Airdrop(context.Background(), 0)
	assert.Error(t, err)
}
