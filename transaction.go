package candymachinesdk

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	cb "github.com/gagliardetto/solana-go/programs/compute-budget"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// SendAndConfirm builds a transaction paid by the identity, signs it with
// the identity and every extra signer, sends it and waits until it reaches
// the client commitment.
func (c *Client) SendAndConfirm(ctx context.Context, instructions []solana.Instruction, signers ...solana.PrivateKey) (solana.Signature, error) {
	if c.computeUnitPrice > 0 {
		priceInstr := cb.NewSetComputeUnitPriceInstruction(c.computeUnitPrice).Build()
		instructions = append([]solana.Instruction{priceInstr}, instructions...)
	}

	recent, err := c.rpc.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't get latest blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		instructions,
		recent.Value.Blockhash,
		solana.TransactionPayer(c.identity.PublicKey()),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't create transaction: %w", err)
	}

	keys := append([]solana.PrivateKey{c.identity}, signers...)
	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for i := range keys {
			if keys[i].PublicKey().Equals(key) {
				return &keys[i]
			}
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't sign transaction: %w", err)
	}

	if ce := c.log.Check(zap.DebugLevel, "sending transaction"); ce != nil {
		ce.Write(zap.String("tree", tx.String()))
	}

	sig, err := c.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       c.skipPreflight,
		PreflightCommitment: c.commitment,
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("can't send transaction: %w", err)
	}
	c.log.Debug("transaction sent",
		zap.Stringer("signature", sig),
		zap.Int("instructions", len(instructions)),
	)

	if err := c.waitForConfirmation(ctx, sig); err != nil {
		return sig, err
	}
	return sig, nil
}

func (c *Client) waitForConfirmation(ctx context.Context, sig solana.Signature) error {
	ctx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		out, err := c.rpc.GetSignatureStatuses(ctx, false, sig)
		switch {
		case err != nil:
			c.log.Debug("can't get signature status", zap.Stringer("signature", sig), zap.Error(err))
		case out != nil && len(out.Value) > 0 && out.Value[0] != nil:
			status := out.Value[0]
			if status.Err != nil {
				return fmt.Errorf("%w: %s: %v", ErrTransactionFailed, sig, status.Err)
			}
			if commitmentReached(status.ConfirmationStatus, c.commitment) {
				c.log.Debug("transaction confirmed",
					zap.Stringer("signature", sig),
					zap.String("status", string(status.ConfirmationStatus)),
				)
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("can't confirm transaction %s: %w", sig, ctx.Err())
		case <-ticker.C:
		}
	}
}

var commitmentRank = map[string]int{
	string(rpc.CommitmentProcessed): 1,
	string(rpc.CommitmentConfirmed): 2,
	string(rpc.CommitmentFinalized): 3,
}

func commitmentReached(status rpc.ConfirmationStatusType, want rpc.CommitmentType) bool {
	got, ok := commitmentRank[string(status)]
	if !ok {
		return false
	}
	return got >= commitmentRank[string(want)]
}

// computeUnitLimit returns the instruction raising the compute limit of a transaction.
func computeUnitLimit(units uint32) solana.Instruction {
	return cb.NewSetComputeUnitLimitInstruction(units).Build()
}
