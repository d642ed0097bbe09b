package candymachinesdk

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// getAccountData reads the raw data of an account and checks its owner.
func (c *Client) getAccountData(ctx context.Context, account, owner solana.PublicKey) ([]byte, error) {
	res, err := c.rpc.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{
		Commitment: c.commitment,
		Encoding:   solana.EncodingBase64,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, account)
		}
		return nil, fmt.Errorf("FAD: can't get account info: %w", err)
	}
	if res == nil || res.Value == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, account)
	}
	if !res.Value.Owner.Equals(owner) {
		return nil, fmt.Errorf("FAD: account %s is owned by %s, want %s", account, res.Value.Owner, owner)
	}
	return res.Value.Data.GetBinary(), nil
}
