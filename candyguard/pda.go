package candyguard

import (
	ag_solanago "github.com/gagliardetto/solana-go"
)

// FindCandyGuardAddress returns the candy guard PDA derived from base.
func FindCandyGuardAddress(base ag_solanago.PublicKey) (ag_solanago.PublicKey, error) {
	addr, _, err := ag_solanago.FindProgramAddress([][]byte{
		[]byte("candy_guard"),
		base.Bytes(),
	}, ProgramID)
	return addr, err
}
