package corecandymachine

import (
	ag_solanago "github.com/gagliardetto/solana-go"
)

// FindAuthorityPda returns the PDA that signs on behalf of the candy machine
// when it calls into the token programs.
func FindAuthorityPda(candyMachine ag_solanago.PublicKey) (ag_solanago.PublicKey, error) {
	addr, _, err := ag_solanago.FindProgramAddress([][]byte{
		[]byte("candy_machine"),
		candyMachine.Bytes(),
	}, ProgramID)
	return addr, err
}
