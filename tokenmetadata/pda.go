package tokenmetadata

import (
	ag_solanago "github.com/gagliardetto/solana-go"
)

const (
	seedPrefix             = "metadata"
	seedEdition            = "edition"
	seedTokenRecord        = "token_record"
	seedCollectionDelegate = "collection_delegate"
)

// FindMetadataAddress returns the metadata PDA of mint.
func FindMetadataAddress(mint ag_solanago.PublicKey) (ag_solanago.PublicKey, error) {
	addr, _, err := ag_solanago.FindProgramAddress([][]byte{
		[]byte(seedPrefix),
		ProgramID.Bytes(),
		mint.Bytes(),
	}, ProgramID)
	return addr, err
}

// FindMasterEditionAddress returns the (master) edition PDA of mint.
func FindMasterEditionAddress(mint ag_solanago.PublicKey) (ag_solanago.PublicKey, error) {
	addr, _, err := ag_solanago.FindProgramAddress([][]byte{
		[]byte(seedPrefix),
		ProgramID.Bytes(),
		mint.Bytes(),
		[]byte(seedEdition),
	}, ProgramID)
	return addr, err
}

// FindTokenRecordAddress returns the token record PDA of a programmable token account.
func FindTokenRecordAddress(mint, token ag_solanago.PublicKey) (ag_solanago.PublicKey, error) {
	addr, _, err := ag_solanago.FindProgramAddress([][]byte{
		[]byte(seedPrefix),
		ProgramID.Bytes(),
		mint.Bytes(),
		[]byte(seedTokenRecord),
		token.Bytes(),
	}, ProgramID)
	return addr, err
}

// FindCollectionDelegateRecordAddress returns the metadata delegate record PDA
// for the collection role.
func FindCollectionDelegateRecordAddress(mint, updateAuthority, delegate ag_solanago.PublicKey) (ag_solanago.PublicKey, error) {
	addr, _, err := ag_solanago.FindProgramAddress([][]byte{
		[]byte(seedPrefix),
		ProgramID.Bytes(),
		mint.Bytes(),
		[]byte(seedCollectionDelegate),
		updateAuthority.Bytes(),
		delegate.Bytes(),
	}, ProgramID)
	return addr, err
}
