package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteRoundTrip(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db)
	vault := NewVaultService(db)

	account, err := accounts.Register("alice", "secret1")
	require.NoError(t, err)

	// A fresh account has an empty note.
	note, err := vault.GetNote(account.Id)
	require.NoError(t, err)
	assert.Empty(t, note)

	require.NoError(t, vault.SetNote(account.Id, "hello"))
	note, err = vault.GetNote(account.Id)
	require.NoError(t, err)
	assert.Equal(t, "hello", note)

	// Writing the same text twice leaves the observable state unchanged.
	require.NoError(t, vault.SetNote(account.Id, "hello"))
	note, err = vault.GetNote(account.Id)
	require.NoError(t, err)
	assert.Equal(t, "hello", note)
}

func TestNoteOverwrite(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db)
	vault := NewVaultService(db)

	account, err := accounts.Register("alice", "secret1")
	require.NoError(t, err)

	require.NoError(t, vault.SetNote(account.Id, "first"))
	require.NoError(t, vault.SetNote(account.Id, "second"))

	note, err := vault.GetNote(account.Id)
	require.NoError(t, err)
	assert.Equal(t, "second", note)
}

func TestNoteIsolationBetweenAccounts(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db)
	vault := NewVaultService(db)

	alice, err := accounts.Register("alice", "secret1")
	require.NoError(t, err)
	bob, err := accounts.Register("bob", "secret2")
	require.NoError(t, err)

	require.NoError(t, vault.SetNote(alice.Id, "a"))
	require.NoError(t, vault.SetNote(bob.Id, "b"))

	note, err := vault.GetNote(alice.Id)
	require.NoError(t, err)
	assert.Equal(t, "a", note)

	note, err = vault.GetNote(bob.Id)
	require.NoError(t, err)
	assert.Equal(t, "b", note)
}
