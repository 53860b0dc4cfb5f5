package service

import (
	"gamevault/database/model"

	"gorm.io/gorm"
)

// VaultService reads and writes the private note of an account. Callers pass
// the id of the authenticated account only; there is no path to another
// account's note.
type VaultService struct {
	db *gorm.DB
}

func NewVaultService(db *gorm.DB) *VaultService {
	return &VaultService{db: db}
}

// GetNote returns the current note of the account, or an empty string if none
// was set.
func (s *VaultService) GetNote(accountId int) (string, error) {
	account := &model.Account{}
	err := s.db.Model(model.Account{}).
		Where("id = ?", accountId).
		First(account).
		Error
	if err != nil {
		return "", err
	}
	return account.Note, nil
}

// SetNote overwrites the note of the account. Overwriting with the same text
// is a no-op in observable state.
func (s *VaultService) SetNote(accountId int, note string) error {
	return s.db.Model(model.Account{}).
		Where("id = ?", accountId).
		Update("note", note).
		Error
}
