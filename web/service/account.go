// Package service contains the business logic of gamevault: account
// credentials, the per-account vault note, and the external name lookups.
package service

import (
	"errors"

	"gamevault/database"
	"gamevault/database/model"
	"gamevault/logger"
	"gamevault/util/common"
	"gamevault/util/crypto"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateUsername is returned when registering a username that is
	// already taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so callers cannot tell registered names apart from
	// unregistered ones.
	ErrInvalidCredentials = errors.New("wrong username or password")
)

const (
	minUsernameLen = 3
	maxUsernameLen = 32
	minPasswordLen = 6
)

// AccountService manages account registration and credential verification.
type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// Register validates the credentials, hashes the password and creates the
// account. The uniqueness of the username is enforced by the database index,
// so concurrent registrations of the same name cannot both succeed.
func (s *AccountService) Register(username string, password string) (*model.Account, error) {
	if err := ValidateCredentials(username, password); err != nil {
		return nil, err
	}

	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Username:     username,
		PasswordHash: hashedPassword,
	}
	err = s.db.Create(account).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateUsername
	} else if err != nil {
		return nil, err
	}

	return account, nil
}

// Check verifies a username/password pair. An unknown username and a wrong
// password are indistinguishable to the caller.
func (s *AccountService) Check(username string, password string) (*model.Account, error) {
	account := &model.Account{}

	err := s.db.Model(model.Account{}).
		Where("username = ?", username).
		First(account).
		Error
	if database.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		logger.Warning("check account err:", err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(account.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// ValidateCredentials checks the registration constraints on a
// username/password pair. Handlers call it before reaching the store so the
// caller gets a specific, user-facing message.
func ValidateCredentials(username string, password string) error {
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return common.NewErrorf("username must be between %d and %d characters", minUsernameLen, maxUsernameLen)
	}
	if len(password) < minPasswordLen {
		return common.NewErrorf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}
