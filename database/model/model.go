// Package model defines the database entities of gamevault.
package model

// Account is a registered identity. The note is the account's private vault
// content and is only ever read or written by its owner.
type Account struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	Note         string `json:"-"`
}
