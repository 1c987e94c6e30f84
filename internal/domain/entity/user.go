// Package entity defines the persisted domain entities. Table, column
// and JSON names keep the wire format of the original PetMatch schema.
package entity

import "time"

// User represents a registered user. Email and CPF are unique across
// all users; Senha holds the bcrypt digest and is never serialized.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nome         string    `gorm:"size:150;not null" json:"nome"`
	Email        string    `gorm:"size:150;uniqueIndex;not null" json:"email"`
	CPF          string    `gorm:"column:CPF;size:14;uniqueIndex;not null" json:"CPF"`
	Senha        string    `gorm:"size:255;not null" json:"-"`
	DataCadastro time.Time `gorm:"column:data_cadastro;not null;autoCreateTime" json:"data_cadastro"`

	Contact *Contact `gorm:"foreignKey:UserID" json:"contato,omitempty"`
}

func (User) TableName() string { return "USUARIO" }

// PublicUser is the subset of User fields returned by the auth endpoints.
type PublicUser struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	CPF   string `json:"CPF"`
}

// Public strips the credential fields for response payloads.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Nome: u.Nome, Email: u.Email, CPF: u.CPF}
}
