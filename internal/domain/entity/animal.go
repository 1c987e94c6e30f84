package entity

import "time"

// Animal status values. They are wire-visible (filter routes and stored
// rows), so the original Portuguese strings are kept.
const (
	StatusAvailable = "disponível"
	StatusAdopted   = "adotado"
)

// Animal is a rescued animal tracked by the shelter. Faca is the
// original schema's name for the breed column, kept for client
// compatibility.
type Animal struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Nome       string    `gorm:"size:150;not null" json:"nome"`
	Especie    string    `gorm:"size:150;not null" json:"especie"`
	Faca       string    `gorm:"size:150;not null" json:"faca"`
	Sexo       string    `gorm:"size:9;not null" json:"sexo"`
	Nascimento time.Time `gorm:"not null" json:"nascimento"`
	Porte      string    `gorm:"size:10;not null" json:"porte"`
	Saude      string    `gorm:"size:150;not null" json:"saude"`
	Status     string    `gorm:"size:13;not null;default:disponível" json:"status"`
	Foto       string    `gorm:"type:text" json:"foto,omitempty"`
}

func (Animal) TableName() string { return "ANIMAIS" }
