package entity

import "time"

// AdoptionRecord tracks one animal's journey from rescue to adoption.
// DataAdocao stays null until an adoption is registered; once set the
// record is concluded and must not be adopted again.
type AdoptionRecord struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	DataResgate time.Time  `gorm:"column:data_resgate;not null" json:"data_resgate"`
	DataAdocao  *time.Time `gorm:"column:data_adocao" json:"data_adocao"`
	Observacoes string     `gorm:"size:200" json:"observacoes,omitempty"`
	UserID      uint       `gorm:"column:id_usuario;not null" json:"id_usuario"`
	AnimalID    uint       `gorm:"column:id_animais;not null" json:"id_animais"`

	User   *User   `gorm:"foreignKey:UserID" json:"usuario,omitempty"`
	Animal *Animal `gorm:"foreignKey:AnimalID" json:"animal,omitempty"`
}

func (AdoptionRecord) TableName() string { return "HISTORICO_ADOCOES" }

// Concluded reports whether the adoption has already happened.
func (r *AdoptionRecord) Concluded() bool {
	return r.DataAdocao != nil
}
