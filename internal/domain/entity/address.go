package entity

// Address is the postal address of a contact.
type Address struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Logradouro  string `gorm:"size:150;not null" json:"logradouro"`
	Numero      string `gorm:"size:5;not null" json:"numero"`
	Complemento string `gorm:"size:50" json:"complemento,omitempty"`
	Bairro      string `gorm:"size:150;not null" json:"bairro"`
	CEP         string `gorm:"column:CEP;size:10;not null" json:"CEP"`
	Municipio   string `gorm:"size:150;not null" json:"municipio"`
	UF          string `gorm:"column:uf;size:2;not null" json:"uf"`
	ContactID   uint   `gorm:"column:id_contato;not null" json:"id_contato"`
}

func (Address) TableName() string { return "ENDERECO" }
