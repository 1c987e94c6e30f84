package entity

// Contact is a user's phone/email contact card. Each contact belongs to
// exactly one user and owns at most one address.
type Contact struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Fone   string `gorm:"size:11;not null" json:"fone"`
	Email  string `gorm:"size:150;not null" json:"email"`
	UserID uint   `gorm:"column:id_usuario;not null" json:"id_usuario"`

	Address *Address `gorm:"foreignKey:ContactID" json:"endereco,omitempty"`
}

func (Contact) TableName() string { return "CONTATO" }
