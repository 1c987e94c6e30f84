package entity

// AdminProfile is the profile whose membership grants admin status.
const AdminProfile = "admin"

// Profile is a named permission profile assignable to users.
type Profile struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nome      string `gorm:"size:150;not null" json:"nome"`
	Descricao string `gorm:"size:200;not null" json:"descricao"`
}

func (Profile) TableName() string { return "PERFIL" }

// UserProfile links a user to a profile (many-to-many join row).
type UserProfile struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"column:id_usuario;not null" json:"id_usuario"`
	ProfileID uint `gorm:"column:id_perfil;not null" json:"id_perfil"`
}

func (UserProfile) TableName() string { return "USUARIO_PERFIL" }
