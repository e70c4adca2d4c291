package db_models

type AdminUser struct {
	BaseModel
	Username     string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:admin"`
}

func (AdminUser) TableName() string { return "admin_users" }
