package db_models

// Admin is an identity allowed past the admin gate.
type Admin struct {
	BaseModel
	Username     string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
}
