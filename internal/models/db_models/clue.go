package db_models

// Clue is a question/answer pair worth Value points.
type Clue struct {
	BaseModel
	Answer     string `gorm:"not null"`
	Question   string `gorm:"not null"`
	Value      int    `gorm:"not null;index"`
	CategoryID uint   `gorm:"not null;index"`
}
