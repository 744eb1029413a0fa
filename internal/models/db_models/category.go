package db_models

// Category groups clues. Names are unique across the table.
type Category struct {
	BaseModel
	Name  string `gorm:"unique;not null"`
	Clues []Clue `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}
