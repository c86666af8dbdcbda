package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string  `gorm:"uniqueIndex;not null"`
	PasswordHash string
	GoogleID     *string `gorm:"uniqueIndex"`

	Profile *Profile `gorm:"foreignKey:AccountID"`
}
