package specification

import "gorm.io/gorm"

// ByEmail filters accounts by email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByPhone filters users by normalized phone number
type ByPhone struct {
	Phone string
}

func (s ByPhone) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("phone = ?", s.Phone)
}

// ByVerificationToken filters users by pending verification token
type ByVerificationToken struct {
	Token string
}

func (s ByVerificationToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("verification_token = ?", s.Token)
}
