package domain

// User Model
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`              // Primary key
	FirstName string `json:"first_name"`                        // Optional first name
	LastName  string `json:"last_name"`                         // Optional last name
	Email     string `gorm:"uniqueIndex;size:255" json:"email"` // Unique email
	Password  string `json:"-"`                                 // Bcrypt hash, never serialized
}

// TableName pins the table name to "users"
func (User) TableName() string {
	return "users"
}
