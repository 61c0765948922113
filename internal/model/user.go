package model

// User is a back-office login. Passwords are stored as bcrypt hashes.
type User struct {
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message string    `json:"message"`
	User    LoginUser `json:"user"`
}

type LoginUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
