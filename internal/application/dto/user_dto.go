package dto

// UserPayload entrada de escritura de User. Password llega en texto plano; después de
// sanitize.UserOnCreate/UserOnUpdate contiene el hash.
type UserPayload struct {
	Email       *string `json:"email" validate:"required,email,max=255"`
	Password    *string `json:"password" validate:"required,notblank"`
	FirstName   *string `json:"first_name" validate:"omitempty,max=150"`
	LastName    *string `json:"last_name" validate:"omitempty,max=150"`
	IsStaff     *bool   `json:"is_staff"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID            int64   `json:"id"`
	Email         string  `json:"email"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	IsStaff       bool    `json:"is_staff"`
	IsActive      bool    `json:"is_active"`
	IsSuperuser   bool    `json:"is_superuser"`
	LastLoginDate *string `json:"last_login_date"`
	Joined        string  `json:"joined"`
}

// LoginRequest entrada para obtener un token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SuperuserRequest datos para crear un superusuario fuera de la API (gelatoctl createsuperuser).
type SuperuserRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}
