package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"omitempty,max=100"`
	LastName  string `json:"lastName" binding:"omitempty,max=100"`
	// Admins are provisioned out of band.
	Role string `json:"role" binding:"omitempty,oneof=patient doctor"`
}
