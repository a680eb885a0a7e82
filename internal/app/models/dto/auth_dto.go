package dto

// LoginRequest represents login credentials submitted from the sign-in form
type LoginRequest struct {
	Email       string `form:"email" json:"email" binding:"required,email" example:"user@nextmail.com"`
	Password    string `form:"password" json:"password" binding:"required" example:"123456"`
	CallbackURL string `form:"callbackUrl" json:"callbackUrl" example:"/admin/courses"`
}

// SessionResponse describes the signed-in user
type SessionResponse struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Admin    bool   `json:"admin"`
	Redirect string `json:"redirect" example:"/admin"`
}

// LoginPageResponse is what an anonymous visitor sent to the login page receives
type LoginPageResponse struct {
	CallbackURL string `json:"callbackUrl,omitempty" example:"/admin/courses"`
}
