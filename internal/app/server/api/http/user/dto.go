package user

import (
	"net/http"

	"gomarket/internal/domain/user"
)

type RegisterRequest struct {
	Email    string `json:"email" format:"email"`
	Password string `json:"password" minLength:"6"`
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type registerInput struct {
	Body RegisterRequest
}

type LoginRequest struct {
	Email    string `json:"email" format:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Body LoginRequest
}

// AuthResponse — ответ логина и регистрации. Refresh-токен в тело
// не попадает: он ездит только в HTTP-only cookie.
type AuthResponse struct {
	User        user.User `json:"user"`
	AccessToken string    `json:"accessToken"`
}

type authOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      AuthResponse
}

type refreshInput struct {
	RefreshToken http.Cookie `cookie:"refresh_token"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type refreshOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      RefreshResponse
}

type logoutInput struct {
	RefreshToken http.Cookie `cookie:"refresh_token"`
}

type logoutOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
}

type profileOutput struct {
	Body user.User
}

type patchProfileInput struct {
	Body user.ProfilePatch
}

type ContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type listContactsOutput struct {
	Body []user.Contact
}

type createContactInput struct {
	Body ContactRequest
}

type updateContactInput struct {
	ID   string `path:"id"`
	Body ContactRequest
}

type contactOutput struct {
	Body user.Contact
}
