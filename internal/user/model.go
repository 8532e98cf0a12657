package user

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PhotoURL     string `json:"photoURL,omitempty"`
	PasswordHash string `json:"-"` // Never expose password hash in JSON
	FromGoogle   bool   `json:"fromGoogle,omitempty"`
}
