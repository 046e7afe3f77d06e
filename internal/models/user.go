package models

// User is the persisted user record. PasswordHash is excluded from every
// JSON rendering; only the hash product is ever stored, never the plaintext.
type User struct {
	ID           int64  `json:"id"`
	Firstname    string `json:"firstname"`
	Fullname     string `json:"fullname"`
	Lastname     string `json:"lastname"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Status       string `json:"status"`
}
