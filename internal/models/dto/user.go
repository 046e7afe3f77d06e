package dto

// CreateUserRequest is the POST /users body. Password is mandatory on create.
type CreateUserRequest struct {
	Firstname string `json:"firstname"`
	Fullname  string `json:"fullname"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Status    string `json:"status"`
}

// UpdateUserRequest is the PUT /users/{id} body. Pointer fields distinguish
// absent from empty: absent fields keep their stored value, and an absent or
// blank password keeps the stored hash.
type UpdateUserRequest struct {
	Firstname *string `json:"firstname"`
	Fullname  *string `json:"fullname"`
	Lastname  *string `json:"lastname"`
	Username  *string `json:"username"`
	Password  *string `json:"password"`
	Status    *string `json:"status"`
}

// CreateUserResponse echoes the stored fields plus the assigned id. The
// password hash is never part of it.
type CreateUserResponse struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Fullname  string `json:"fullname"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Status    string `json:"status"`
}
