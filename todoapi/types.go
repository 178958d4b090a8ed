package todoapi

// User is the registration payload for POST /users.
type User struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	VerifyPassword string `json:"verifyPassword" validate:"required,eqfield=Password"`
}

// CreateUserResponse is the backend's view of a created user.
type CreateUserResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Token is the opaque credential returned by POST /login. The client never
// inspects or persists it; it lives only for the chained computation that
// produced it.
type Token struct {
	String string `json:"string"`
}

// Todo is the todo resource. ID is assigned by the backend and absent on
// creation.
type Todo struct {
	ID    *int   `json:"id,omitempty"`
	Title string `json:"title" validate:"required"`
}
