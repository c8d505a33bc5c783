package model

type UserType string

const (
	UserTypeEmployee UserType = "Employee"
	UserTypeAdmin    UserType = "Admin"
)

// User is the session identity the workflows act on behalf of. It is captured
// once at component construction; no component re-reads session state
// mid-operation.
type User struct {
	Type  UserType `json:"type"`
	Email string   `json:"email"`
}
