package model

// Claims is the identity payload carried inside a bearer token.
type Claims struct {
	Email string
	Name  string
}
