package model

// User is a named holder capable of being assigned items. The name is the
// primary key; there are no accounts or credentials behind it.
type User struct {
	Name string `json:"name"`
}
