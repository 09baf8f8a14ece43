package domain

// Conventional prefixes of the state accessor names.
const (
	GetterPrefix = "get"
	SetterPrefix = "set"
)
