package constants

type RoleEnum string

const (
	RoleAdmin   RoleEnum = "admin"
	RoleAnalyst RoleEnum = "analyst"
)
