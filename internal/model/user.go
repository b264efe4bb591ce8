package model

// UserRole 由认证服务签发的 JWT 携带，本服务只做校验
type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)
