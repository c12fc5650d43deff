package domain

type CtxKey string

const (
	KeyAccountID CtxKey = "AccountID"
	KeyRole      CtxKey = "Role"
)
