package model

const HeaderContentType = "Content-Type"

type ContextKey string

const (
	KeyContextLogger ContextKey = "logger"
	KeyContextUserID ContextKey = "user_id"
)

const KeyLoggerError = "error"
