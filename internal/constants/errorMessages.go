package constants

const (
	MsgInvalidJSON   = "malformed JSON"
	MsgUnauthorized  = "Unauthorized"
	MsgMissingToken  = "Unauthorized. Missing bearer token"
	MsgInvalidToken  = "Unauthorized. Invalid token"
	MsgForbidden     = "Forbidden. Missing required role"
	MsgInternalError = "Internal server error"
	MsgEmptyBody     = "request body is empty"
	MsgBodyTooLarge  = "request body exceeds the size limit"
)
