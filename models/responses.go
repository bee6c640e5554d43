package models

// ErrorResponse is the JSON body returned for every failed management API
// call. ErrCode is machine-readable, Message is meant for humans.
type ErrorResponse struct {
	ErrCode string `json:"errcode"`
	Message string `json:"error"`
}

// Admin holds the credentials submitted to the login endpoint.
type Admin struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
