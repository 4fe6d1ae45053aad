package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("email service rejected the request")
	ErrUnauthorized        = errors.New("email service refused the deployment credentials")
	ErrNotFound            = errors.New("email service endpoint not found")
	ErrInternalServerError = errors.New("email service internal error")
	ErrBadGateway          = errors.New("email service unreachable")
)
