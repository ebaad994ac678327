package repository

import "errors"

// Sentinel errors keep status mapping consistent across handlers;
// match with errors.Is.
var (
	ErrNotFound     = errors.New("запись не найдена")
	ErrForbidden    = errors.New("доступ запрещен")
	ErrUnauthorized = errors.New("требуется авторизация")
	ErrEmailTaken   = errors.New("email уже занят")
)
