package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- Auth ---

// ErrEmailAlreadyExists - email уже используется.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrUserNotFound - пользователь не найден.
var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// --- Profile ---

// ErrNoProfile - у текущего пользователя нет профиля.
// Оригинальный API отвечает на это 400, а не 404.
var ErrNoProfile = New(
	CodeNotFound,
	"profile",
	"There is no profile for this user",
	http.StatusBadRequest,
)

// ErrProfileNotFound - профиль по user id не найден.
// Тот же ответ и для синтаксически невалидного id.
var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusBadRequest,
)

// --- Github ---

// ErrNoGithubProfile - апстрим недоступен или вернул не-200.
// Детали транспортной ошибки клиенту не отдаются.
var ErrNoGithubProfile = New(
	CodeNotFound,
	"github",
	"No Github profile found",
	http.StatusNotFound,
)
