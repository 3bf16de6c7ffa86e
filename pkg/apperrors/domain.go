package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// =========================================================================
// Фабричные ФУНКЦИИ (Используются для оборачивания ошибок, напр. из репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (Для частых, статичных ошибок)
// =========================================================================

// ErrInvalidCredentials - неверный email или пароль.
// Текст одинаковый для "нет такого пользователя" и "неверный пароль",
// чтобы не раскрывать, какое из полей не совпало.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - невалидный или протухший access token.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists - email уже занят.
// Контракт API отдает 400, а не 409 (наследие оригинального фронтенда).
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already exists",
	http.StatusBadRequest,
)

// ErrInvalidUserRole - роль не предусмотрена для операции.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role",
	http.StatusBadRequest,
)

// ErrJobNotFound - вакансия не найдена.
var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

// ErrJobAccessDenied - вакансия отсутствует ИЛИ принадлежит другому рекрутеру.
// Единый ответ для обоих случаев: владение чужой вакансией не должно
// подтверждаться через различие "not found" / "forbidden".
var ErrJobAccessDenied = New(
	CodeForbidden,
	"job",
	"Job not found or access denied",
	http.StatusForbidden,
)

// ErrInvalidJobStatus - статус вне множества active/closed/expired.
var ErrInvalidJobStatus = New(
	CodeInvalidStatus,
	"job",
	"Invalid job status",
	http.StatusBadRequest,
)

// ErrJobNotAccepting - вакансия закрыта или истекла, отклики не принимаются.
var ErrJobNotAccepting = New(
	CodeInvalidOperation,
	"application",
	"This job is not accepting applications",
	http.StatusBadRequest,
)

// ErrDuplicateApplication - повторный отклик с тем же телефоном на ту же вакансию.
var ErrDuplicateApplication = New(
	CodeConflict,
	"application",
	"Already applied with this phone",
	http.StatusConflict,
)
