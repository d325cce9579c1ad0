package users

import "errors"

var (
	// ErrInvalidUsername возвращается, когда логин не проходит правило
	// регистрации (минимум 6 латинских букв или цифр)
	ErrInvalidUsername = errors.New("users: invalid username")

	// ErrPasswordMismatch возвращается, когда пароль и подтверждение не совпадают
	ErrPasswordMismatch = errors.New("users: passwords do not match")

	// ErrUsernameTaken возвращается, когда логин уже занят
	ErrUsernameTaken = errors.New("users: username already taken")

	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("users: invalid credentials")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("users: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users: internal error")
)
