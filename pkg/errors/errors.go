package errors

import (
	"errors"
	"fmt"
)

var (
	// JWT и токены
	ErrInvalidSigningMethod = errors.New("méthode de signature du token invalide")
	ErrInvalidToken         = errors.New("token invalide")
	ErrTokenExpired         = errors.New("token expiré")
	ErrTokenRevoked         = errors.New("token révoqué")

	// Авторизация
	ErrEmptyAuthHeader    = errors.New("token d'accès requis")
	ErrInvalidAuthHeader  = errors.New("format du header Authorization invalide")
	ErrInvalidCredentials = errors.New("email ou mot de passe incorrect")
	ErrForbidden          = errors.New("accès administrateur requis")

	// Контекст
	ErrUserIDNotFoundInContext = errors.New("identifiant utilisateur absent du contexte")

	// Общие
	ErrNotFound          = errors.New("enregistrement non trouvé")
	ErrConflict          = errors.New("enregistrement déjà existant")
	ErrInsufficientStock = errors.New("stock insuffisant")
)

// HttpError - ошибка уровня HTTP-границы. Code попадает в статус ответа,
// Message уходит клиенту, Err остаётся только в логах.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: context,
	}
}
