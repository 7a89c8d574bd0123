package projectrequest

import (
	"github.com/pkg/errors"
)

var (
	// ErrValidation заявка не может быть обработана, ошибка клиента
	ErrValidation = errors.New("validation error")
	// ErrTransport недоступно хранилище файлов или почтовый сервис
	ErrTransport = errors.New("transport error")
	// ErrConfiguration не настроен почтовый сервис или хранилище
	ErrConfiguration = errors.New("configuration error")
)

type classifiedError struct {
	kind  error
	cause error
}

func (e classifiedError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e classifiedError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

func classify(kind, cause error) error {
	return classifiedError{kind: kind, cause: cause}
}
