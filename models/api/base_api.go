package apimodels

type Response struct {
	Success bool   `json:"success"` // результат обработки
	Message string `json:"message"` // сообщение для клиента
}

func NewError(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}

func NewResponse(message string) Response {
	return Response{
		Success: true,
		Message: message,
	}
}
