package util

// Response is the envelope every handler returns.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}

func SuccessMessage(msg string) Response {
	return Response{Success: true, Message: msg}
}

func FailedResponse(err error) Response {
	return Response{Success: false, Message: err.Error()}
}
