package response

// ErrBody 错误响应体，固定为 {"error": "<message>"}
type ErrBody struct {
	Error string `json:"error"`
}

func Err(msg string) ErrBody { return ErrBody{Error: msg} }
