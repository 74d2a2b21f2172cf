package response

// Envelope is the success wire shape. Errors use pkg.HTTPError, which shares
// the success/message fields so clients can branch on one schema.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}
