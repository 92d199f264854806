package msg

type Sender struct {
	ID        string
	FirstName string
	LastName  string
}

func (s *Sender) GetID() string {
	if s == nil {
		return ""
	}

	return s.ID
}

type Request struct {
	Platform string
	ID       string
	Sender   *Sender
	Message  string
	Meta     map[string]interface{}
}

type Type uint

const (
	Undefined Type = iota
	Success
	Error
)

type ResponseMessage struct {
	Message string
	Type    Type
	Options *Options
}

type Response struct {
	Messages []ResponseMessage
}

func NewSuccessResponse(message string, opts *Options) *Response {
	return &Response{
		Messages: []ResponseMessage{
			{
				Message: message,
				Type:    Success,
				Options: opts,
			},
		},
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Messages: []ResponseMessage{
			{
				Message: message,
				Type:    Error,
			},
		},
	}
}
