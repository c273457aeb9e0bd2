package request

type SendPushRequest struct {
	Tokens []string       `json:"tokens" binding:"required,min=1"`
	Title  string         `json:"title" binding:"required,max=200"`
	Body   string         `json:"body" binding:"required,max=2000"`
	Data   map[string]any `json:"data"`
}

type SendEmailRequest struct {
	To       string         `json:"to" binding:"required,email"`
	Subject  string         `json:"subject" binding:"required,max=500"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data"`
}

type SendSMSRequest struct {
	To      string `json:"to" binding:"required,e164"`
	Message string `json:"message" binding:"required,max=1600"`
}
