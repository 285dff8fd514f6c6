package web

type AskReq struct {
	Message string `json:"message"`
}

type Answer struct {
	Content  string `json:"content"`
	Fallback bool   `json:"fallback"`
}

type Greeting struct {
	Message      string   `json:"message"`
	QuickActions []string `json:"quickActions"`
}
