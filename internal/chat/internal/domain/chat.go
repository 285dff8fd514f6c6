package domain

// Apology 大模型调用失败的时候返回给访客
const Apology = "I apologize, but I'm having trouble processing your request. Please try again or contact us directly."

type Greeting struct {
	Message      string
	QuickActions []string
}

func DefaultGreeting() Greeting {
	return Greeting{
		Message: "Hello! I'm your Mastersolis AI assistant. How can I help you today?",
		QuickActions: []string{
			"Tell me about your services",
			"What positions are open?",
			"How can I contact you?",
			"Tell me about your company",
		},
	}
}

type Answer struct {
	Content string
	// Fallback 为 true 表示 Content 是兜底的道歉文案
	Fallback bool
}
