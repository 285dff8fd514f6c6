package web

type Config struct {
	Id             int64   `json:"id"`
	Biz            string  `json:"biz"`
	MaxInput       int     `json:"maxInput"`
	Model          string  `json:"model"`
	Price          int64   `json:"price"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"topP"`
	MaxTokens      int64   `json:"maxTokens"`
	JSONMode       bool    `json:"jsonMode"`
	SystemPrompt   string  `json:"systemPrompt"`
	PromptTemplate string  `json:"promptTemplate"`
	Utime          int64   `json:"utime"`
}

type ConfigRequest struct {
	Config Config `json:"config"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type RecordListReq struct {
	Biz    string `json:"biz"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type Record struct {
	Id     int64    `json:"id"`
	Tid    string   `json:"tid"`
	Biz    string   `json:"biz"`
	Tokens int64    `json:"tokens"`
	Amount int64    `json:"amount"`
	Input  []string `json:"input"`
	Status uint8    `json:"status"`
	Answer string   `json:"answer"`
	Ctime  int64    `json:"ctime"`
}

type RecordList struct {
	Total   int64    `json:"total"`
	Records []Record `json:"records"`
}
