package web

type TempKeyReq struct {
	// 允许上传的对象路径，例如 images/2024/05/a.png
	Key string `json:"key"`
	// 文件的 content-type，临时密钥只允许上传这一种类型
	Type string `json:"type"`
}

type TempKey struct {
	SecretId     string `json:"secretId"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken"`
	StartTime    int64  `json:"startTime"`
	ExpiredTime  int64  `json:"expiredTime"`
	Bucket       string `json:"bucket"`
	Region       string `json:"region"`
}
