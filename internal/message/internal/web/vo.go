package web

type ListReq struct {
	Page int `json:"page"`
}

type Message struct {
	Id      int64  `json:"id"`
	Content string `json:"content"`
	// Broadcast 是不是全员公告
	Broadcast bool  `json:"broadcast"`
	HasRead   bool  `json:"hasRead"`
	Ctime     int64 `json:"ctime"`
}

type ListResp struct {
	List  []Message `json:"list"`
	Total int64     `json:"total"`
	Pages int       `json:"pages"`
}

type UnreadCountResp struct {
	Count int64 `json:"count"`
}
