package web

type CreateReq struct {
	CourseId int64  `json:"courseId"`
	Content  string `json:"content"`
}

type ListReq struct {
	CourseId int64 `json:"courseId"`
	Page     int   `json:"page"`
}

type User struct {
	Id       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

type Comment struct {
	Id      int64  `json:"id"`
	User    User   `json:"user"`
	Content string `json:"content"`
	Ctime   int64  `json:"ctime"`
}

type ListResp struct {
	List  []Comment `json:"list"`
	Total int64     `json:"total"`
	Pages int       `json:"pages"`
}
