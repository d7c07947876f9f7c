package web

type ListReq struct {
	Keyword string `json:"keyword"`
	Degree  uint8  `json:"degree"`
	Sort    string `json:"sort"`
	Page    int    `json:"page"`
}

type Course struct {
	Id           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Degree       uint8  `json:"degree"`
	LearnMinutes int    `json:"learnMinutes"`
	Students     int    `json:"students"`
	FavCnt       int    `json:"favCnt"`
	ClickCnt     int    `json:"clickCnt"`
	OrgId        int64  `json:"orgId"`
}

type ListResp struct {
	List  []Course `json:"list"`
	Total int64    `json:"total"`
	Pages int      `json:"pages"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type Tag struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type OrgSummary struct {
	Id       int64  `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Students int    `json:"students"`
	Courses  int    `json:"courses"`
}

type TeacherSummary struct {
	Id        int64  `json:"id"`
	Name      string `json:"name"`
	WorkYears int    `json:"workYears"`
	Company   string `json:"company"`
}

type DetailResp struct {
	Course       Course         `json:"course"`
	Detail       string         `json:"detail"`
	Category     string         `json:"category"`
	Tags         []Tag          `json:"tags"`
	Org          OrgSummary     `json:"org"`
	Teacher      TeacherSummary `json:"teacher"`
	Related      []Course       `json:"related"`
	Favorited    bool           `json:"favorited"`
	OrgFavorited bool           `json:"orgFavorited"`
}

type Video struct {
	Id           int64  `json:"id"`
	Name         string `json:"name"`
	Url          string `json:"url"`
	LearnMinutes int    `json:"learnMinutes"`
}

type Lesson struct {
	Id     int64   `json:"id"`
	Name   string  `json:"name"`
	Videos []Video `json:"videos"`
}

type Resource struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	DownloadUrl string `json:"downloadUrl"`
}

type ContentResp struct {
	Lessons     []Lesson   `json:"lessons"`
	Resources   []Resource `json:"resources"`
	AlsoLearned []Course   `json:"alsoLearned"`
}

type OfOrgReq struct {
	OrgId int64  `json:"orgId"`
	Sort  string `json:"sort"`
}

type OfTeacherReq struct {
	TeacherId int64 `json:"teacherId"`
}

type CoursesResp struct {
	List []Course `json:"list"`
}
