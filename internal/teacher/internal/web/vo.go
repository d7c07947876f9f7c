package web

type ListReq struct {
	Keyword string `json:"keyword"`
	Sort    string `json:"sort"`
	Page    int    `json:"page"`
}

type Teacher struct {
	Id        int64  `json:"id"`
	OrgId     int64  `json:"orgId"`
	OrgName   string `json:"orgName"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	WorkYears int    `json:"workYears"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	Points    string `json:"points"`
	FavCnt    int    `json:"favCnt"`
	ClickCnt  int    `json:"clickCnt"`
}

type ListResp struct {
	List    []Teacher `json:"list"`
	Ranking []Teacher `json:"ranking"`
	Total   int64     `json:"total"`
	Pages   int       `json:"pages"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type OrgSummary struct {
	Id       int64  `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Students int    `json:"students"`
	Courses  int    `json:"courses"`
}

type DetailResp struct {
	Teacher   Teacher    `json:"teacher"`
	Org       OrgSummary `json:"org"`
	Favorited bool       `json:"favorited"`
}

type OfOrgReq struct {
	OrgId int64 `json:"orgId"`
}

type TeachersResp struct {
	List []Teacher `json:"list"`
}
