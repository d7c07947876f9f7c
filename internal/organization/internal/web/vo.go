package web

type ListReq struct {
	Keyword  string `json:"keyword"`
	Category uint8  `json:"category"`
	CityId   int64  `json:"cityId"`
	Sort     string `json:"sort"`
	Page     int    `json:"page"`
}

type Organization struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    uint8  `json:"category"`
	CityId      int64  `json:"cityId"`
	CityName    string `json:"cityName"`
	Students    int    `json:"students"`
	CourseCnt   int    `json:"courseCnt"`
	FavCnt      int    `json:"favCnt"`
	ClickCnt    int    `json:"clickCnt"`
}

type ListResp struct {
	List  []Organization `json:"list"`
	Hot   []Organization `json:"hot"`
	Total int64          `json:"total"`
	Pages int            `json:"pages"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type DetailResp struct {
	Org       Organization `json:"org"`
	Favorited bool         `json:"favorited"`
}

type City struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type CitiesResp struct {
	Cities []City `json:"cities"`
}
