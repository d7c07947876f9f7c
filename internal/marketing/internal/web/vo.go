package web

type Banner struct {
	Id    int64  `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
	Url   string `json:"url"`
}

type Course struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Degree      uint8  `json:"degree"`
	Students    int    `json:"students"`
	FavCnt      int    `json:"favCnt"`
}

type Org struct {
	Id       int64  `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Students int    `json:"students"`
	Courses  int    `json:"courses"`
}

type Teacher struct {
	Id      int64  `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	FavCnt  int    `json:"favCnt"`
	OrgName string `json:"orgName"`
}

type LandingResp struct {
	Banners        []Banner  `json:"banners"`
	BannerCourses  []Course  `json:"bannerCourses"`
	NewestCourses  []Course  `json:"newestCourses"`
	HotOrgs        []Org     `json:"hotOrgs"`
	TeacherRanking []Teacher `json:"teacherRanking"`
}
