package web

type ToggleFavoriteReq struct {
	Kind     uint8 `json:"kind"`
	TargetId int64 `json:"targetId"`
}

type ToggleFavoriteResp struct {
	// Favorited 切换之后的状态
	Favorited bool `json:"favorited"`
}

type FavoriteStatReq struct {
	Kind     uint8 `json:"kind"`
	TargetId int64 `json:"targetId"`
}

type FavoriteStatResp struct {
	Favorited bool `json:"favorited"`
}

type FavoriteListReq struct {
	Kind uint8 `json:"kind"`
	Page int   `json:"page"`
}

type Favorite struct {
	Kind     uint8 `json:"kind"`
	TargetId int64 `json:"targetId"`
	Ctime    int64 `json:"ctime"`
}

type FavoriteListResp struct {
	List  []Favorite `json:"list"`
	Total int64      `json:"total"`
	Pages int        `json:"pages"`
}
