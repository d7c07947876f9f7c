package web

type SignUpReq struct {
	Email string `json:"email"`
	// Password 明文传进来，后端只存 bcrypt 密文
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type ActivateReq struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Profile struct {
	Id       int64  `json:"id,omitempty"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Birthday string `json:"birthday"`
	Gender   uint8  `json:"gender"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

type EditReq struct {
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Birthday string `json:"birthday"`
	Gender   uint8  `json:"gender"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

type ChangePasswordReq struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type ResetCodeReq struct {
	Email string `json:"email"`
}

type ResetPasswordReq struct {
	Email           string `json:"email"`
	Code            string `json:"code"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type EmailChangeCodeReq struct {
	NewEmail string `json:"newEmail"`
}

type ChangeEmailReq struct {
	NewEmail string `json:"newEmail"`
	Code     string `json:"code"`
}
