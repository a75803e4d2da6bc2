package dto

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResult struct {
	AccessToken string
	User        UserInfo
}
