package dto

type LoginInput struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
}

type UserSummary struct {
	EmpID   int64    `json:"empId"`
	LoginID string   `json:"loginId"`
	Name    string   `json:"name"`
	Roles   []string `json:"roles"`
}

type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	ExpiresIn   int64       `json:"expiresIn"`
	User        UserSummary `json:"user"`
}
