package dto

type SignUpInput struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Position string `json:"position"`
	DeptID   int64  `json:"deptId"`
}

type SignUpResponse struct {
	EmpID   int64  `json:"empId"`
	LoginID string `json:"loginId"`
	Name    string `json:"name"`
}
