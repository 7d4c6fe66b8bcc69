package dto

type ForceLogoutInput struct {
	EmpID int64 `json:"empId"`
}

type LockAccountInput struct {
	EmpID int64 `json:"empId"`
}
