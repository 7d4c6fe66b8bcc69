package dto

type PasswordResetRequestInput struct {
	LoginID string `json:"loginId"`
}

type OtpVerifyInput struct {
	LoginID string `json:"loginId"`
	OTP     string `json:"otp"`
}

type OtpVerifyResponse struct {
	ResetToken string `json:"resetToken"`
	ExpiresIn  int64  `json:"expiresIn"`
}

type ResetPasswordInput struct {
	LoginID     string `json:"loginId"`
	ResetToken  string `json:"resetToken"`
	NewPassword string `json:"newPassword"`
}
