package store

import "strconv"

// Key schema shared by every backend. All entries carry a TTL so abandoned
// state self-heals without a sweeper.
//
//	refresh:{jti}          -> empId   (forward refresh index)
//	emp_refresh:{empId}    -> jti     (reverse refresh index)
//	emp_access:{empId}     -> jti     (current access token per employee)
//	blacklist:{jti}        -> 1       (revoked access tokens)
//	login_fail:{loginId}   -> count
//	pw_reset:{loginId}     -> otp
//	pw_reset_token:{loginId} -> secret
func refreshKey(jti string) string {
	return "refresh:" + jti
}

func empRefreshKey(empID int64) string {
	return "emp_refresh:" + strconv.FormatInt(empID, 10)
}

func empAccessKey(empID int64) string {
	return "emp_access:" + strconv.FormatInt(empID, 10)
}

func blacklistKey(jti string) string {
	return "blacklist:" + jti
}

func loginFailKey(loginID string) string {
	return "login_fail:" + loginID
}

func pwResetKey(loginID string) string {
	return "pw_reset:" + loginID
}

func pwResetTokenKey(loginID string) string {
	return "pw_reset_token:" + loginID
}
