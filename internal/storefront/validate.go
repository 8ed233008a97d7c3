package storefront

// Credential validation messages, kept word for word with what the web
// client shows.
const (
	msgUsernameRequired = "Username is a required field"
	msgUsernameTooShort = "Username must be at least 6 characters"
	msgPasswordRequired = "Password is a required field"
	msgPasswordTooShort = "Password must be at least 6 characters"
	msgPasswordMismatch = "Passwords do not match"
)

func validateLogin(username, password string) (string, bool) {
	if username == "" {
		return msgUsernameRequired, false
	}
	if password == "" {
		return msgPasswordRequired, false
	}
	return "", true
}

func validateRegister(username, password, confirm string) (string, bool) {
	if username == "" {
		return msgUsernameRequired, false
	}
	if len(username) < 6 {
		return msgUsernameTooShort, false
	}
	if password == "" {
		return msgPasswordRequired, false
	}
	if len(password) < 6 {
		return msgPasswordTooShort, false
	}
	if confirm != password {
		return msgPasswordMismatch, false
	}
	return "", true
}
