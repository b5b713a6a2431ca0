package google

// UserInfo is the subset of Google's userinfo response used for login.
type UserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

// userInfoPayload accepts both the v2 and the OpenID Connect field names.
type userInfoPayload struct {
	ID            string `json:"id"`
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	VerifiedEmail *bool  `json:"verified_email"`
	EmailVerified *bool  `json:"email_verified"`
	Name          string `json:"name"`
}

func (p userInfoPayload) toUserInfo() *UserInfo {
	info := &UserInfo{ID: p.ID, Email: p.Email, Name: p.Name}
	if info.ID == "" {
		info.ID = p.Sub
	}
	switch {
	case p.VerifiedEmail != nil:
		info.VerifiedEmail = *p.VerifiedEmail
	case p.EmailVerified != nil:
		info.VerifiedEmail = *p.EmailVerified
	}
	return info
}
