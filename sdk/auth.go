package sdk

// LoginRequest is the payload submitted to the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest is the payload submitted to the refresh and logout
// endpoints.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse is the shape returned by the login and refresh endpoints.
type AuthResponse struct {
	// Success explicitly flags whether credentials were accepted. The
	// backend uses this rather than relying on status codes alone so that
	// login forms can surface its Error field verbatim.
	Success bool `json:"success"`
	// Token is a newly minted access token.
	Token string `json:"token,omitempty"`
	// RefreshToken is a newly minted refresh token.
	RefreshToken string `json:"refreshToken,omitempty"`
	// ExpiresIn indicates, in seconds, how long Token remains valid. A zero
	// value means the backend declined to say.
	ExpiresIn int64 `json:"expiresIn,omitempty"`
	// User is the authenticated user's profile. The refresh endpoint may
	// omit it, in which case clients keep whatever profile they already
	// hold.
	User *User `json:"user,omitempty"`
	// Error is a human-readable reason for a failed attempt.
	Error string `json:"error,omitempty"`
}
