package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type signupRequest struct {
	Email                string `json:"email"                validate:"required,email"`
	Username             string `json:"username"             validate:"required"`
	Password             string `json:"password"             validate:"required"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required"`
}

type loginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"password"        validate:"required"`
}

type updateUserRequest struct {
	Password             string `json:"password"             validate:"required"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required"`
}

// identityResponse mirrors domain.Identity for the swagger docs.
type identityResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
