package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	PageNotFound     = "Catalog page not found"
	TrailerNotFound  = "No trailer available for this title"
	InvalidMediaType = "Invalid mediaType, expected movie or tv"
	InvalidMediaId   = "Invalid media id"
	InvalidGenreId   = "Invalid genre id"
	//----------------------
	AccountNotFound   = "Account not found. Please sign up first."
	PlanNotActive     = "Please complete plan selection to activate your account"
	PlanNotFound      = "Plan not found"
	PaymentRefMissing = "Payment reference is required for paid plans"
	//----------------------
	InvalidToken      = "Invalid/Stale Token"
	InvalidGuestToken = "Invalid guest token"
	SessionRequired   = "Unauthorized, guest token or login required"
	//----------------------
	UserPassNotMatch    = "Email and password do not match"
	PasswordsNotMatch   = "Passwords don't match!"
	PasswordTooShort    = "Password must be at least 6 characters"
	InvalidEmail        = "Invalid email address"
	UsernameTooShort    = "Username must be at least 3 characters"
	ConfigsDbNotFound   = "Configs from database not found"
	RecommendationsBusy = "Too many recommendation requests, try again later"
	//----------------------
	BadRequestBody = "Incorrect request body"
	//----------------------
	UsernameAlreadyExist = "This username already exists"
	EmailAlreadyExist    = "This email already exists"
	//----------------------
)
