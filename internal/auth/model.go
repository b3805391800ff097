package auth

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ClaimsContextKey is the fiber locals key under which RequireAdmin stores the
// verified token claims.
const ClaimsContextKey = "tokenClaims"

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type UserDocument struct {
	Id        string `bson:"_id"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	Role      string `bson:"role"`
	CreatedAt int64  `bson:"createdAt"`
}
