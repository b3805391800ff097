package config

const (
	EnvironmentVariableNotDefined = "%s variable is not defined"

	IsAtRemote = "IS_AT_REMOTE"
	ServerPort = "SERVER_PORT"
	SeedUsers  = "SEED_USERS"

	MongodbHost             = "MONGO_HOST"
	MongodbPort             = "MONGO_PORT"
	MongodbUsername         = "MONGO_INITDB_ROOT_USERNAME"
	MongodbPassword         = "MONGO_INITDB_ROOT_PASSWORD"
	MongodbDatabase         = "MONGO_INITDB_DATABASE"
	MongodbPayoutCollection = "MONGO_PAYOUT_COLLECTION"
	MongodbUserCollection   = "MONGO_USER_COLLECTION"

	JwtSecret            = "JWT_SECRET"
	JwtAlgorithm         = "JWT_ALGORITHM"
	JwtExpirationMinutes = "JWT_EXPIRATION_MINUTES"
)

const (
	DefaultPayoutCollection = "payout_affiliate"
	DefaultUserCollection   = "users_affiliate"

	DefaultJwtAlgorithm         = "HS256"
	DefaultJwtExpirationMinutes = 30
)

type MongodbConfig struct {
	Uri         string
	Username    string
	Password    string
	Database    string
	Collections map[string]string
}

type JwtConfig struct {
	Secret            []byte
	Algorithm         string
	ExpirationMinutes int
}
