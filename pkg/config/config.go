package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kr/pretty"
)

type Config struct {
	ServerPort string
	SeedUsers  bool
	Mongodb    MongodbConfig
	Jwt        JwtConfig
}

func ReadConfig() (*Config, error) {
	serverPort := os.Getenv(ServerPort)
	if serverPort == "" {
		serverPort = "8080"
		fmt.Println("server port environment variable is empty its declared 8080 by default")
	}

	seedUsers, _ := strconv.ParseBool(os.Getenv(SeedUsers))

	mongodbConfig, err := ReadMongoDbConfig()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := ReadJwtConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort: serverPort,
		SeedUsers:  seedUsers,
		Mongodb:    mongodbConfig,
		Jwt:        jwtConfig,
	}, nil
}

func (c *Config) Print() {
	_, _ = pretty.Println(c)
}

func ReadMongoDbConfig() (MongodbConfig, error) {
	mongodbHost := os.Getenv(MongodbHost)
	if mongodbHost == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbHost)
	}

	mongodbPort := os.Getenv(MongodbPort)
	if mongodbPort == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbPort)
	}

	mongodbUsername := os.Getenv(MongodbUsername)
	if mongodbUsername == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbUsername)
	}

	mongodbPassword := os.Getenv(MongodbPassword)
	if mongodbPassword == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbPassword)
	}

	mongodbDatabase := os.Getenv(MongodbDatabase)
	if mongodbDatabase == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbDatabase)
	}

	payoutCollection := os.Getenv(MongodbPayoutCollection)
	if payoutCollection == "" {
		payoutCollection = DefaultPayoutCollection
	}

	userCollection := os.Getenv(MongodbUserCollection)
	if userCollection == "" {
		userCollection = DefaultUserCollection
	}

	return MongodbConfig{
		Uri:      fmt.Sprintf("mongodb://%s:%s", mongodbHost, mongodbPort),
		Username: mongodbUsername,
		Password: mongodbPassword,
		Database: mongodbDatabase,
		Collections: map[string]string{
			MongodbPayoutCollection: payoutCollection,
			MongodbUserCollection:   userCollection,
		},
	}, nil
}

func ReadJwtConfig() (JwtConfig, error) {
	secret := os.Getenv(JwtSecret)
	if secret == "" {
		return JwtConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, JwtSecret)
	}

	algorithm := os.Getenv(JwtAlgorithm)
	if algorithm == "" {
		algorithm = DefaultJwtAlgorithm
	}
	switch algorithm {
	case "HS256", "HS384", "HS512":
	default:
		return JwtConfig{}, fmt.Errorf("%s is not a supported jwt signing algorithm", algorithm)
	}

	expirationMinutes := DefaultJwtExpirationMinutes
	rawExpirationMinutes := os.Getenv(JwtExpirationMinutes)
	if rawExpirationMinutes != "" {
		parsedExpirationMinutes, err := strconv.Atoi(rawExpirationMinutes)
		if err != nil || parsedExpirationMinutes <= 0 {
			return JwtConfig{}, fmt.Errorf("%s must be a positive integer", JwtExpirationMinutes)
		}
		expirationMinutes = parsedExpirationMinutes
	}

	return JwtConfig{
		Secret:            []byte(secret),
		Algorithm:         algorithm,
		ExpirationMinutes: expirationMinutes,
	}, nil
}
