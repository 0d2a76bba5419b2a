package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Session  Session
	Users    []UserCredential
}

type Server struct {
	Port string
	Mode string
}

type Database struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SQLitePath string
}

type Session struct {
	Secret string
}

// UserCredential is one entry of the static login allow-list. There is no
// registration flow; the set of accounts is fixed at startup.
type UserCredential struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	Role     string `mapstructure:"role"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

func defaultUsers() []UserCredential {
	return []UserCredential{
		{Email: "admin@aptitude.com", Password: "admin123", Name: "Administrator", Role: RoleAdmin},
		{Email: "gopika@aptitude.com", Password: "gopika123", Name: "Gopika", Role: RoleUser},
		{Email: "hari@aptitude.com", Password: "hari123", Name: "Hari", Role: RoleUser},
		{Email: "guest@aptitude.com", Password: "guest123", Name: "Guest User", Role: RoleUser},
	}
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "postgres")
	viper.SetDefault("DATABASE_NAME", "aptitude")
	viper.SetDefault("SQLITE_PATH", "aptitude.db")
	viper.SetDefault("SESSION_SECRET", "aptitude_secret_key")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("GIN_MODE")
	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SQLitePath = viper.GetString("SQLITE_PATH")
	config.Session.Secret = viper.GetString("SESSION_SECRET")

	config.Users = loadUsers()

	log.Info().Str("port", config.Server.Port).Str("driver", config.Database.Driver).
		Int("users", len(config.Users)).Msg("Config loaded")
	return &config, nil
}

// loadUsers reads the allow-list from users.yaml when present, otherwise the
// compiled-in defaults apply.
func loadUsers() []UserCredential {
	v := viper.New()
	v.SetConfigName("users")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		return defaultUsers()
	}

	var users []UserCredential
	if err := v.UnmarshalKey("users", &users); err != nil || len(users) == 0 {
		log.Warn().Err(err).Msg("users.yaml present but unusable, falling back to defaults")
		return defaultUsers()
	}
	log.Info().Int("count", len(users)).Msg("Loaded user allow-list from users.yaml")
	return users
}
