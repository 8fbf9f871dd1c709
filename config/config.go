package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jinzhu/configor"
	"golang.org/x/xerrors"
)

const DefaultFile = "config/config.dev.json"

type Config struct {
	AppConfig       AppConfig       `env:"APPCONFIG"`
	IRCConfig       IRCConfig       `env:"IRCCONFIG"`
	DBConfig        DBConfig        `env:"DBCONFIG"`
	HeartbeatConfig HeartbeatConfig `env:"HEARTBEATCONFIG"`
}

type AppConfig struct {
	APPName string `default:"heartbeat"`
	Version string `default:"x.x.x" env:"VERSION"`
	Port    int    `default:"8080" env:"APP_PORT"`
}

type IRCConfig struct {
	Host             string `env:"HOST"`
	Port             int    `env:"PORT" default:"6667"`
	SSL              bool   `env:"SSL"`
	Nick             string `env:"NICK" default:"heartbeat"`
	ChannelsString   string `env:"CHANNELS"`
	Channels         []string
	Network          string `env:"NETWORK"`
	NickservCommand  string `env:"NICKSERV_COMMAND" default:"PRIVMSG NickServ IDENTIFY %s"`
	NickservPassword string `env:"NICKSERV_PASSWORD" default:""`
}

type DBConfig struct {
	Host     string `default:"localhost" env:"DBHOST"`
	DataBase string `default:"heartbeat" env:"DBNAME"`
	User     string `default:"postgres" env:"DBUSERNAME"`
	Password string `required:"true" env:"DBPASSWORD" default:"mysecretpassword"`
	Port     uint   `default:"5432" env:"DBPORT"`
	SSLMode  string `default:"disable" env:"DBSSL"`
}

type HeartbeatConfig struct {
	// IntervalSeconds between two beats.
	IntervalSeconds int `default:"60" env:"HEARTBEAT_INTERVAL"`
	// AnnounceEvery posts to IRC on every Nth beat; 0 disables announcements.
	AnnounceEvery       int    `default:"0" env:"HEARTBEAT_ANNOUNCE_EVERY"`
	WriteTimeoutSeconds int    `default:"5" env:"HEARTBEAT_WRITE_TIMEOUT"`
	Source              string `env:"HEARTBEAT_SOURCE"`
}

func (c HeartbeatConfig) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

func (c HeartbeatConfig) WriteTimeout() time.Duration {
	if c.WriteTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// DSN renders the connection string for gorm's postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.DataBase, c.Port, c.SSLMode)
}

// URL renders the connection string for golang-migrate.
func (c DBConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DataBase,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

func LoadConfig(files ...string) (Config, error) {
	var config = Config{}
	if err := configor.Load(&config, files...); err != nil {
		return Config{}, xerrors.Errorf("load config: %w", err)
	}
	config.IRCConfig.Channels = splitChannels(config.IRCConfig.ChannelsString)
	return config, nil
}

func LoadConfigOrPanic() Config {
	config, err := LoadConfig(DefaultFile)
	if err != nil {
		panic(err)
	}
	return config
}

func splitChannels(s string) []string {
	var channels []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			channels = append(channels, c)
		}
	}
	return channels
}
