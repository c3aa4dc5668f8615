// Package config builds the immutable start-up Options of the redirector.
//
// Values are layered: built-in defaults, then an optional YAML file
// (-c or CONFIG), then command-line flags, then environment variables.
// A .env file in the working directory is loaded into the environment
// first; variables that are already set keep their values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Options holds the configuration values for the application.
type Options struct {
	// ServerAddress is the HTTP listen address (host:port).
	ServerAddress string `yaml:"server_address"`

	// DatabaseDSN selects the Postgres store when set.
	DatabaseDSN string `yaml:"database_dsn"`

	// SQLitePath selects the SQLite store when set and DatabaseDSN is empty.
	SQLitePath string `yaml:"sqlite_path"`

	ProjectName string `yaml:"project_name"`

	// BannedHosts are the host rules of the host filter.
	BannedHosts []string `yaml:"banned_hosts"`

	// RedirectBannedHosts lets a banned host be redirected to its www. variant.
	RedirectBannedHosts bool `yaml:"redirect_banned_hosts"`

	// GRPCAddress enables the gRPC server when set.
	GRPCAddress string `yaml:"grpc_address"`

	LogLevel string `yaml:"log_level"`

	EnablePprof bool `yaml:"enable_pprof"`

	// EnableHTTPS serves TLS with certificates from autocert for TLSHosts.
	EnableHTTPS bool     `yaml:"enable_https"`
	TLSHosts    []string `yaml:"tls_hosts"`

	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Default returns the options used when nothing is configured.
func Default() Options {
	return Options{
		ServerAddress:       "localhost:8080",
		ProjectName:         "redirector",
		BannedHosts:         []string{"example.com", "*.example.com"},
		RedirectBannedHosts: true,
		LogLevel:            "info",
		ShutdownTimeout:     5 * time.Second,
	}
}

// Parse builds Options from args (without the program name) and the
// process environment.
func Parse(args []string) (Options, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Options{}, err
	}

	var (
		fl         = Default()
		configPath string
		banned     string
		tlsHosts   string
	)

	flags := flag.NewFlagSet("redirector", flag.ContinueOnError)
	flags.StringVar(&configPath, "c", "", "path to YAML config file")
	flags.StringVar(&fl.ServerAddress, "a", fl.ServerAddress, "run on ip:port server")
	flags.StringVar(&fl.DatabaseDSN, "d", "", "postgres dsn")
	flags.StringVar(&fl.SQLitePath, "l", "", "path to sqlite database")
	flags.StringVar(&fl.GRPCAddress, "g", "", "run gRPC on ip:port")
	flags.StringVar(&banned, "b", "", "comma separated banned hosts")
	flags.StringVar(&fl.LogLevel, "log", fl.LogLevel, "log level")
	flags.BoolVar(&fl.EnablePprof, "p", false, "enable pprof")
	flags.BoolVar(&fl.EnableHTTPS, "s", false, "enable https")
	flags.StringVar(&tlsHosts, "tls-hosts", "", "comma separated hosts for autocert")
	if err := flags.Parse(args); err != nil {
		return Options{}, err
	}
	fl.BannedHosts = splitList(banned)
	fl.TLSHosts = splitList(tlsHosts)

	if v, ok := os.LookupEnv("CONFIG"); ok && v != "" {
		configPath = v
	}

	opts := Default()
	if configPath != "" {
		if err := loadYAML(configPath, &opts); err != nil {
			return Options{}, err
		}
	}

	// flags given explicitly beat the file
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			opts.ServerAddress = fl.ServerAddress
		case "d":
			opts.DatabaseDSN = fl.DatabaseDSN
		case "l":
			opts.SQLitePath = fl.SQLitePath
		case "g":
			opts.GRPCAddress = fl.GRPCAddress
		case "b":
			opts.BannedHosts = fl.BannedHosts
		case "log":
			opts.LogLevel = fl.LogLevel
		case "p":
			opts.EnablePprof = fl.EnablePprof
		case "s":
			opts.EnableHTTPS = fl.EnableHTTPS
		case "tls-hosts":
			opts.TLSHosts = fl.TLSHosts
		}
	})

	if err := applyEnv(&opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func loadYAML(path string, opts *Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(opts *Options) error {
	if v := os.Getenv("SERVER_ADDRESS"); v != "" {
		opts.ServerAddress = v
	} else if host, port := os.Getenv("HOST"), os.Getenv("PORT"); host != "" || port != "" {
		if host == "" {
			host = "localhost"
		}
		if port == "" {
			port = "8080"
		}
		opts.ServerAddress = net.JoinHostPort(host, port)
	}

	if v := os.Getenv("DATABASE_DSN"); v != "" {
		opts.DatabaseDSN = v
	} else if dsn := dsnFromParts(); dsn != "" {
		opts.DatabaseDSN = dsn
	}

	if v := os.Getenv("SQLITE_PATH"); v != "" {
		opts.SQLitePath = v
	}
	if v := os.Getenv("PROJECT_NAME"); v != "" {
		opts.ProjectName = v
	}
	if v := os.Getenv("BANNED_HOSTS"); v != "" {
		opts.BannedHosts = splitList(v)
	}
	if v := os.Getenv("GRPC_ADDRESS"); v != "" {
		opts.GRPCAddress = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		opts.LogLevel = v
	}
	if v := os.Getenv("TLS_HOSTS"); v != "" {
		opts.TLSHosts = splitList(v)
	}

	for name, dst := range map[string]*bool{
		"BANNED_HOSTS_REDIRECT": &opts.RedirectBannedHosts,
		"ENABLE_HTTPS":          &opts.EnableHTTPS,
		"ENABLE_PPROF":          &opts.EnablePprof,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		opts.ShutdownTimeout = d
	}
	return nil
}

// dsnFromParts assembles a Postgres URL from DB_* variables. DB_HOST is required.
func dsnFromParts() string {
	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + os.Getenv("DB_NAME"),
		RawQuery: "sslmode=disable",
	}
	if user := os.Getenv("DB_USER"); user != "" {
		u.User = url.UserPassword(user, os.Getenv("DB_PASSWORD"))
	}
	return u.String()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
