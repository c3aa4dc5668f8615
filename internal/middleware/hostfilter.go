package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const invalidHost = "Invalid host!"

// ConfigError reports a banned host pattern that cannot be used.
type ConfigError struct {
	Pattern string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid banned host pattern %q: %s", e.Pattern, e.Reason)
}

// Decision is the outcome of a host check.
type Decision int

const (
	// Forward passes the request on unchanged.
	Forward Decision = iota
	// Redirect sends the client to the www. variant of the host.
	Redirect
	// Reject answers 400 "Invalid host!".
	Reject
)

func (d Decision) String() string {
	switch d {
	case Forward:
		return "forward"
	case Redirect:
		return "redirect"
	default:
		return "reject"
	}
}

// HostFilter rejects requests addressed to banned hosts, or redirects them
// to their www. variant when that variant is listed and redirects are on.
// Rules are fixed at construction.
type HostFilter struct {
	rules     []string
	bannedAll bool
	redirect  bool
	log       *zap.Logger
}

// NewHostFilter validates patterns. A pattern is an exact host, "*", or
// "*.suffix"; '*' is not allowed anywhere else.
func NewHostFilter(patterns []string, redirect bool, log *zap.Logger) (*HostFilter, error) {
	f := &HostFilter{redirect: redirect, log: log}

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if len(p) > 1 && strings.Contains(p[1:], "*") {
			return nil, &ConfigError{Pattern: p, Reason: "domain wildcard patterns must be like '*.example.com'"}
		}
		if strings.HasPrefix(p, "*") && p != "*" && !strings.HasPrefix(p, "*.") {
			return nil, &ConfigError{Pattern: p, Reason: "domain wildcard patterns must be like '*.example.com'"}
		}
		f.rules = append(f.rules, p)
	}
	f.bannedAll = len(f.rules) == 1 && f.rules[0] == "*"

	log.Debug("host filter initialized", zap.Strings("rules", f.rules), zap.Bool("redirect", redirect))
	return f, nil
}

// Evaluate decides what happens to a request for host. host carries no port.
// Matching is literal: "Example.com" and "example.com" are different hosts.
func (f *HostFilter) Evaluate(host string) Decision {
	if f.bannedAll {
		return Reject
	}

	banned, wwwListed := false, false
	for _, rule := range f.rules {
		if host == rule || (strings.HasPrefix(rule, "*") && strings.HasSuffix(host, rule[1:])) {
			banned = true
		}
		if "www."+host == rule {
			wwwListed = true
		}
	}

	switch {
	case !banned:
		return Forward
	case wwwListed && f.redirect:
		return Redirect
	default:
		return Reject
	}
}

// StripPort returns the host part of a Host header or :authority value.
// IPv6 literals lose their brackets: "[::1]:8080" and "[::1]" both give "::1".
func StripPort(hostport string) string {
	if host, _, err := net.SplitHostPort(hostport); err == nil {
		return host
	}
	if strings.HasPrefix(hostport, "[") && strings.HasSuffix(hostport, "]") {
		return hostport[1 : len(hostport)-1]
	}
	return hostport
}

// Handler applies the filter to r.Host before next runs. Banned hosts get a
// plain-text 400 "Invalid host!", or a 307 to the www. host when the
// www. variant is itself a rule and redirects are enabled.
func (f *HostFilter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host := StripPort(r.Host)

		switch f.Evaluate(host) {
		case Forward:
			next.ServeHTTP(w, r)

		case Redirect:
			u := *r.URL
			u.Scheme = "http"
			if r.TLS != nil {
				u.Scheme = "https"
			}
			u.Host = "www." + r.Host
			f.log.Debug("redirecting banned host", zap.String("host", host), zap.String("location", u.String()))

			w.Header().Set("Location", u.String())
			w.WriteHeader(http.StatusTemporaryRedirect)

		default:
			f.log.Debug("rejecting banned host", zap.String("host", host))
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(invalidHost))
		}
	})
}

// UnaryServerInterceptor applies the filter to the :authority of a gRPC call.
// gRPC has no redirects, so Redirect is treated as Reject.
func (f *HostFilter) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if f.Evaluate(Authority(ctx)) != Forward {
			return nil, status.Error(codes.InvalidArgument, invalidHost)
		}
		return handler(ctx, req)
	}
}

// Authority returns the host of an incoming gRPC call without its port.
func Authority(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, key := range []string{":authority", "host"} {
		if v := md.Get(key); len(v) > 0 {
			return StripPort(v[0])
		}
	}
	return ""
}
