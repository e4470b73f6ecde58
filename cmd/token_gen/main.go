package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"flightops360/hangar/internal/auth"
	"flightops360/hangar/internal/config"
	"flightops360/hangar/internal/constants"
)

func main() {
	var (
		subject = flag.StringP("subject", "s", "", "user id placed in the sub claim")
		email   = flag.StringP("email", "e", "", "email claim")
		roles   = flag.StringSliceP("role", "r", []string{constants.RoleViewer.String()}, "role claim, repeatable")
		ttl     = flag.Duration("ttl", 12*time.Hour, "token lifetime, 0 for no expiry")
		secret  = flag.String("secret", "", "signing secret (defaults to JWT_SECRET)")
	)
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "usage: token_gen --subject <uid> [--email addr] [--role Admin ...] [--ttl 12h]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *secret == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		*secret = cfg.JWTSecret
	}

	known := make(map[string]bool, len(constants.SystemRoles))
	for _, r := range constants.SystemRoles {
		known[r.String()] = true
	}
	for _, r := range *roles {
		if !known[r] {
			fmt.Fprintf(os.Stderr, "warning: %q is not a system role\n", r)
		}
	}

	tokens, err := auth.NewTokenManager(*secret, *ttl)
	if err != nil {
		log.Fatalf("token manager: %v", err)
	}
	token, err := tokens.Issue(*subject, *email, *roles)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "subject=%s roles=%s ttl=%s\n", *subject, strings.Join(*roles, ","), *ttl)
	fmt.Println(token)
}
