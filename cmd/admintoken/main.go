// Command admintoken prints a signed access token for the admin API.
//
//	admintoken -sub <uuid> -role editor -perm content.view -perm content.edit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"contactdesk/config"
	"contactdesk/internal/domain/entity"
	"contactdesk/internal/infra/auth"

	"github.com/google/uuid"
)

// listFlag collects a repeatable string flag.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}

	return nil
}

func main() {
	var roles, perms listFlag
	subject := flag.String("sub", "", "subject (operator UUID); a random one is used when empty")
	flag.Var(&roles, "role", "role granted to the token (repeatable)")
	flag.Var(&perms, "perm", "explicit permission, e.g. content.edit (repeatable)")
	flag.Parse()

	if len(roles) == 0 && len(perms) == 0 {
		fmt.Fprintln(os.Stderr, "at least one -role or -perm is required")
		flag.Usage()
		os.Exit(2)
	}

	userID := uuid.New()
	if *subject != "" {
		parsed, err := uuid.Parse(*subject)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -sub: %v\n", err)
			os.Exit(2)
		}
		userID = parsed
	}

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		slog.Error("Failed to create token service", slog.Any("error", err))
		os.Exit(1)
	}

	token, err := tokenSvc.GenerateAccessToken(userID, roles, entity.PermissionsFromStrings(perms))
	if err != nil {
		slog.Error("Failed to sign token", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Issued access token",
		slog.String("sub", userID.String()),
		slog.Any("roles", []string(roles)),
		slog.Any("permissions", []string(perms)),
		slog.Duration("ttl", tokenSvc.AccessTokenTTL()),
	)
	fmt.Println(token)
}
