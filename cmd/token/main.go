// Command token mints an access token for local development against the
// API. Token issuance in production belongs to the identity service.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hrms-vn/hrm-backend-go/internal/config"
	"github.com/hrms-vn/hrm-backend-go/internal/domain/auth"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/jwt"
)

func main() {
	userID := flag.Int64("user", 1, "user id")
	employeeID := flag.Int64("employee", 0, "employee id (0 for none)")
	role := flag.String("role", string(auth.RoleEmployee), "admin, hr, manager or employee")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	p := auth.Principal{UserID: *userID, Role: auth.Role(*role)}
	if *employeeID > 0 {
		p.EmployeeID = employeeID
	}

	token, expiresAt, err := JWTService.GenerateAccessToken(p)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating token:", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", time.Unix(expiresAt, 0).Format(time.RFC3339))
}
