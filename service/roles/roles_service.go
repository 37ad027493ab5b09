// Package roles provisions PostgreSQL roles for the logistics database
// with three privilege tiers: admin, editor (read/insert/update) and
// viewer (read-only).
package roles

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"gorm.io/gorm"
)

// Role is a privilege tier.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleViewer
}

var usernamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// GrantStatements returns the GRANT set for a role tier on a database.
// Usernames are restricted to postgres identifier characters and quoted,
// so the statements are safe to execute verbatim.
func GrantStatements(role Role, database, username string) ([]string, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("roles: unknown role %q", role)
	}
	if !usernamePattern.MatchString(username) || !usernamePattern.MatchString(database) {
		return nil, fmt.Errorf("roles: invalid identifier %q/%q", username, database)
	}
	db := pgx.Identifier{database}.Sanitize()
	user := pgx.Identifier{username}.Sanitize()

	switch role {
	case RoleAdmin:
		return []string{
			fmt.Sprintf("GRANT ALL PRIVILEGES ON DATABASE %s TO %s", db, user),
			fmt.Sprintf("GRANT ALL PRIVILEGES ON SCHEMA public TO %s", user),
			fmt.Sprintf("GRANT ALL PRIVILEGES ON ALL TABLES IN SCHEMA public TO %s", user),
			fmt.Sprintf("GRANT ALL PRIVILEGES ON ALL SEQUENCES IN SCHEMA public TO %s", user),
			fmt.Sprintf("ALTER DEFAULT PRIVILEGES IN SCHEMA public GRANT ALL ON TABLES TO %s", user),
			fmt.Sprintf("ALTER DEFAULT PRIVILEGES IN SCHEMA public GRANT ALL ON SEQUENCES TO %s", user),
		}, nil
	case RoleEditor:
		return []string{
			fmt.Sprintf("GRANT CONNECT ON DATABASE %s TO %s", db, user),
			fmt.Sprintf("GRANT USAGE ON SCHEMA public TO %s", user),
			fmt.Sprintf("GRANT SELECT, INSERT, UPDATE ON ALL TABLES IN SCHEMA public TO %s", user),
			fmt.Sprintf("GRANT USAGE ON ALL SEQUENCES IN SCHEMA public TO %s", user),
			fmt.Sprintf("ALTER DEFAULT PRIVILEGES IN SCHEMA public GRANT SELECT, INSERT, UPDATE ON TABLES TO %s", user),
			fmt.Sprintf("ALTER DEFAULT PRIVILEGES IN SCHEMA public GRANT USAGE ON SEQUENCES TO %s", user),
		}, nil
	default: // RoleViewer
		return []string{
			fmt.Sprintf("GRANT CONNECT ON DATABASE %s TO %s", db, user),
			fmt.Sprintf("GRANT USAGE ON SCHEMA public TO %s", user),
			fmt.Sprintf("GRANT SELECT ON ALL TABLES IN SCHEMA public TO %s", user),
			fmt.Sprintf("GRANT SELECT ON ALL SEQUENCES IN SCHEMA public TO %s", user),
			fmt.Sprintf("ALTER DEFAULT PRIVILEGES IN SCHEMA public GRANT SELECT ON TABLES TO %s", user),
			fmt.Sprintf("ALTER DEFAULT PRIVILEGES IN SCHEMA public GRANT SELECT ON SEQUENCES TO %s", user),
		}, nil
	}
}

// Provisioner creates roles through an admin connection.
type Provisioner struct {
	db       *gorm.DB
	database string
}

func NewProvisioner(db *gorm.DB, database string) *Provisioner {
	return &Provisioner{db: db, database: database}
}

// RoleExists checks pg_roles for an existing role.
func (p *Provisioner) RoleExists(username string) (bool, error) {
	var n int64
	err := p.db.Raw("SELECT COUNT(*) FROM pg_roles WHERE rolname = ?", username).Scan(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Provision creates the login role if missing and applies the tier's GRANT
// set. Idempotent: an existing role only gets its grants re-applied.
func (p *Provisioner) Provision(role Role, username, password string) error {
	stmts, err := GrantStatements(role, p.database, username)
	if err != nil {
		return err
	}
	exists, err := p.RoleExists(username)
	if err != nil {
		return fmt.Errorf("roles: check role %q: %w", username, err)
	}
	if !exists {
		create := fmt.Sprintf("CREATE ROLE %s WITH LOGIN PASSWORD '%s'",
			pgx.Identifier{username}.Sanitize(),
			strings.ReplaceAll(password, "'", "''"))
		if err := p.db.Exec(create).Error; err != nil {
			return fmt.Errorf("roles: create role %q: %w", username, err)
		}
		log.Printf("Role %q created (%s)", username, role)
	} else {
		log.Printf("Role %q already exists", username)
	}
	for _, stmt := range stmts {
		if err := p.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("roles: grant for %q: %w", username, err)
		}
	}
	log.Printf("%s privileges granted for %q", role, username)
	return nil
}
