package model

import (
	"database/sql/driver"
	"fmt"

	"github.com/ikkim/foodreview-backend/pkg/util"
)

// Password stores a bcrypt hash. It is write-only: the hash can be replaced
// or checked against a plaintext, never read back.
type Password struct {
	hash string
}

// Set hashes plaintext and replaces the stored hash.
func (p *Password) Set(plaintext string) error {
	if plaintext == "" {
		return invalid("password", "password must not be empty")
	}
	hash, err := util.HashPassword(plaintext)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	p.hash = hash
	return nil
}

// Matches reports whether plaintext matches the stored hash. Without a hash
// nothing matches.
func (p Password) Matches(plaintext string) bool {
	if p.hash == "" {
		return false
	}
	return util.VerifyPassword(p.hash, plaintext)
}

func (p Password) IsSet() bool {
	return p.hash != ""
}

// GormDataType keeps the column a plain string column.
func (Password) GormDataType() string {
	return "string"
}

// Value는 database/sql/driver.Valuer 인터페이스 구현
func (p Password) Value() (driver.Value, error) {
	if p.hash == "" {
		return nil, nil
	}
	return p.hash, nil
}

// Scan은 database/sql.Scanner 인터페이스 구현
func (p *Password) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		p.hash = ""
	case string:
		p.hash = v
	case []byte:
		p.hash = string(v)
	default:
		return fmt.Errorf("failed to scan Password from %T", value)
	}
	return nil
}

// String never exposes the hash.
func (p Password) String() string {
	if p.hash == "" {
		return "<unset>"
	}
	return "<redacted>"
}
