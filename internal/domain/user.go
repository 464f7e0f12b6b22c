package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleCentral Role = "CENTRAL"
	RoleBranch  Role = "BRANCH"
)

func (r Role) IsValid() bool {
	return r == RoleCentral || r == RoleBranch
}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Branch       *string   `json:"branch"`
	CreatedAt    time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     Role    `json:"role"`
	Branch   *string `json:"branch"`
}

type LoginResponse struct {
	Token     string  `json:"token"`
	ExpiresIn int64   `json:"expiresIn"`
	Role      Role    `json:"role"`
	Branch    *string `json:"branch"`
}

// Claims é o payload do JWT; o subject carrega o username
type Claims struct {
	Role   Role   `json:"role"`
	Branch string `json:"branch,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Actor() Actor {
	return Actor{
		Username: c.Subject,
		Role:     c.Role,
		Branch:   c.Branch,
	}
}

// Actor identifica quem executa uma operação. É passado explicitamente
// para os serviços em vez de ser lido do contexto da requisição.
type Actor struct {
	Username string
	Role     Role
	Branch   string
}

func (a Actor) IsCentral() bool {
	return a.Role == RoleCentral
}

// CanAccessBranch indica se o ator pode ler ou escrever dados da filial
func (a Actor) CanAccessBranch(branch string) bool {
	if a.IsCentral() {
		return true
	}
	return a.Branch != "" && a.Branch == branch
}
