package company

import (
	"strings"

	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPolicy = errs.New("invalid collection policy")
	ErrEmptyName     = errs.New("company name cannot be empty")
)

// Policy states which collection methods a company accepts.
type Policy string

const (
	PolicyFace Policy = "face"
	PolicyCard Policy = "card"
	PolicyBoth Policy = "both"

	DefaultPolicy = PolicyFace
)

func (p Policy) String() string {
	return string(p)
}

// NewPolicy maps an unset value to DefaultPolicy.
func NewPolicy(s string) (Policy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultPolicy, nil
	}
	p := Policy(s)
	switch p {
	case PolicyFace, PolicyCard, PolicyBoth:
		return p, nil
	default:
		return "", ErrInvalidPolicy
	}
}

func (p Policy) Allows(method meal.Method) bool {
	return p == PolicyBoth || string(p) == string(method)
}

type Company struct {
	id     uuid.UUID
	name   string
	policy Policy
}

func NewCompany(id uuid.UUID, name string, policy Policy) (*Company, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if policy == "" {
		policy = DefaultPolicy
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Company{id: id, name: name, policy: policy}, nil
}

func (c *Company) ID() uuid.UUID  { return c.id }
func (c *Company) Name() string   { return c.name }
func (c *Company) Policy() Policy { return c.policy }

// CheckMethod reports a *meal.MethodNotAllowedError when the policy rejects method.
func (c *Company) CheckMethod(method meal.Method) error {
	if c.policy.Allows(method) {
		return nil
	}
	return &meal.MethodNotAllowedError{Policy: c.policy.String(), Attempted: method}
}
