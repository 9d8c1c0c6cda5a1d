package admin

// Kind is the closed set of back office principals, ordered by privilege.
type Kind string

const (
	KindMealCollector Kind = "meal_collector"
	KindManager       Kind = "manager"
	KindAdmin         Kind = "admin"
	KindSuperadmin    Kind = "superadmin"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) rank() int {
	switch k {
	case KindMealCollector:
		return 1
	case KindManager:
		return 2
	case KindAdmin:
		return 3
	case KindSuperadmin:
		return 4
	default:
		return 0
	}
}

func (k Kind) IsValid() bool {
	return k.rank() > 0
}

// AtLeast reports whether k carries the privileges of required.
func (k Kind) AtLeast(required Kind) bool {
	return k.IsValid() && k.rank() >= required.rank()
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}
