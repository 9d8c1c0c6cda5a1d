package meal

import (
	"strings"
)

type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeSupper    MealType = "supper"
	MealTypeDinner    MealType = "dinner"
	MealTypeLateSnack MealType = "late_snack"
)

var AllMealTypes = []MealType{
	MealTypeBreakfast,
	MealTypeLunch,
	MealTypeSupper,
	MealTypeDinner,
	MealTypeLateSnack,
}

func (m MealType) String() string {
	return string(m)
}

func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeSupper, MealTypeDinner, MealTypeLateSnack:
		return true
	default:
		return false
	}
}

// Label is the human readable form used in user facing messages.
func (m MealType) Label() string {
	if m == MealTypeLateSnack {
		return "late snack"
	}
	return string(m)
}

// NewMealType accepts "late-snack", "lateSnack" and "late snack" as aliases of late_snack.
func NewMealType(s string) (MealType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "late-snack", "latesnack", "late snack":
		normalized = string(MealTypeLateSnack)
	}
	mt := MealType(normalized)
	if !mt.IsValid() {
		return "", ErrInvalidMealType
	}
	return mt, nil
}

type Method string

const (
	MethodFace Method = "face"
	MethodCard Method = "card"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	return m == MethodFace || m == MethodCard
}

func NewMethod(s string) (Method, error) {
	method := Method(strings.ToLower(strings.TrimSpace(s)))
	if !method.IsValid() {
		return "", ErrInvalidMethod
	}
	return method, nil
}

type EntryStatus string

const (
	EntryStatusSuccess EntryStatus = "success"
	EntryStatusFailed  EntryStatus = "failed"
)

func (s EntryStatus) String() string {
	return string(s)
}

func NewEntryStatus(s string) (EntryStatus, error) {
	status := EntryStatus(s)
	if status != EntryStatusSuccess && status != EntryStatusFailed {
		return "", ErrInvalidEntryStatus
	}
	return status, nil
}
