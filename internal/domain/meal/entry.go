package meal

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one row of the meal ledger. Entries are append only.
type Entry struct {
	id         uuid.UUID
	memberID   uuid.UUID
	companyID  uuid.UUID
	placeID    *uuid.UUID
	locationID *uuid.UUID
	packageID  uuid.UUID
	mealType   MealType
	method     Method
	status     EntryStatus
	recordedAt time.Time
	civilDay   time.Time
}

type EntryRefs struct {
	MemberID   uuid.UUID
	CompanyID  uuid.UUID
	PlaceID    *uuid.UUID
	LocationID *uuid.UUID
	PackageID  uuid.UUID
}

// NewSuccessEntry builds a successful collection. civilDay is the calendar date the
// collection belongs to and drives the per-day uniqueness of the ledger.
func NewSuccessEntry(refs EntryRefs, mealType MealType, method Method, recordedAt, civilDay time.Time) (*Entry, error) {
	if refs.MemberID == uuid.Nil || refs.CompanyID == uuid.Nil || refs.PackageID == uuid.Nil {
		return nil, ErrInvalidArgument
	}
	if !mealType.IsValid() {
		return nil, ErrInvalidMealType
	}
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}

	return &Entry{
		id:         uuid.New(),
		memberID:   refs.MemberID,
		companyID:  refs.CompanyID,
		placeID:    refs.PlaceID,
		locationID: refs.LocationID,
		packageID:  refs.PackageID,
		mealType:   mealType,
		method:     method,
		status:     EntryStatusSuccess,
		recordedAt: recordedAt,
		civilDay:   civilDay,
	}, nil
}

func (e *Entry) ID() uuid.UUID          { return e.id }
func (e *Entry) MemberID() uuid.UUID    { return e.memberID }
func (e *Entry) CompanyID() uuid.UUID   { return e.companyID }
func (e *Entry) PlaceID() *uuid.UUID    { return e.placeID }
func (e *Entry) LocationID() *uuid.UUID { return e.locationID }
func (e *Entry) PackageID() uuid.UUID   { return e.packageID }
func (e *Entry) MealType() MealType     { return e.mealType }
func (e *Entry) Method() Method         { return e.method }
func (e *Entry) Status() EntryStatus    { return e.status }
func (e *Entry) RecordedAt() time.Time  { return e.recordedAt }
func (e *Entry) CivilDay() time.Time    { return e.civilDay }
