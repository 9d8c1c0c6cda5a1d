//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/domain/company"
	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/domain/member"
	"canteen-backoffice/internal/infra"
	"canteen-backoffice/internal/pkg/cardcode"
	"canteen-backoffice/internal/pkg/civil"
	"canteen-backoffice/internal/usecase/commands"
	"canteen-backoffice/internal/usecase/shared"
	"canteen-backoffice/tests/common/builder"
	sharedmock "canteen-backoffice/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// Monday 2025-03-10 12:30 in the civil zone.
var lunchTime = time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)

type MealCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	ledger   *sharedmock.MockMealLedgerRepository
	clock    *civil.MockClock
	calendar *civil.Calendar
	codec    *cardcode.Codec
	cmds     commands.MealCommands
}

func (s *MealCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.ledger = sharedmock.NewMockMealLedgerRepository(s.ctrl)

	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Meals().Return(s.ledger).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()

	s.clock = civil.NewMockClock(lunchTime)
	s.calendar = civil.NewCalendar(s.clock, "Asia/Kolkata", 19800)
	s.codec = cardcode.NewCodec("MC-")
	s.cmds = commands.NewMealCommands(s.uow, s.calendar, s.codec, 5*time.Second)
}

func (s *MealCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMealCommandsSuite(t *testing.T) {
	suite.Run(t, new(MealCommandsTestSuite))
}

// eligibleMember has a both-policy company and a package serving lunch 12:00-14:00 daily.
func (s *MealCommandsTestSuite) eligibleMember(mutate func(*builder.MemberBuilder, *builder.PackageBuilder, *company.Policy)) *member.Member {
	mb := builder.NewMemberBuilder()
	pb := builder.NewPackageBuilder().WithCompanyID(mb.CompanyID)
	policy := company.PolicyBoth
	if mutate != nil {
		mutate(mb, pb, &policy)
	}
	mb.WithAssignment(builder.AssignmentSpec{
		Company: mb.Company(policy),
		Package: pb.MustBuild(),
		Start:   lunchTime.AddDate(0, 0, -1),
		End:     lunchTime.AddDate(0, 0, 30),
	})
	return mb.MustBuild()
}

func (s *MealCommandsTestSuite) TestRecordMealSuccess() {
	m := s.eligibleMember(nil)
	dayStart, dayEnd := s.calendar.DayBounds(s.calendar.Now())

	s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
	s.reads.EXPECT().HasPendingFee(gomock.Any(), m.ID()).Return(false, nil)
	s.reads.EXPECT().MealCollectedBetween(gomock.Any(), m.ID(), meal.MealTypeLunch, dayStart, dayEnd).Return(false, nil)

	var recorded *meal.Entry
	s.ledger.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, e *meal.Entry) error {
			recorded = e
			return nil
		})

	res, err := s.cmds.RecordMeal(context.Background(), commands.RecordMealInput{UserID: m.ID(), Method: "face"})
	s.Require().NoError(err)
	s.Equal(meal.MealTypeLunch, res.MealType)
	s.Equal(meal.MethodFace, res.Method)
	s.Equal(m.Name(), res.MemberName)
	s.True(res.Timestamp.Equal(lunchTime))

	s.Require().NotNil(recorded)
	s.Equal(res.MealID, recorded.ID())
	s.Equal(meal.EntryStatusSuccess, recorded.Status())
	s.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), recorded.CivilDay())
	s.Equal(m.CompanyID(), recorded.CompanyID())
}

func (s *MealCommandsTestSuite) TestRecordMealByCardCode() {
	m := s.eligibleMember(nil)

	s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
	s.reads.EXPECT().HasPendingFee(gomock.Any(), m.ID()).Return(false, nil)
	s.reads.EXPECT().MealCollectedBetween(gomock.Any(), m.ID(), meal.MealTypeLunch, gomock.Any(), gomock.Any()).Return(false, nil)
	s.ledger.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.cmds.RecordMeal(context.Background(), commands.RecordMealInput{CardCode: s.codec.Encode(m.ID()), Method: "card"})
	s.Require().NoError(err)
	s.Equal(m.ID(), res.MemberID)
}

func (s *MealCommandsTestSuite) TestRecordMealInvalidInput() {
	cases := []struct {
		name string
		in   commands.RecordMealInput
	}{
		{name: "unknown method", in: commands.RecordMealInput{UserID: uuid.New(), Method: "fingerprint"}},
		{name: "missing user", in: commands.RecordMealInput{Method: "face"}},
		{name: "undecodable card", in: commands.RecordMealInput{CardCode: "MC-0OIl", Method: "card"}},
		{name: "card and user disagree", in: commands.RecordMealInput{UserID: uuid.New(), CardCode: s.codec.Encode(uuid.New()), Method: "card"}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.cmds.RecordMeal(context.Background(), tc.in)
			s.Require().ErrorIs(err, meal.ErrInvalidArgument)
		})
	}
}

func (s *MealCommandsTestSuite) TestRecordMealRefusals() {
	s.Run("member not found", func() {
		id := uuid.New()
		s.reads.EXPECT().MemberByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("find member", nil, infra.KindNotFound))

		_, err := s.cmds.RecordMeal(context.Background(), commands.RecordMealInput{UserID: id, Method: "face"})
		s.Require().ErrorIs(err, meal.ErrMemberNotFound)
	})

	s.Run("member of another company is hidden from the principal", func() {
		m := s.eligibleMember(nil)
		other := uuid.New()
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)

		_, err := s.cmds.RecordMeal(context.Background(), commands.RecordMealInput{
			UserID:    m.ID(),
			Method:    "face",
			Principal: &admin.Principal{ID: uuid.New(), Kind: admin.KindMealCollector, CompanyID: &other},
		})
		s.Require().ErrorIs(err, meal.ErrMemberNotFound)
	})

	s.Run("no active package", func() {
		m := builder.NewMemberBuilder().MustBuild()
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)

		_, err := s.cmds.RecordMeal(context.Background(), commands.RecordMealInput{UserID: m.ID(), Method: "face"})
		s.Require().ErrorIs(err, meal.ErrNoActivePackage)
	})

	s.Run("company not linked", func() {
		mb := builder.NewMemberBuilder()
		mb.WithAssignment(builder.AssignmentSpec{
			Package: builder.NewPackageBuilder().MustBuild(),
			Start:   lunchTime.AddDate(0, 0, -1),
			End:     lunchTime.AddDate(0, 0, 1),
		})
		m := mb.MustBuild()
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)

		_, err := s.cmds.RecordMeal(context.Background(), commands.RecordMealInput{UserID: m.ID(), Method: "face"})
		s.Require().ErrorIs(err, meal.ErrCompanyNotLinked)
	})

	s.Run("method not allowed carries policy and attempt", func() {
		m := s.eligibleMember(func(_ *builder.MemberBuilder, _ *builder.PackageBuilder, p *company.Policy) {
			*p = company.PolicyFace
		})
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)

		_, err := s.cmds.RecordMeal(context.Background(), commands.RecordMealInput{UserID: m.ID(), Method: "card"})
		s.Require().ErrorIs(err, meal.ErrMethodNotAllowed)
		var notAllowed *meal.MethodNotAllowedError
		s.Require().ErrorAs(err, &notAllowed)
		s.Equal("face", notAllowed.Policy)
		s.Equal(meal.MethodCard, notAllowed.Attempted)
	})

	s.Run("fee flag unpaid", func() {
		m := s.eligibleMember(func(mb *builder.MemberBuilder, _ *builder.PackageBuilder, _ *company.Policy) {
			mb.WithFeeUnpaid()
		})
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)

		_, err := s.cmds.RecordMeal(context.Background(), commands.RecordMealInput{UserID: m.ID(), Method: "face"})
		s.Require().ErrorIs(err, meal.ErrFeesUnpaid)
	})

	s.Run("pending fee record despite paid flag", func() {
		m := s.eligibleMember(nil)
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().HasPendingFee(gomock.Any(), m.ID()).Return(true, nil)

		_, err := s.cmds.RecordMeal(context.Background(), commands.RecordMealInput{UserID: m.ID(), Method: "face"})
		s.Require().ErrorIs(err, meal.ErrFeesPending)
	})

	s.Run("package without windows", func() {
		m := s.eligibleMember(func(_ *builder.MemberBuilder, pb *builder.PackageBuilder, _ *company.Policy) {
			pb.WithoutWindows()
		})
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().HasPendingFee(gomock.Any(), m.ID()).Return(false, nil)

		_, err := s.cmds.RecordMeal(context.Background(), commands.RecordMealInput{UserID: m.ID(), Method: "face"})
		s.Require().ErrorIs(err, meal.ErrNoMealsConfigured)
	})

	s.Run("outside every window", func() {
		m := s.eligibleMember(func(_ *builder.MemberBuilder, pb *builder.PackageBuilder, _ *company.Policy) {
			pb.WithWindows(builder.WindowSpec{MealType: meal.MealTypeDinner, Enabled: true, Start: "19:00", End: "21:00", Days: builder.EveryDay()})
		})
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().HasPendingFee(gomock.Any(), m.ID()).Return(false, nil)

		_, err := s.cmds.RecordMeal(context.Background(), commands.RecordMealInput{UserID: m.ID(), Method: "face"})
		s.Require().ErrorIs(err, meal.ErrNoMealAtThisTime)
	})

	s.Run("nothing scheduled today", func() {
		m := s.eligibleMember(func(_ *builder.MemberBuilder, pb *builder.PackageBuilder, _ *company.Policy) {
			pb.WithWindows(builder.WindowSpec{MealType: meal.MealTypeLunch, Enabled: true, Start: "12:00", End: "14:00", Days: []string{"saturday", "sunday"}})
		})
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().HasPendingFee(gomock.Any(), m.ID()).Return(false, nil)

		_, err := s.cmds.RecordMeal(context.Background(), commands.RecordMealInput{UserID: m.ID(), Method: "face"})
		s.Require().ErrorIs(err, meal.ErrNoMealScheduledToday)
	})

	s.Run("already collected today", func() {
		m := s.eligibleMember(nil)
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().HasPendingFee(gomock.Any(), m.ID()).Return(false, nil)
		s.reads.EXPECT().MealCollectedBetween(gomock.Any(), m.ID(), meal.MealTypeLunch, gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := s.cmds.RecordMeal(context.Background(), commands.RecordMealInput{UserID: m.ID(), Method: "face"})
		s.Require().ErrorIs(err, meal.ErrAlreadyCollectedToday)
		var already *meal.AlreadyCollectedError
		s.Require().ErrorAs(err, &already)
		s.Equal(meal.MealTypeLunch, already.MealType)
	})
}

func (s *MealCommandsTestSuite) TestRecordMealStorageOutcomes() {
	s.Run("unique index violation on insert reads as already collected", func() {
		m := s.eligibleMember(nil)
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().HasPendingFee(gomock.Any(), m.ID()).Return(false, nil)
		s.reads.EXPECT().MealCollectedBetween(gomock.Any(), m.ID(), meal.MealTypeLunch, gomock.Any(), gomock.Any()).Return(false, nil)
		s.ledger.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("meal already recorded for this civil day", errors.New("23505"), infra.KindDuplicateKey))

		_, err := s.cmds.RecordMeal(context.Background(), commands.RecordMealInput{UserID: m.ID(), Method: "face"})
		s.Require().ErrorIs(err, meal.ErrAlreadyCollectedToday)
	})

	s.Run("storage failure is reported as a generic failure", func() {
		m := s.eligibleMember(nil)
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().HasPendingFee(gomock.Any(), m.ID()).Return(false, errors.New("connection reset"))

		_, err := s.cmds.RecordMeal(context.Background(), commands.RecordMealInput{UserID: m.ID(), Method: "face"})
		s.Require().ErrorIs(err, commands.ErrRecordFailed)
		s.NotErrorIs(err, commands.ErrRecordTimeout)
	})

	s.Run("deadline expiry is an unknown outcome", func() {
		m := s.eligibleMember(nil)
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().HasPendingFee(gomock.Any(), m.ID()).Return(false, nil)
		s.reads.EXPECT().MealCollectedBetween(gomock.Any(), m.ID(), meal.MealTypeLunch, gomock.Any(), gomock.Any()).Return(false, nil)
		s.ledger.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded)

		_, err := s.cmds.RecordMeal(context.Background(), commands.RecordMealInput{UserID: m.ID(), Method: "face"})
		s.Require().ErrorIs(err, commands.ErrRecordTimeout)
	})

	s.Run("configured timeout bounds the procedure", func() {
		cmds := commands.NewMealCommands(s.uow, s.calendar, s.codec, time.Millisecond)
		m := s.eligibleMember(nil)
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).
			DoAndReturn(func(ctx context.Context, _ uuid.UUID) (*member.Member, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			})

		_, err := cmds.RecordMeal(context.Background(), commands.RecordMealInput{UserID: m.ID(), Method: "face"})
		s.Require().ErrorIs(err, commands.ErrRecordTimeout)
	})
}
