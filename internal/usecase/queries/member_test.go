//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/infra"
	"canteen-backoffice/internal/pkg/cardcode"
	"canteen-backoffice/internal/pkg/civil"
	"canteen-backoffice/internal/usecase/queries"
	queriesmock "canteen-backoffice/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MemberQueriesTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	members   *queriesmock.MockMemberReadStore
	entries   *queriesmock.MockMealEntryReadStore
	calendar  *civil.Calendar
	codec     *cardcode.Codec
	q         queries.MemberQueries
	companyID uuid.UUID
	collector admin.Principal
	summary   *queries.MemberSummary
}

func (s *MemberQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.members = queriesmock.NewMockMemberReadStore(s.ctrl)
	s.entries = queriesmock.NewMockMealEntryReadStore(s.ctrl)
	s.calendar = civil.NewCalendar(civil.NewMockClock(time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)), "Asia/Kolkata", 19800)
	s.codec = cardcode.NewCodec("MC-")
	s.q = queries.NewMemberQueries(s.members, s.entries, s.calendar, s.codec, 31)

	s.companyID = uuid.New()
	s.collector = admin.Principal{ID: uuid.New(), Kind: admin.KindMealCollector, CompanyID: &s.companyID}
	s.summary = &queries.MemberSummary{ID: uuid.New(), CompanyID: s.companyID, Name: "Asha", IsFeePaid: true, IsActive: true}
}

func (s *MemberQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMemberQueriesSuite(t *testing.T) {
	suite.Run(t, new(MemberQueriesTestSuite))
}

func (s *MemberQueriesTestSuite) TestMealEntries() {
	s.Run("今日の記録を返す", func() {
		from, to := s.calendar.DayBounds(s.calendar.Now())
		rows := []queries.MealEntryView{
			{ID: uuid.New(), MemberID: s.summary.ID, MealType: meal.MealTypeBreakfast.String(), Method: "face", Status: "success"},
			{ID: uuid.New(), MemberID: s.summary.ID, MealType: meal.MealTypeLunch.String(), Method: "card", Status: "success"},
		}
		s.members.EXPECT().FindSummary(gomock.Any(), s.summary.ID).Return(s.summary, nil)
		s.entries.EXPECT().ListByMember(gomock.Any(), s.summary.ID, from, to).Return(rows, nil)

		got, err := s.q.MealEntries(context.Background(), s.collector, s.summary.ID, queries.MealEntryFilter{})
		s.Require().NoError(err)
		s.Len(got, 2)
	})

	s.Run("食事種別で絞り込む", func() {
		rows := []queries.MealEntryView{
			{ID: uuid.New(), MealType: meal.MealTypeBreakfast.String()},
			{ID: uuid.New(), MealType: meal.MealTypeLunch.String()},
		}
		s.members.EXPECT().FindSummary(gomock.Any(), s.summary.ID).Return(s.summary, nil)
		s.entries.EXPECT().ListByMember(gomock.Any(), s.summary.ID, gomock.Any(), gomock.Any()).Return(rows, nil)

		got, err := s.q.MealEntries(context.Background(), s.collector, s.summary.ID, queries.MealEntryFilter{MealType: "lunch"})
		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.Equal("lunch", got[0].MealType)
	})

	s.Run("不明な食事種別", func() {
		s.members.EXPECT().FindSummary(gomock.Any(), s.summary.ID).Return(s.summary, nil)
		s.entries.EXPECT().ListByMember(gomock.Any(), s.summary.ID, gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := s.q.MealEntries(context.Background(), s.collector, s.summary.ID, queries.MealEntryFilter{MealType: "brunch"})
		s.Require().ErrorIs(err, meal.ErrInvalidMealType)
	})

	s.Run("逆転した期間", func() {
		from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		to := from.Add(-time.Minute)
		s.members.EXPECT().FindSummary(gomock.Any(), s.summary.ID).Return(s.summary, nil)

		_, err := s.q.MealEntries(context.Background(), s.collector, s.summary.ID, queries.MealEntryFilter{From: &from, To: &to})
		s.Require().ErrorIs(err, queries.ErrInvalidRange)
	})
}

func (s *MemberQueriesTestSuite) TestAuthorization() {
	s.Run("存在しないメンバー", func() {
		s.members.EXPECT().FindSummary(gomock.Any(), s.summary.ID).
			Return(nil, infra.WrapRepoErr("failed to find member", pgx.ErrNoRows))

		_, err := s.q.Card(context.Background(), s.collector, s.summary.ID)
		s.Require().ErrorIs(err, queries.ErrMemberNotFound)
	})

	s.Run("他社のメンバー", func() {
		other := uuid.New()
		outsider := admin.Principal{ID: uuid.New(), Kind: admin.KindAdmin, CompanyID: &other}
		s.members.EXPECT().FindSummary(gomock.Any(), s.summary.ID).Return(s.summary, nil)

		_, err := s.q.MealEntries(context.Background(), outsider, s.summary.ID, queries.MealEntryFilter{})
		s.Require().ErrorIs(err, queries.ErrMemberForbidden)
	})

	s.Run("スーパー管理者はどの会社も参照できる", func() {
		super := admin.Principal{ID: uuid.New(), Kind: admin.KindSuperadmin}
		s.members.EXPECT().FindSummary(gomock.Any(), s.summary.ID).Return(s.summary, nil)

		card, err := s.q.Card(context.Background(), super, s.summary.ID)
		s.Require().NoError(err)
		s.Equal("Asha", card.Name)
	})
}

func (s *MemberQueriesTestSuite) TestCardCodeRoundTrip() {
	s.members.EXPECT().FindSummary(gomock.Any(), s.summary.ID).Return(s.summary, nil)

	card, err := s.q.Card(context.Background(), s.collector, s.summary.ID)
	s.Require().NoError(err)
	s.Contains(card.Code, "MC-")

	decoded, err := s.codec.Decode(card.Code)
	s.Require().NoError(err)
	s.Equal(s.summary.ID, decoded)
}
