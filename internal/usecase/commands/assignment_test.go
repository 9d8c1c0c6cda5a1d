//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"canteen-backoffice/internal/domain/company"
	"canteen-backoffice/internal/domain/member"
	"canteen-backoffice/internal/infra"
	"canteen-backoffice/internal/pkg/civil"
	"canteen-backoffice/internal/usecase/commands"
	"canteen-backoffice/internal/usecase/shared"
	"canteen-backoffice/tests/common/builder"
	sharedmock "canteen-backoffice/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AssignmentCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	assignments *sharedmock.MockAssignmentRepository
	now         time.Time
	cmds        commands.AssignmentCommands
}

func (s *AssignmentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.assignments = sharedmock.NewMockAssignmentRepository(s.ctrl)

	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Assignments().Return(s.assignments).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()

	s.now = time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	cal := civil.NewCalendar(civil.NewMockClock(s.now), "Asia/Kolkata", 19800)
	s.cmds = commands.NewAssignmentCommands(s.uow, cal)
}

func (s *AssignmentCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAssignmentCommandsSuite(t *testing.T) {
	suite.Run(t, new(AssignmentCommandsTestSuite))
}

func (s *AssignmentCommandsTestSuite) TestAssignPackage() {
	mb := builder.NewMemberBuilder()
	m := mb.MustBuild()
	co := mb.Company(company.PolicyBoth)
	pkg := builder.NewPackageBuilder().WithCompanyID(m.CompanyID()).MustBuild()
	principal := builder.NewAdminBuilder().WithCompanyID(ptr(m.CompanyID())).BuildPrincipal()

	s.Run("starting in the future is scheduled", func() {
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().PackageByID(gomock.Any(), pkg.ID()).Return(pkg, nil)
		s.reads.EXPECT().CompanyByID(gomock.Any(), m.CompanyID()).Return(co, nil)
		s.assignments.EXPECT().Create(gomock.Any(), gomock.Any(), m.ID(), gomock.Any()).Return(nil)

		res, err := s.cmds.AssignPackage(context.Background(), commands.AssignPackageInput{
			MemberID:  m.ID(),
			PackageID: pkg.ID(),
			Start:     s.now.AddDate(0, 0, 1),
			End:       s.now.AddDate(0, 1, 0),
			Principal: principal,
		})
		s.Require().NoError(err)
		s.Equal(member.AssignmentScheduled, res.Status)
	})

	s.Run("location implies its place", func() {
		placeID := uuid.New()
		locationID := uuid.New()
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().PackageByID(gomock.Any(), pkg.ID()).Return(pkg, nil)
		s.reads.EXPECT().CompanyByID(gomock.Any(), m.CompanyID()).Return(co, nil)
		s.reads.EXPECT().LocationPlace(gomock.Any(), locationID).Return(placeID, nil)
		s.reads.EXPECT().PlaceCompany(gomock.Any(), placeID).Return(m.CompanyID(), nil)
		s.assignments.EXPECT().Create(gomock.Any(), gomock.Any(), m.ID(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, a *member.Assignment) error {
				s.Require().NotNil(a.PlaceID())
				s.Equal(placeID, *a.PlaceID())
				return nil
			})

		res, err := s.cmds.AssignPackage(context.Background(), commands.AssignPackageInput{
			MemberID:   m.ID(),
			PackageID:  pkg.ID(),
			LocationID: &locationID,
			Start:      s.now.AddDate(0, 0, -1),
			End:        s.now.AddDate(0, 1, 0),
			Principal:  principal,
		})
		s.Require().NoError(err)
		s.Equal(member.AssignmentActive, res.Status)
	})

	s.Run("package of another company", func() {
		foreign := builder.NewPackageBuilder().MustBuild()
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().PackageByID(gomock.Any(), foreign.ID()).Return(foreign, nil)

		_, err := s.cmds.AssignPackage(context.Background(), commands.AssignPackageInput{
			MemberID:  m.ID(),
			PackageID: foreign.ID(),
			Start:     s.now,
			End:       s.now,
			Principal: principal,
		})
		s.Require().ErrorIs(err, commands.ErrAssignmentOutOfScope)
	})

	s.Run("unknown package", func() {
		id := uuid.New()
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().PackageByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("package", nil, infra.KindNotFound))

		_, err := s.cmds.AssignPackage(context.Background(), commands.AssignPackageInput{
			MemberID:  m.ID(),
			PackageID: id,
			Start:     s.now,
			End:       s.now,
			Principal: principal,
		})
		s.Require().ErrorIs(err, commands.ErrPackageNotFound)
	})

	s.Run("end before start", func() {
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().PackageByID(gomock.Any(), pkg.ID()).Return(pkg, nil)
		s.reads.EXPECT().CompanyByID(gomock.Any(), m.CompanyID()).Return(co, nil)

		_, err := s.cmds.AssignPackage(context.Background(), commands.AssignPackageInput{
			MemberID:  m.ID(),
			PackageID: pkg.ID(),
			Start:     s.now,
			End:       s.now.Add(-time.Hour),
			Principal: principal,
		})
		s.Require().ErrorIs(err, commands.ErrInvalidAssignmentSpec)
	})
}

func (s *AssignmentCommandsTestSuite) TestRemoveAssignment() {
	m := builder.NewMemberBuilder().MustBuild()
	principal := builder.NewAdminBuilder().WithCompanyID(ptr(m.CompanyID())).BuildPrincipal()
	assignmentID := uuid.New()

	s.Run("soft removal cancels", func() {
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
		s.assignments.EXPECT().Cancel(gomock.Any(), gomock.Any(), m.ID(), assignmentID).Return(true, nil)

		s.Require().NoError(s.cmds.RemoveAssignment(context.Background(), m.ID(), assignmentID, false, principal))
	})

	s.Run("hard removal deletes", func() {
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
		s.assignments.EXPECT().Delete(gomock.Any(), gomock.Any(), m.ID(), assignmentID).Return(true, nil)

		s.Require().NoError(s.cmds.RemoveAssignment(context.Background(), m.ID(), assignmentID, true, principal))
	})

	s.Run("unknown assignment", func() {
		s.reads.EXPECT().MemberByID(gomock.Any(), m.ID()).Return(m, nil)
		s.assignments.EXPECT().Cancel(gomock.Any(), gomock.Any(), m.ID(), assignmentID).Return(false, nil)

		err := s.cmds.RemoveAssignment(context.Background(), m.ID(), assignmentID, false, principal)
		s.Require().ErrorIs(err, commands.ErrAssignmentNotFound)
	})
}
