//go:build unit

package admin_test

import (
	"testing"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindAtLeast(t *testing.T) {
	assert.True(t, admin.KindSuperadmin.AtLeast(admin.KindAdmin))
	assert.True(t, admin.KindManager.AtLeast(admin.KindManager))
	assert.True(t, admin.KindManager.AtLeast(admin.KindMealCollector))
	assert.False(t, admin.KindMealCollector.AtLeast(admin.KindManager))
	assert.False(t, admin.Kind("guest").AtLeast(admin.KindMealCollector))

	_, err := admin.NewKind("owner")
	require.ErrorIs(t, err, admin.ErrInvalidKind)
}

func TestPrincipalCanAccessCompany(t *testing.T) {
	own := uuid.New()
	other := uuid.New()

	p := builder.NewAdminBuilder().WithCompanyID(&own).BuildPrincipal()
	assert.True(t, p.CanAccessCompany(own))
	assert.False(t, p.CanAccessCompany(other))

	super := builder.NewAdminBuilder().WithKind(admin.KindSuperadmin).WithoutCompany().BuildPrincipal()
	assert.True(t, super.CanAccessCompany(other))

	orphan := builder.NewAdminBuilder().WithoutCompany().BuildPrincipal()
	assert.False(t, orphan.CanAccessCompany(own))
}

func TestNewAdmin(t *testing.T) {
	a, err := builder.NewAdminBuilder().BuildDomain()
	require.NoError(t, err)
	assert.True(t, a.IsActive())
	assert.Nil(t, a.LastLogin())

	_, err = builder.NewAdminBuilder().WithKind("owner").BuildDomain()
	require.ErrorIs(t, err, admin.ErrInvalidKind)

	_, err = builder.NewAdminBuilder().WithEmail("not-an-email").BuildDomain()
	require.Error(t, err)
}
