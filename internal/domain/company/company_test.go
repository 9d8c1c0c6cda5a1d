//go:build unit

package company_test

import (
	"testing"

	"canteen-backoffice/internal/domain/company"
	"canteen-backoffice/internal/domain/meal"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicy(t *testing.T) {
	p, err := company.NewPolicy("")
	require.NoError(t, err)
	assert.Equal(t, company.PolicyFace, p)

	p, err = company.NewPolicy(" Both ")
	require.NoError(t, err)
	assert.Equal(t, company.PolicyBoth, p)

	_, err = company.NewPolicy("fingerprint")
	require.ErrorIs(t, err, company.ErrInvalidPolicy)
}

func TestCheckMethod(t *testing.T) {
	tests := []struct {
		policy  company.Policy
		method  meal.Method
		allowed bool
	}{
		{policy: company.PolicyFace, method: meal.MethodFace, allowed: true},
		{policy: company.PolicyFace, method: meal.MethodCard, allowed: false},
		{policy: company.PolicyCard, method: meal.MethodCard, allowed: true},
		{policy: company.PolicyCard, method: meal.MethodFace, allowed: false},
		{policy: company.PolicyBoth, method: meal.MethodFace, allowed: true},
		{policy: company.PolicyBoth, method: meal.MethodCard, allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String()+"/"+tt.method.String(), func(t *testing.T) {
			c, err := company.NewCompany(uuid.New(), "Acme", tt.policy)
			require.NoError(t, err)

			err = c.CheckMethod(tt.method)
			if tt.allowed {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, meal.ErrMethodNotAllowed)
			var notAllowed *meal.MethodNotAllowedError
			require.ErrorAs(t, err, &notAllowed)
			assert.Equal(t, tt.policy.String(), notAllowed.Policy)
			assert.Equal(t, tt.method, notAllowed.Attempted)
		})
	}

	t.Run("unset policy falls back to face", func(t *testing.T) {
		c, err := company.NewCompany(uuid.New(), "Acme", "")
		require.NoError(t, err)
		assert.Equal(t, company.PolicyFace, c.Policy())
		require.ErrorIs(t, c.CheckMethod(meal.MethodCard), meal.ErrMethodNotAllowed)
	})
}
