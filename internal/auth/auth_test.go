package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentlab/internal/catalog"
)

func TestIssueAndParse(t *testing.T) {
	m := NewManager("test-secret")
	token, err := m.Issue(catalog.RoleLeader)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	role, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, catalog.RoleLeader, role)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	token, err := NewManager("secret-a").Issue(catalog.RoleCollaborator)
	require.NoError(t, err)

	_, err = NewManager("secret-b").Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewManager("test-secret").Parse("not.a.token")
	assert.Error(t, err)
}

func TestEmptySecretFallsBackToDevSecret(t *testing.T) {
	token, err := NewManager("").Issue(catalog.RoleLeader)
	require.NoError(t, err)
	role, err := NewManager("").Parse(token)
	require.NoError(t, err)
	assert.Equal(t, catalog.RoleLeader, role)
}
