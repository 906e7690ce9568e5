package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownForm(t *testing.T) {
	policy, err := Default().Lookup("KdYBmq7K")
	require.NoError(t, err)
	assert.Equal(t, "Growth Strategy Assessment", policy.Name)
	assert.Equal(t, "KdYBmq7K.txt", policy.PromptTemplate)
	assert.NotEmpty(t, policy.EmailSubject)
	assert.NotEmpty(t, policy.FromEmail)
}

func TestLookup_UnknownForm(t *testing.T) {
	_, err := Default().Lookup("Unknown999")
	assert.ErrorIs(t, err, ErrUnknownForm)
}

func TestLookup_CaseSensitive(t *testing.T) {
	_, err := Default().Lookup("kdybmq7k")
	assert.ErrorIs(t, err, ErrUnknownForm)
}

func TestSupportedIDs_Sorted(t *testing.T) {
	ids := Default().SupportedIDs()
	assert.Equal(t, []string{"EquFr0aR", "KdYBmq7K", "Tikf2fbS"}, ids)
}
