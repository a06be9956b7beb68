package cli

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireFlags(t *testing.T) {
	fs := NewFlagSet("test", "Test command.", io.Discard)
	customerID := fs.StringP("customer_id", "c", "", "The Google Ads customer ID.")
	fs.String("campaign_id", "", "The campaign ID.")
	fs.String("criterion_id", "", "The criterion ID.")

	require.NoError(t, fs.Parse([]string{"-c", "123", "--criterion_id="}))

	assert.Equal(t, "123", *customerID)
	err := RequireFlags(fs, "customer_id", "campaign_id", "criterion_id")
	require.Error(t, err)
	assert.Equal(t, "missing required flags: --campaign_id, --criterion_id", err.Error())

	assert.NoError(t, RequireFlags(fs, "customer_id"))
}

func TestNewFlagSet_ParseErrorDoesNotExit(t *testing.T) {
	fs := NewFlagSet("test", "Test command.", io.Discard)

	err := fs.Parse([]string{"--unknown"})
	assert.Error(t, err)
}
