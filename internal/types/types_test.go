package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ERROR", SeverityError.String())
	assert.Equal(t, "WARNING", SeverityWarning.String())
	assert.Equal(t, "INFO", SeverityInfo.String())
	assert.Equal(t, "Severity(9)", Severity(9).String())
}

func TestSeverityText(t *testing.T) {
	t.Parallel()

	var s Severity
	require.NoError(t, s.UnmarshalText([]byte("warning")))
	assert.Equal(t, SeverityWarning, s)
	assert.Error(t, s.UnmarshalText([]byte("fatal")))

	out, err := json.Marshal(Issue{Rule: "foreach-to-index", Severity: SeverityInfo})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"severity":"info"`)
	assert.NotContains(t, string(out), "suggestion")
}
