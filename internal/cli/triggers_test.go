// internal/cli/triggers_test.go
package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xibbaz/internal/objects"
)

func TestTargetHostDefaultsToLocalHostname(t *testing.T) {
	name, err := targetHost([]string{"web1"})
	require.NoError(t, err)
	assert.Equal(t, "web1", name)

	local, err := os.Hostname()
	require.NoError(t, err)
	name, err = targetHost(nil)
	require.NoError(t, err)
	assert.Equal(t, local, name)
}

func TestDescriptionSubstitutesHostName(t *testing.T) {
	trig, err := objects.New(nil, objects.KindTrigger, map[string]any{
		"triggerid":   "1",
		"description": "{HOST.NAME} is unreachable",
	})
	require.NoError(t, err)
	h1, err := objects.New(nil, objects.KindHost, map[string]any{"hostid": "10", "name": "web1"})
	require.NoError(t, err)
	h2, err := objects.New(nil, objects.KindHost, map[string]any{"hostid": "11", "name": "web2"})
	require.NoError(t, err)

	assert.Equal(t, "web1, web2 is unreachable", description(trig, []*objects.Object{h1, h2}))
	assert.Equal(t, "{HOST.NAME} is unreachable", description(trig, nil))
}

func TestPropLabelFallsBackToRawValue(t *testing.T) {
	trig, err := objects.New(nil, objects.KindTrigger, map[string]any{
		"triggerid":   "1",
		"description": "d",
		"priority":    "4",
		"expression":  "{x}>0",
	})
	require.NoError(t, err)

	assert.Equal(t, "high", propLabel(trig, "priority"))
	assert.Equal(t, "{x}>0", propLabel(trig, "expression"))
	assert.Equal(t, "", propLabel(trig, "state"))
	assert.Equal(t, int64(4), propInt(trig, "priority"))
	assert.Equal(t, int64(0), propInt(trig, "state"))
}
