package featureflags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabled_BooleanValues(t *testing.T) {
	m := NewManager("a=on,b=off,c=true,d=false,e=1,f=0,bare")

	for _, name := range []string{"a", "c", "e", "bare"} {
		assert.True(t, m.Enabled(name, 1), name)
	}
	for _, name := range []string{"b", "d", "f", "missing"} {
		assert.False(t, m.Enabled(name, 1), name)
	}
}

func TestEnabled_PercentageValues(t *testing.T) {
	m := NewManager("always=100%,never=0%,canary=25%,junk=x%")

	assert.True(t, m.Enabled("always", 1))
	assert.False(t, m.Enabled("never", 1))
	assert.False(t, m.Enabled("junk", 1))

	first := m.Enabled("canary", 42)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, m.Enabled("canary", 42), "rollout evaluation must be deterministic per user")
	}
	assert.False(t, m.Enabled("canary", 0), "percentage rollout requires non-zero userID")
}

func TestEnabledForAll(t *testing.T) {
	m := NewManager(RealtimeNotifications + "=on," + ReputationLeaderboard + "=50%,full=100%")

	assert.True(t, m.EnabledForAll(RealtimeNotifications))
	assert.False(t, m.EnabledForAll(ReputationLeaderboard))
	assert.True(t, m.EnabledForAll("full"))

	var nilManager *Manager
	assert.False(t, nilManager.EnabledForAll(RealtimeNotifications))
}

func TestParseAndSnapshot(t *testing.T) {
	m := NewManager(" =on ,x=on, y = 20% ,z=off ")

	assert.Equal(t, map[string]string{"x": "on", "y": "20%", "z": "off"}, m.Raw())
	assert.Len(t, m.Snapshot(123), 3)
}
