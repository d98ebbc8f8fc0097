package peer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/ha/matchd/matching"
	_ "github.com/ha/matchd/quiet"
)

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(
		`{"proposers": [[0, 1], [0, 1]], "acceptors": [[0, 1], [1, 0]]}`))
	assert.Equal(t, nil, err)
	assert.Equal(t, matching.Prefs{{0, 1}, {0, 1}}, c.Proposers)
	assert.Equal(t, matching.Prefs{{0, 1}, {1, 0}}, c.Acceptors)
}

func TestLoadRejectsGarbage(t *testing.T) {
	_, err := Load(strings.NewReader(`{"proposers": [[`))
	assert.T(t, err != nil)
}

func TestRandomPrefsAreValidConfig(t *testing.T) {
	for n := 1; n <= 6; n++ {
		_, err := matching.New(RandomPrefs(n, 7), RandomPrefs(n, 8))
		assert.Equal(t, nil, err)
	}
}

func TestRunWritesPairingTable(t *testing.T) {
	var buf bytes.Buffer
	err := Run(
		matching.Prefs{{0, 1}, {0, 1}},
		matching.Prefs{{0, 1}, {1, 0}},
		&buf,
	)
	assert.Equal(t, nil, err)
	assert.Equal(t, "p0 a0\np1 a1\n", buf.String())
}

func TestRunRejectsBadConfig(t *testing.T) {
	var buf bytes.Buffer
	err := Run(matching.Prefs{{0}}, matching.Prefs{}, &buf)
	assert.T(t, err != nil)
	assert.Equal(t, "", buf.String())
}
