// Package peer bootstraps whole matching runs: it loads or generates
// preference tables, executes the protocol, and writes the final
// pairing table.
package peer

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"

	"github.com/ha/matchd/matching"
)

// Config is the on-disk form of one problem instance. Each row is a
// full permutation of the opposite population, most preferred first.
type Config struct {
	Proposers matching.Prefs `json:"proposers"`
	Acceptors matching.Prefs `json:"acceptors"`
}

// Load reads a Config from r. Shape and permutation errors surface
// later, from matching.New, so that validation lives in one place.
func Load(r io.Reader) (*Config, error) {
	var c Config
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// RandomPrefs builds n random full preference lists using the given
// seed, one permutation per member.
func RandomPrefs(n int, seed int64) matching.Prefs {
	rng := rand.New(rand.NewSource(seed))
	p := make(matching.Prefs, n)
	for i := range p {
		row := make([]int32, n)
		for j, x := range rng.Perm(n) {
			row[j] = int32(x)
		}
		p[i] = row
	}
	return p
}

// Run executes one instance to completion and writes the final
// matching to w, one "p<i> a<j>" line per pair.
func Run(pprefs, aprefs matching.Prefs, w io.Writer) error {
	m, err := matching.New(pprefs, aprefs)
	if err != nil {
		return err
	}
	pairs, err := m.Run()
	if err != nil {
		return err
	}
	for p, a := range pairs {
		fmt.Fprintf(w, "p%d a%d\n", p, a)
	}
	return nil
}
