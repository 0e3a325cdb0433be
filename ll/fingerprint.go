package ll

import (
	"fmt"

	"github.com/cnf/structhash"
)

// analysisDigest is the hashable representation of an analysis. structhash
// walks exported fields only, so sets are rendered to strings first.
type analysisDigest struct {
	Grammar     string
	Start       string
	Productions []string
	First       []string
	Follow      []string
}

// Fingerprint returns a hash over the productions and the FIRST and FOLLOW sets
// of an analysis. Analysing an unchanged grammar twice yields the same
// fingerprint.
func (ga *LLAnalysis) Fingerprint() (string, error) {
	g := ga.g
	d := analysisDigest{
		Grammar: g.Name,
		Start:   g.start.Name,
	}
	for _, p := range g.productions {
		d.Productions = append(d.Productions, p.String())
	}
	for _, A := range g.nonterminals {
		d.First = append(d.First, A.Name+" "+g.SetString(ga.first.sets[A.Value]))
		d.Follow = append(d.Follow, A.Name+" "+g.SetString(ga.follow.sets[A.Value]))
	}
	hash, err := structhash.Hash(d, 1)
	if err != nil {
		return "", fmt.Errorf("cannot fingerprint analysis of %q: %w", g.Name, err)
	}
	return hash, nil
}
