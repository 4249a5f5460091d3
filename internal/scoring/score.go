package scoring

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scorer/internal/types"
)

// sectionScorer is one of the seven pure section scorers.
type sectionScorer func(*types.ResumeDocument) types.SectionScore

// scorers lists the seven section scorers in report order. Evaluation order
// never affects output: no scorer observes another's result.
var scorers = []sectionScorer{
	scoreHeader,
	scoreSummary,
	scoreExperience,
	scoreEducation,
	scoreSkills,
	scoreFormatting,
	scoreContent,
}

// Score runs all seven section scorers sequentially and aggregates the
// report. It is a total function: empty strings are valid input, not errors,
// and the same document always produces the same report.
func Score(doc *types.ResumeDocument) *types.ATSScoreReport {
	sections := make([]types.SectionScore, len(scorers))
	for i, scorer := range scorers {
		sections[i] = scorer(doc)
	}
	return aggregate(sections)
}

// ScoreParallel runs the section scorers concurrently. The scorers share no
// state, so the result is identical to Score for every document; tests
// assert this equivalence.
func ScoreParallel(ctx context.Context, doc *types.ResumeDocument) (*types.ATSScoreReport, error) {
	g, _ := errgroup.WithContext(ctx)

	sections := make([]types.SectionScore, len(scorers))
	for i, scorer := range scorers {
		g.Go(func() error {
			sections[i] = scorer(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return aggregate(sections), nil
}
