package service

import (
	"testing"

	"github.com/just-nibble/github-link/internal/adapters/api"
	"github.com/stretchr/testify/assert"
)

func sampleIssues() []api.Issue {
	return []api.Issue{
		{
			ID:     1,
			Number: 1,
			Title:  "Crash on login",
			Body:   "The app crashes when the password field is empty",
			State:  "open",
			Labels: []api.Label{{Name: "bug", Color: "d73a4a"}},
			User:   api.User{Login: "octocat"},
		},
		{
			ID:     2,
			Number: 2,
			Title:  "Add dark mode",
			Body:   "A dark theme would be nice",
			State:  "open",
			Labels: []api.Label{{Name: "enhancement", Color: "a2eeef"}},
			User:   api.User{Login: "hubot"},
		},
		{
			ID:     3,
			Number: 3,
			Title:  "Fix typo in README",
			Body:   "",
			State:  "closed",
			Labels: []api.Label{{Name: "bug", Color: "d73a4a"}, {Name: "documentation", Color: "0075ca"}},
			User:   api.User{Login: "octocat"},
		},
		{
			ID:     4,
			Number: 4,
			Title:  "Update dependencies",
			Body:   "gorm is a few versions behind",
			State:  "closed",
			Labels: nil,
			User:   api.User{Login: "dependabot"},
		},
	}
}

func idSet(issues []api.Issue) map[int64]bool {
	ids := make(map[int64]bool, len(issues))
	for _, issue := range issues {
		ids[issue.ID] = true
	}
	return ids
}

func TestFilterIssuesEmptyCriteriaIsIdentity(t *testing.T) {
	issues := sampleIssues()

	filtered := FilterIssues(issues, IssueFilter{State: IssueStateAll})

	assert.Equal(t, idSet(issues), idSet(filtered))
}

func TestFilterIssuesByState(t *testing.T) {
	open := FilterIssues(sampleIssues(), IssueFilter{State: IssueStateOpen})
	assert.Equal(t, map[int64]bool{1: true, 2: true}, idSet(open))

	closed := FilterIssues(sampleIssues(), IssueFilter{State: IssueStateClosed})
	assert.Equal(t, map[int64]bool{3: true, 4: true}, idSet(closed))
}

func TestFilterIssuesByLabels(t *testing.T) {
	filtered := FilterIssues(sampleIssues(), IssueFilter{Labels: []string{"bug"}})
	assert.Equal(t, map[int64]bool{1: true, 3: true}, idSet(filtered))

	// Any-of semantics across the selected set
	filtered = FilterIssues(sampleIssues(), IssueFilter{Labels: []string{"enhancement", "documentation"}})
	assert.Equal(t, map[int64]bool{2: true, 3: true}, idSet(filtered))
}

func TestFilterIssuesByQuery(t *testing.T) {
	// Title match, case-insensitive
	assert.Equal(t, map[int64]bool{1: true}, idSet(FilterIssues(sampleIssues(), IssueFilter{Query: "CRASH"})))

	// Body match
	assert.Equal(t, map[int64]bool{4: true}, idSet(FilterIssues(sampleIssues(), IssueFilter{Query: "gorm"})))

	// Author login match
	assert.Equal(t, map[int64]bool{1: true, 3: true}, idSet(FilterIssues(sampleIssues(), IssueFilter{Query: "octocat"})))

	// Label name match
	assert.Equal(t, map[int64]bool{3: true}, idSet(FilterIssues(sampleIssues(), IssueFilter{Query: "documentation"})))
}

func TestFilterIssuesPredicateOrderIndependent(t *testing.T) {
	issues := sampleIssues()
	criteria := IssueFilter{State: IssueStateClosed, Labels: []string{"bug"}, Query: "typo"}

	combined := FilterIssues(issues, criteria)

	// Applying the predicates one at a time, in a different order, must
	// select the same set
	byQuery := FilterIssues(issues, IssueFilter{Query: criteria.Query})
	byQueryThenState := FilterIssues(byQuery, IssueFilter{State: criteria.State})
	byQueryThenStateThenLabel := FilterIssues(byQueryThenState, IssueFilter{Labels: criteria.Labels})

	byLabel := FilterIssues(issues, IssueFilter{Labels: criteria.Labels})
	byLabelThenQuery := FilterIssues(byLabel, IssueFilter{Query: criteria.Query})
	byLabelThenQueryThenState := FilterIssues(byLabelThenQuery, IssueFilter{State: criteria.State})

	assert.Equal(t, idSet(combined), idSet(byQueryThenStateThenLabel))
	assert.Equal(t, idSet(combined), idSet(byLabelThenQueryThenState))
	assert.Equal(t, map[int64]bool{3: true}, idSet(combined))
}

func TestFilterIssuesDoesNotMutateInput(t *testing.T) {
	issues := sampleIssues()

	FilterIssues(issues, IssueFilter{State: IssueStateOpen, Query: "crash"})

	assert.Equal(t, sampleIssues(), issues)
}
