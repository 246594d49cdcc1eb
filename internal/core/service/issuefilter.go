package service

import (
	"strings"

	"github.com/just-nibble/github-link/internal/adapters/api"
)

// IssueStateFilter selects which issue states to keep
type IssueStateFilter string

const (
	IssueStateAll    IssueStateFilter = "all"
	IssueStateOpen   IssueStateFilter = "open"
	IssueStateClosed IssueStateFilter = "closed"
)

// IssueFilter is the client-side criteria applied over a fetched issue
// list. The three predicates are independent, so applying them in any
// order yields the same final set.
type IssueFilter struct {
	State  IssueStateFilter
	Labels []string
	Query  string
}

// FilterIssues applies the criteria to the issue list and returns a new
// slice; the input is never mutated. An empty criterion keeps everything:
// state "all" (or empty), no labels, empty query.
func FilterIssues(issues []api.Issue, filter IssueFilter) []api.Issue {
	out := make([]api.Issue, 0, len(issues))
	for _, issue := range issues {
		if !matchesState(issue, filter.State) {
			continue
		}
		if !matchesLabels(issue, filter.Labels) {
			continue
		}
		if !matchesQuery(issue, filter.Query) {
			continue
		}
		out = append(out, issue)
	}
	return out
}

func matchesState(issue api.Issue, state IssueStateFilter) bool {
	if state == "" || state == IssueStateAll {
		return true
	}
	return issue.State == string(state)
}

// matchesLabels keeps issues having at least one label whose name is in
// the selected set; an empty selection keeps everything
func matchesLabels(issue api.Issue, labels []string) bool {
	if len(labels) == 0 {
		return true
	}
	for _, selected := range labels {
		for _, label := range issue.Labels {
			if label.Name == selected {
				return true
			}
		}
	}
	return false
}

// matchesQuery does a case-insensitive substring search across title,
// body, author login and label names
func matchesQuery(issue api.Issue, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(issue.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(issue.Body), q) {
		return true
	}
	if strings.Contains(strings.ToLower(issue.User.Login), q) {
		return true
	}
	for _, label := range issue.Labels {
		if strings.Contains(strings.ToLower(label.Name), q) {
			return true
		}
	}
	return false
}
