// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"sort"
	"sync"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"

	"github.com/mattermost/mattermost-issuemigrator/model"
)

// Kinds of items a run creates or changes.
const (
	ItemMilestone      = model.RecordMilestone
	ItemMilestoneClose = "milestone_close"
	ItemIssue          = model.RecordIssue
	ItemNote           = model.RecordNote
	ItemAttachment     = model.RecordAttachment
	ItemIssueClose     = "issue_close"
	ItemIssueDelete    = model.RecordDeleteIssue
)

// Summary tallies per-item outcomes of a run. It is safe for concurrent use.
type Summary struct {
	mu     sync.Mutex
	counts map[string]map[string]int
}

func NewSummary() *Summary {
	return &Summary{counts: make(map[string]map[string]int)}
}

func (s *Summary) Add(kind, result string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.counts[kind] == nil {
		s.counts[kind] = make(map[string]int)
	}
	s.counts[kind][result]++
}

func (s *Summary) Count(kind, result string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[kind][result]
}

func (s *Summary) Succeeded(kind string) int {
	return s.Count(kind, ResultSuccess)
}

func (s *Summary) Failed(kind string) int {
	return s.Count(kind, ResultFailure)
}

// Failures is the number of failed items of every kind.
func (s *Summary) Failures() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, results := range s.counts {
		total += results[ResultFailure]
	}
	return total
}

// Fields renders the tally as log fields, one per kind and result.
func (s *Summary) Fields() []mlog.Field {
	s.mu.Lock()
	defer s.mu.Unlock()

	kinds := make([]string, 0, len(s.counts))
	for kind := range s.counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	var fields []mlog.Field
	for _, kind := range kinds {
		for _, result := range []string{ResultSuccess, ResultFailure} {
			if n, ok := s.counts[kind][result]; ok {
				fields = append(fields, mlog.Int(kind+"_"+result, n))
			}
		}
	}
	return fields
}
