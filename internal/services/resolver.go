package services

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/codyseavey/tcg-roi/internal/catalog"
	"github.com/codyseavey/tcg-roi/internal/metrics"
	"github.com/codyseavey/tcg-roi/internal/models"
)

const (
	setPageSize = 20

	// maxSetPages bounds the pagination loop against a misbehaving
	// upstream. Hitting the ceiling truncates to what was collected.
	maxSetPages = 10

	resolverCacheSize = 256
)

// SetResolver maps human-readable set names to catalog descriptors.
type SetResolver struct {
	fetcher catalog.Fetcher
	cache   *lru.Cache[string, models.SetDescriptor]
}

// NewSetResolver creates a resolver with an LRU cache of successful
// resolutions. The cache is a convenience for repeated runs; each
// resolution is still a pure function of the upstream listing.
func NewSetResolver(fetcher catalog.Fetcher) *SetResolver {
	cache, err := lru.New[string, models.SetDescriptor](resolverCacheSize)
	if err != nil {
		// Only happens for a non-positive size.
		panic(fmt.Sprintf("resolver cache: %v", err))
	}

	return &SetResolver{
		fetcher: fetcher,
		cache:   cache,
	}
}

// ListSets fetches every set descriptor, following pages until the
// upstream reports the last page, returns an empty page, or the page
// ceiling is reached.
func (r *SetResolver) ListSets() ([]models.SetDescriptor, error) {
	var all []models.SetDescriptor

	for page := 1; page <= maxSetPages; page++ {
		env, err := r.fetcher.Fetch("/episodes", map[string]string{
			"page":     strconv.Itoa(page),
			"per_page": strconv.Itoa(setPageSize),
		})
		if err != nil {
			return nil, fmt.Errorf("list sets page %d: %w", page, err)
		}

		var episodes []episodePayload
		if err := env.DecodeData(&episodes); err != nil {
			return nil, fmt.Errorf("decode sets page %d: %w", page, err)
		}
		if len(episodes) == 0 {
			break
		}

		for _, e := range episodes {
			all = append(all, e.toSetDescriptor())
		}

		if env.Paging.Current >= env.Paging.Total {
			break
		}
	}

	return all, nil
}

// Resolve finds the descriptor for a set name. The second return value
// is false when nothing matched; that is a plain not-found outcome, not
// an error. Matching is first-match in upstream order.
func (r *SetResolver) Resolve(setName string) (models.SetDescriptor, bool, error) {
	key := strings.ToLower(strings.TrimSpace(setName))

	if set, ok := r.cache.Get(key); ok {
		metrics.ResolverCacheHits.Inc()
		return set, true, nil
	}
	metrics.ResolverCacheMisses.Inc()

	sets, err := r.ListSets()
	if err != nil {
		return models.SetDescriptor{}, false, err
	}

	for _, set := range sets {
		if matchesSet(key, set) {
			r.cache.Add(key, set)
			return set, true, nil
		}
	}

	log.Printf("Set resolver: no matching set for %q", setName)
	return models.SetDescriptor{}, false, nil
}

// ResolveCandidates returns every matching descriptor ranked by
// confidence, highest first. Upstream order breaks ties, so the first
// candidate agrees with Resolve for equal scores. Callers can use this
// to disambiguate short or generic set names.
func (r *SetResolver) ResolveCandidates(setName string) ([]models.SetCandidate, error) {
	query := strings.ToLower(strings.TrimSpace(setName))

	sets, err := r.ListSets()
	if err != nil {
		return nil, err
	}

	var candidates []models.SetCandidate
	for _, set := range sets {
		if !matchesSet(query, set) {
			continue
		}
		candidates = append(candidates, models.SetCandidate{
			Set:   set,
			Score: candidateScore(query, set),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates, nil
}

// matchesSet applies the three OR'd match rules: query within name, name
// within query, or hyphenated query within slug. query must already be
// lowercased.
func matchesSet(query string, set models.SetDescriptor) bool {
	name := strings.ToLower(set.Name)
	slug := strings.ToLower(set.Slug)

	return strings.Contains(name, query) ||
		(name != "" && strings.Contains(query, name)) ||
		strings.Contains(slug, strings.ReplaceAll(query, " ", "-"))
}

// candidateScore grades a match: exact name 1.0, slug hit 0.9, substring
// hits scaled by how much of the name the query covers.
func candidateScore(query string, set models.SetDescriptor) float64 {
	name := strings.ToLower(set.Name)
	slug := strings.ToLower(set.Slug)

	switch {
	case name == query:
		return 1.0
	case strings.Contains(slug, strings.ReplaceAll(query, " ", "-")):
		return 0.9
	case strings.Contains(name, query) && len(name) > 0:
		return 0.5 + 0.4*float64(len(query))/float64(len(name))
	case strings.Contains(query, name) && len(query) > 0:
		return 0.5 + 0.4*float64(len(name))/float64(len(query))
	default:
		return 0.5
	}
}
