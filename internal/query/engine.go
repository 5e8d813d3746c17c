package query

import (
	"math"
	"sort"
	"strings"

	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/metadata"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/models"
)

// FilterAll is the sentinel meaning "no filter on this dimension".
const FilterAll = "All"

// DefaultPageSize matches the overview screen, 30 rows per page.
const DefaultPageSize = 30

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Spec carries every parameter of one overview computation: equality filters,
// free-text search, sort and page. The zero value means "show everything,
// first page".
type Spec struct {
	CategoryFilter string `json:"categoryFilter"`
	StatusFilter   string `json:"statusFilter"`
	LocationFilter string `json:"locationFilter"`
	GradeFilter    string `json:"gradeFilter"`
	SearchTerm     string `json:"searchTerm"`
	SortKey        string `json:"sortKey"`
	SortDirection  string `json:"sortDirection"`
	Page           int    `json:"page"`
	PageSize       int    `json:"pageSize"`
}

// Result is the derived view: the requested page of matching assets plus the
// counts and per-dimension option sets the overview renders around it.
type Result struct {
	Items               []models.Asset `json:"items"`
	TotalMatched        int            `json:"totalMatched"`
	TotalPages          int            `json:"totalPages"`
	Page                int            `json:"page"`
	AvailableCategories []string       `json:"availableCategories"`
	AvailableStatuses   []string       `json:"availableStatuses"`
	AvailableLocations  []string       `json:"availableLocations"`
	AvailableGrades     []string       `json:"availableGrades"`
}

// Normalized returns a copy with every out-of-contract value replaced by its
// neutral default: empty filters become "All", page below 1 clamps to 1,
// non-positive page size falls back to DefaultPageSize, and anything other
// than "desc" sorts ascending.
func (s Spec) Normalized() Spec {
	if s.CategoryFilter == "" {
		s.CategoryFilter = FilterAll
	}
	if s.StatusFilter == "" {
		s.StatusFilter = FilterAll
	}
	if s.LocationFilter == "" {
		s.LocationFilter = FilterAll
	}
	if s.GradeFilter == "" {
		s.GradeFilter = FilterAll
	}
	if s.SortDirection != SortDesc {
		s.SortDirection = SortAsc
	}
	if s.Page < 1 {
		s.Page = 1
	}
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	return s
}

// Run computes the overview view for one spec. It never mutates the input
// slice and has no state between calls, so it is safe to re-run on every
// keystroke and from concurrent handlers.
func Run(assets []models.Asset, spec Spec) Result {
	spec = spec.Normalized()

	filtered := applyFilters(assets, spec.CategoryFilter, spec.StatusFilter, spec.LocationFilter, spec.GradeFilter)
	filtered = applySearch(filtered, spec.SearchTerm)
	sorted := sortAssets(filtered, spec.SortKey, spec.SortDirection)

	totalMatched := len(sorted)
	totalPages := int(math.Ceil(float64(totalMatched) / float64(spec.PageSize)))
	if totalPages < 1 {
		totalPages = 1
	}

	start := (spec.Page - 1) * spec.PageSize
	items := []models.Asset{}
	if start < len(sorted) {
		end := start + spec.PageSize
		if end > len(sorted) {
			end = len(sorted)
		}
		items = sorted[start:end]
	}

	return Result{
		Items:               items,
		TotalMatched:        totalMatched,
		TotalPages:          totalPages,
		Page:                spec.Page,
		AvailableCategories: availableOptions(assets, spec, dimCategory),
		AvailableStatuses:   availableOptions(assets, spec, dimStatus),
		AvailableLocations:  availableOptions(assets, spec, dimLocation),
		AvailableGrades:     availableOptions(assets, spec, dimGrade),
	}
}

type dimension int

const (
	dimCategory dimension = iota
	dimStatus
	dimLocation
	dimGrade
)

// applyFilters runs the four equality filters in their fixed order. Matching
// is exact and case-sensitive; "All" passes everything through.
func applyFilters(assets []models.Asset, category, status, location, grade string) []models.Asset {
	out := assets
	out = filterBy(out, category, func(a models.Asset) string { return a.Category })
	out = filterBy(out, status, func(a models.Asset) string { return a.Status })
	out = filterBy(out, location, func(a models.Asset) string { return a.Location })
	out = filterBy(out, grade, func(a models.Asset) string { return a.Grade })
	return out
}

func filterBy(assets []models.Asset, filter string, value func(models.Asset) string) []models.Asset {
	if filter == FilterAll {
		return assets
	}
	kept := make([]models.Asset, 0, len(assets))
	for _, a := range assets {
		if value(a) == filter {
			kept = append(kept, a)
		}
	}
	return kept
}

// applySearch keeps an asset only when every whitespace-separated search word
// is a substring of its combined searchable text. Words match anywhere, not
// only at token boundaries.
func applySearch(assets []models.Asset, term string) []models.Asset {
	words := strings.Fields(strings.ToLower(term))
	if len(words) == 0 {
		return assets
	}

	kept := make([]models.Asset, 0, len(assets))
	for _, a := range assets {
		haystack := searchableText(a)
		matched := true
		for _, word := range words {
			if !strings.Contains(haystack, word) {
				matched = false
				break
			}
		}
		if matched {
			kept = append(kept, a)
		}
	}
	return kept
}

func searchableText(a models.Asset) string {
	parts := make([]string, 0, 6)
	for _, v := range []string{a.ID, a.Name, a.Location, a.Owner, a.Status, a.Remarks} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// sortAssets returns a sorted copy. An empty or unknown sort key preserves
// input order. Grade sorts by rank; an absent or unknown grade is pinned
// after every real grade in both directions, only ranked values flip with
// the direction. All other keys compare as plain strings, missing values
// as "".
func sortAssets(assets []models.Asset, key, direction string) []models.Asset {
	out := make([]models.Asset, len(assets))
	copy(out, assets)

	if key == "" {
		return out
	}
	if _, known := (models.Asset{}).Field(key); !known {
		return out
	}

	descending := direction == SortDesc

	if key == "grade" {
		sort.SliceStable(out, func(i, j int) bool {
			ri := metadata.Grade(out[i].Grade).Rank()
			rj := metadata.Grade(out[j].Grade).Rank()
			iUnranked := ri == metadata.UnrankedGrade
			jUnranked := rj == metadata.UnrankedGrade
			if iUnranked != jUnranked {
				return jUnranked
			}
			if iUnranked {
				return false
			}
			if descending {
				return ri > rj
			}
			return ri < rj
		})
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		vi, _ := out[i].Field(key)
		vj, _ := out[j].Field(key)
		if descending {
			return vi > vj
		}
		return vi < vj
	})
	return out
}

// availableOptions answers "if only this filter changed, which values would
// still match": it applies the other three filters in the usual order to the
// original collection and collects the distinct non-empty values of the
// requested dimension, in first-seen order. Search term, sort and page are
// deliberately ignored.
func availableOptions(assets []models.Asset, spec Spec, dim dimension) []string {
	category, status, location, grade := spec.CategoryFilter, spec.StatusFilter, spec.LocationFilter, spec.GradeFilter

	var value func(models.Asset) string
	switch dim {
	case dimCategory:
		category = FilterAll
		value = func(a models.Asset) string { return a.Category }
	case dimStatus:
		status = FilterAll
		value = func(a models.Asset) string { return a.Status }
	case dimLocation:
		location = FilterAll
		value = func(a models.Asset) string { return a.Location }
	case dimGrade:
		grade = FilterAll
		value = func(a models.Asset) string { return a.Grade }
	}

	narrowed := applyFilters(assets, category, status, location, grade)

	seen := make(map[string]bool)
	options := []string{}
	for _, a := range narrowed {
		v := value(a)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		options = append(options, v)
	}
	return options
}
