package services

import (
	"strings"
	"sync"

	"bank-console/internal/dto"
	"bank-console/internal/models"
)

// DefaultPageSize is the number of rows per console table page
const DefaultPageSize = 12

// TableController filters and paginates one entity collection. A single
// instance serves every entity type; only the exclusion set and page size vary.
type TableController struct {
	mu         sync.RWMutex
	collection models.Collection
	query      string
	page       int
	pageSize   int
	excluded   map[string]struct{}
}

// NewTableController builds a controller. With no exclusions the sensitive
// field is excluded from matching.
func NewTableController(pageSize int, excluded ...string) *TableController {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if len(excluded) == 0 {
		excluded = []string{models.SensitiveField}
	}
	ex := make(map[string]struct{}, len(excluded))
	for _, f := range excluded {
		ex[f] = struct{}{}
	}
	return &TableController{
		collection: models.Collection{},
		page:       1,
		pageSize:   pageSize,
		excluded:   ex,
	}
}

// SetCollection replaces the collection wholesale
func (t *TableController) SetCollection(c models.Collection) {
	if c == nil {
		c = models.Collection{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.collection = c
	t.page = clampPage(t.page, t.pageCountLocked())
}

func (t *TableController) Collection() models.Collection {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(models.Collection, len(t.collection))
	copy(out, t.collection)
	return out
}

// SetQuery changes the filter and resets to the first page
func (t *TableController) SetQuery(q string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.query = q
	t.page = 1
}

func (t *TableController) Query() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.query
}

func (t *TableController) Page() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.page
}

func (t *TableController) SetPage(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.page = clampPage(n, t.pageCountLocked())
}

// NextPage advances one page; it is a no-op on the last page.
func (t *TableController) NextPage() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.page < t.pageCountLocked() {
		t.page++
	}
}

func (t *TableController) PrevPage() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.page > 1 {
		t.page--
	}
}

func (t *TableController) PageCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pageCountLocked()
}

func (t *TableController) Filtered() models.Collection {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.filteredLocked()
}

func (t *TableController) Paged() models.Collection {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pagedLocked(t.filteredLocked())
}

// Snapshot renders the current page with masked rows
func (t *TableController) Snapshot() dto.TablePage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	filtered := t.filteredLocked()
	paged := t.pagedLocked(filtered)

	rows := make([]*models.Record, len(paged))
	for i, r := range paged {
		rows[i] = r.Masked()
	}

	page := dto.TablePage{
		Columns:       columnsOf(t.collection),
		Rows:          rows,
		Query:         t.query,
		Page:          t.page,
		PageCount:     t.pageCountLocked(),
		PageSize:      t.pageSize,
		Total:         len(t.collection),
		FilteredTotal: len(filtered),
	}
	if len(paged) > 0 {
		page.RangeStart = (t.page-1)*t.pageSize + 1
		page.RangeEnd = page.RangeStart + len(paged) - 1
	}
	return page
}

func (t *TableController) filteredLocked() models.Collection {
	if t.query == "" {
		out := make(models.Collection, len(t.collection))
		copy(out, t.collection)
		return out
	}
	q := strings.ToLower(t.query)
	out := models.Collection{}
	for _, r := range t.collection {
		if t.matches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func (t *TableController) matches(r *models.Record, q string) bool {
	for _, k := range r.Keys() {
		if _, skip := t.excluded[k]; skip {
			continue
		}
		if strings.Contains(strings.ToLower(r.String(k)), q) {
			return true
		}
	}
	return false
}

func (t *TableController) pagedLocked(filtered models.Collection) models.Collection {
	start := (t.page - 1) * t.pageSize
	if start >= len(filtered) {
		return models.Collection{}
	}
	end := start + t.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

func (t *TableController) pageCountLocked() int {
	n := len(t.filteredLocked())
	if n == 0 {
		return 1
	}
	return (n + t.pageSize - 1) / t.pageSize
}

func clampPage(page, count int) int {
	if page < 1 {
		return 1
	}
	if page > count {
		return count
	}
	return page
}

// columnsOf is the key order of the first record, without the sensitive field
func columnsOf(c models.Collection) []string {
	if len(c) == 0 {
		return []string{}
	}
	return c[0].Without(models.SensitiveField).Keys()
}
