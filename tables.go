package gir

import (
	"io"
	"sync"
)

// CoordinateTable is the partial function title -> (lat,lon) for articles
// whose XML had a resolvable Earth coord template (spec §3 "Coordinate
// table"). One mutex guards the whole map; each field parser inserts at
// most once per article (spec §5 "each is a mapping title -> record
// written under its own mutex, one insertion per article").
type CoordinateTable struct {
	mu sync.RWMutex
	m  map[string]Coordinate
}

// NewCoordinateTable returns an empty table.
func NewCoordinateTable() *CoordinateTable {
	return &CoordinateTable{m: make(map[string]Coordinate)}
}

// Set records the coordinate for title, overwriting any previous value.
func (t *CoordinateTable) Set(title string, c Coordinate) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[title] = c
}

// Lookup returns the coordinate for title and whether it is present.
func (t *CoordinateTable) Lookup(title string) (Coordinate, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.m[title]
	return c, ok
}

// Len returns the number of coordinated titles.
func (t *CoordinateTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.m)
}

// Write persists the table per §6.1: N:int; Nx(title:string,lat:double,lon:double).
func (t *CoordinateTable) Write(w io.Writer) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := WriteInt32(w, int32(len(t.m))); err != nil {
		return err
	}
	for title, c := range t.m {
		if err := WriteString(w, title); err != nil {
			return err
		}
		if err := WriteFloat64(w, c.Lat); err != nil {
			return err
		}
		if err := WriteFloat64(w, c.Lon); err != nil {
			return err
		}
	}
	return nil
}

// ReadCoordinateTable reads a table previously written by Write.
func ReadCoordinateTable(r io.Reader) (*CoordinateTable, error) {
	n, err := ReadInt32(r)
	if err != nil {
		return nil, err
	}
	t := &CoordinateTable{m: make(map[string]Coordinate, n)}
	for i := int32(0); i < n; i++ {
		title, err := ReadString(r)
		if err != nil {
			return nil, err
		}
		lat, err := ReadFloat64(r)
		if err != nil {
			return nil, err
		}
		lon, err := ReadFloat64(r)
		if err != nil {
			return nil, err
		}
		t.m[title] = Coordinate{Lat: lat, Lon: lon}
	}
	return t, nil
}

// RedirectTable is the partial function title -> target title (spec §3
// "Redirect table").
type RedirectTable struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewRedirectTable returns an empty table.
func NewRedirectTable() *RedirectTable {
	return &RedirectTable{m: make(map[string]string)}
}

// Set records the redirect target for title.
func (t *RedirectTable) Set(title, target string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[title] = target
}

// Lookup returns the redirect target for title and whether one exists.
func (t *RedirectTable) Lookup(title string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	target, ok := t.m[title]
	return target, ok
}

// Resolve follows title through the redirect table if present, else
// returns title unchanged. Used everywhere a link target must be checked
// against the coordinate table (spec §4.2 is-a-in / located-at parsers).
func (t *RedirectTable) Resolve(title string) string {
	if target, ok := t.Lookup(title); ok {
		return target
	}
	return title
}

// Len returns the number of redirects.
func (t *RedirectTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.m)
}

// Write persists the table per §6.1: N:int; Nx(title:string,target:string).
func (t *RedirectTable) Write(w io.Writer) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := WriteInt32(w, int32(len(t.m))); err != nil {
		return err
	}
	for title, target := range t.m {
		if err := WriteString(w, title); err != nil {
			return err
		}
		if err := WriteString(w, target); err != nil {
			return err
		}
	}
	return nil
}

// ReadRedirectTable reads a table previously written by Write.
func ReadRedirectTable(r io.Reader) (*RedirectTable, error) {
	n, err := ReadInt32(r)
	if err != nil {
		return nil, err
	}
	t := &RedirectTable{m: make(map[string]string, n)}
	for i := int32(0); i < n; i++ {
		title, err := ReadString(r)
		if err != nil {
			return nil, err
		}
		target, err := ReadString(r)
		if err != nil {
			return nil, err
		}
		t.m[title] = target
	}
	return t, nil
}

// LocatedAtTable is the partial function title -> located-at target title
// (spec §3 "explicit 'located-at' target"; §6.1 "Located-at").
type LocatedAtTable struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewLocatedAtTable returns an empty table.
func NewLocatedAtTable() *LocatedAtTable {
	return &LocatedAtTable{m: make(map[string]string)}
}

// Set records the located-at target for title.
func (t *LocatedAtTable) Set(title, target string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[title] = target
}

// Lookup returns the located-at target for title and whether one exists.
func (t *LocatedAtTable) Lookup(title string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	target, ok := t.m[title]
	return target, ok
}

// Write persists the table per §6.1: N:int; Nx(title:string,target:string).
func (t *LocatedAtTable) Write(w io.Writer) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := WriteInt32(w, int32(len(t.m))); err != nil {
		return err
	}
	for title, target := range t.m {
		if err := WriteString(w, title); err != nil {
			return err
		}
		if err := WriteString(w, target); err != nil {
			return err
		}
	}
	return nil
}

// ReadLocatedAtTable reads a table previously written by Write.
func ReadLocatedAtTable(r io.Reader) (*LocatedAtTable, error) {
	n, err := ReadInt32(r)
	if err != nil {
		return nil, err
	}
	t := &LocatedAtTable{m: make(map[string]string, n)}
	for i := int32(0); i < n; i++ {
		title, err := ReadString(r)
		if err != nil {
			return nil, err
		}
		target, err := ReadString(r)
		if err != nil {
			return nil, err
		}
		t.m[title] = target
	}
	return t, nil
}

// IsAInTable is the per-title set of "is-a-in" resolved target titles
// (spec §3 "'is-a-in' target set"; §6.1 "Is-a-in").
type IsAInTable struct {
	mu sync.RWMutex
	m  map[string][]string
}

// NewIsAInTable returns an empty table.
func NewIsAInTable() *IsAInTable {
	return &IsAInTable{m: make(map[string][]string)}
}

// Set records the is-a-in target list for title.
func (t *IsAInTable) Set(title string, targets []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[title] = targets
}

// Lookup returns the is-a-in target list for title.
func (t *IsAInTable) Lookup(title string) ([]string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	targets, ok := t.m[title]
	return targets, ok
}

// Write persists the table per §6.1: N:int; Nx(title:string,k:int,k×string).
func (t *IsAInTable) Write(w io.Writer) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := WriteInt32(w, int32(len(t.m))); err != nil {
		return err
	}
	for title, targets := range t.m {
		if err := WriteString(w, title); err != nil {
			return err
		}
		if err := WriteInt32(w, int32(len(targets))); err != nil {
			return err
		}
		for _, tgt := range targets {
			if err := WriteString(w, tgt); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadIsAInTable reads a table previously written by Write.
func ReadIsAInTable(r io.Reader) (*IsAInTable, error) {
	n, err := ReadInt32(r)
	if err != nil {
		return nil, err
	}
	t := &IsAInTable{m: make(map[string][]string, n)}
	for i := int32(0); i < n; i++ {
		title, err := ReadString(r)
		if err != nil {
			return nil, err
		}
		k, err := ReadInt32(r)
		if err != nil {
			return nil, err
		}
		targets := make([]string, k)
		for j := int32(0); j < k; j++ {
			s, err := ReadString(r)
			if err != nil {
				return nil, err
			}
			targets[j] = s
		}
		t.m[title] = targets
	}
	return t, nil
}

// ArticleCategoriesTable is the per-article sorted, de-duplicated set of
// category ids (spec §3 "Category-id list: sorted ascending, unique";
// §6.1 "Article→categories").
type ArticleCategoriesTable struct {
	mu sync.RWMutex
	m  map[string][]int32
}

// NewArticleCategoriesTable returns an empty table.
func NewArticleCategoriesTable() *ArticleCategoriesTable {
	return &ArticleCategoriesTable{m: make(map[string][]int32)}
}

// Set records the sorted, de-duplicated category-id slice for title.
func (t *ArticleCategoriesTable) Set(title string, ids []int32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[title] = ids
}

// Lookup returns the category-id slice for title.
func (t *ArticleCategoriesTable) Lookup(title string) ([]int32, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids, ok := t.m[title]
	return ids, ok
}

// Write persists the table per §6.1: N:int; per article title, k:int, k×int.
func (t *ArticleCategoriesTable) Write(w io.Writer) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := WriteInt32(w, int32(len(t.m))); err != nil {
		return err
	}
	for title, ids := range t.m {
		if err := WriteString(w, title); err != nil {
			return err
		}
		if err := WriteInt32(w, int32(len(ids))); err != nil {
			return err
		}
		for _, id := range ids {
			if err := WriteInt32(w, id); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadArticleCategoriesTable reads a table previously written by Write.
func ReadArticleCategoriesTable(r io.Reader) (*ArticleCategoriesTable, error) {
	n, err := ReadInt32(r)
	if err != nil {
		return nil, err
	}
	t := &ArticleCategoriesTable{m: make(map[string][]int32, n)}
	for i := int32(0); i < n; i++ {
		title, err := ReadString(r)
		if err != nil {
			return nil, err
		}
		k, err := ReadInt32(r)
		if err != nil {
			return nil, err
		}
		ids := make([]int32, k)
		for j := int32(0); j < k; j++ {
			id, err := ReadInt32(r)
			if err != nil {
				return nil, err
			}
			ids[j] = id
		}
		t.m[title] = ids
	}
	return t, nil
}

// ContainedEntitiesTable is the per-article map title -> (entity title ->
// ContainedEntity) produced by the contained-entities parser (spec §4.2).
type ContainedEntitiesTable struct {
	mu sync.RWMutex
	m  map[string]map[string]ContainedEntity
}

// NewContainedEntitiesTable returns an empty table.
func NewContainedEntitiesTable() *ContainedEntitiesTable {
	return &ContainedEntitiesTable{m: make(map[string]map[string]ContainedEntity)}
}

// Set records the contained-entities map for an article title.
func (t *ContainedEntitiesTable) Set(title string, entities map[string]ContainedEntity) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[title] = entities
}

// Lookup returns the contained-entities map for title.
func (t *ContainedEntitiesTable) Lookup(title string) (map[string]ContainedEntity, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.m[title]
	return e, ok
}
