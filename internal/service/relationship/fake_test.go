package relationship

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

// memWorld is an in-memory model of users, objects, facts and counters.
// It implements resolver and membershipRepo for property tests.
type memWorld struct {
	mu       sync.Mutex
	entities map[domain.EntityClass][]domain.EntityRecord
	facts    map[domain.Relation]map[[2]uuid.UUID]time.Time
	counters map[uuid.UUID]int
	legacy   map[domain.Relation][]domain.LegacyRelationship
}

func newMemWorld() *memWorld {
	return &memWorld{
		entities: map[domain.EntityClass][]domain.EntityRecord{},
		facts: map[domain.Relation]map[[2]uuid.UUID]time.Time{
			domain.RelationCommunityFollow: {},
			domain.RelationPostLike:        {},
		},
		counters: map[uuid.UUID]int{},
		legacy:   map[domain.Relation][]domain.LegacyRelationship{},
	}
}

func (w *memWorld) addEntity(class domain.EntityClass, legacyID string, active bool) domain.EntityRecord {
	rec := domain.EntityRecord{Class: class, ID: uuid.New(), Active: active}
	if legacyID != "" {
		rec.LegacyID = &legacyID
	}
	w.entities[class] = append(w.entities[class], rec)
	return rec
}

func (w *memWorld) setActive(class domain.EntityClass, id uuid.UUID, active bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.entities[class] {
		if w.entities[class][i].ID == id {
			w.entities[class][i].Active = active
		}
	}
}

func (w *memWorld) setLegacy(rel domain.Relation, objectID uuid.UUID, identifiers ...string) {
	ids := make([]domain.LegacyIdentifier, len(identifiers))
	for i, s := range identifiers {
		ids[i] = domain.LegacyIdentifier{Raw: s, IsString: true}
	}
	w.legacy[rel] = append(w.legacy[rel], domain.LegacyRelationship{ObjectID: objectID, SubjectIdentifiers: ids})
}

func (w *memWorld) factCount(rel domain.Relation, objectID uuid.UUID) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for k := range w.facts[rel] {
		if k[1] == objectID {
			n++
		}
	}
	return n
}

// userActive must be called with mu held.
func (w *memWorld) userActive(id uuid.UUID) bool {
	for _, r := range w.entities[domain.EntityClassUser] {
		if r.ID == id {
			return r.Active
		}
	}
	return false
}

func (w *memWorld) hasFact(rel domain.Relation, subjectID, objectID uuid.UUID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.facts[rel][[2]uuid.UUID{subjectID, objectID}]
	return ok
}

// --- resolver ---

func (w *memWorld) Resolve(_ context.Context, class domain.EntityClass, identifier string) (domain.EntityRecord, bool, error) {
	if id, ok := domain.ParsePrimaryID(identifier); ok {
		for _, r := range w.entities[class] {
			if r.ID == id {
				return r, true, nil
			}
		}
	}
	if !domain.LooksLegacy(identifier) {
		return domain.EntityRecord{}, false, nil
	}
	for _, r := range w.entities[class] {
		if r.LegacyID != nil && *r.LegacyID == identifier {
			return r, true, nil
		}
	}
	return domain.EntityRecord{}, false, nil
}

func (w *memWorld) ResolveActive(ctx context.Context, class domain.EntityClass, identifier string) (domain.EntityRecord, error) {
	r, found, err := w.Resolve(ctx, class, identifier)
	if err != nil {
		return domain.EntityRecord{}, err
	}
	if !found || !r.Active {
		return domain.EntityRecord{}, fmt.Errorf("%s %q: %w", class, identifier, domain.ErrNotFound)
	}
	return r, nil
}

// --- membershipRepo ---

func (w *memWorld) SchemaReady(context.Context, domain.Relation) error { return nil }

func (w *memWorld) ListLegacy(_ context.Context, rel domain.Relation) ([]domain.LegacyRelationship, error) {
	return w.legacy[rel], nil
}

func (w *memWorld) Insert(_ context.Context, rel domain.Relation, subjectID, objectID uuid.UUID) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	key := [2]uuid.UUID{subjectID, objectID}
	if _, ok := w.facts[rel][key]; ok {
		return false, nil
	}
	w.facts[rel][key] = time.Now()
	return true, nil
}

func (w *memWorld) Delete(_ context.Context, rel domain.Relation, subjectID, objectID uuid.UUID) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	key := [2]uuid.UUID{subjectID, objectID}
	if _, ok := w.facts[rel][key]; !ok {
		return false, nil
	}
	delete(w.facts[rel], key)
	return true, nil
}

func (w *memWorld) Get(_ context.Context, rel domain.Relation, subjectID, objectID uuid.UUID) (*domain.Membership, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	at, ok := w.facts[rel][[2]uuid.UUID{subjectID, objectID}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Membership{SubjectID: subjectID, ObjectID: objectID, CreatedAt: at}, nil
}

func (w *memWorld) CountMembers(_ context.Context, rel domain.Relation, objectID uuid.UUID) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for k := range w.facts[rel] {
		if k[1] == objectID && w.userActive(k[0]) {
			n++
		}
	}
	return n, nil
}

func (w *memWorld) ListMembers(_ context.Context, rel domain.Relation, objectID uuid.UUID, page domain.Page) ([]domain.Member, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []domain.Member
	for k, at := range w.facts[rel] {
		if k[1] == objectID && w.userActive(k[0]) {
			out = append(out, domain.Member{UserID: k[0], JoinedAt: at})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.After(out[j].JoinedAt) })
	start := page.Offset()
	if start > len(out) {
		return []domain.Member{}, nil
	}
	end := start + page.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], nil
}

func (w *memWorld) Increment(_ context.Context, _ domain.Relation, objectID uuid.UUID) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.counters[objectID]++
	return w.counters[objectID], nil
}

func (w *memWorld) Decrement(_ context.Context, _ domain.Relation, objectID uuid.UUID) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.counters[objectID] <= 0 {
		return 0, fmt.Errorf("counter of %s would drop below zero: %w", objectID, domain.ErrDataIntegrity)
	}
	w.counters[objectID]--
	return w.counters[objectID], nil
}

func (w *memWorld) Count(_ context.Context, _ domain.Relation, objectID uuid.UUID) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.counters[objectID], nil
}

func (w *memWorld) RecountAll(_ context.Context, rel domain.Relation) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	objects := w.entities[rel.ObjectClass()]
	for _, o := range objects {
		n := 0
		for k := range w.facts[rel] {
			if k[1] == o.ID {
				n++
			}
		}
		w.counters[o.ID] = n
	}
	return int64(len(objects)), nil
}
