package directory_cache

import (
	"sync"
	"time"

	"github.com/ethoz1970/congress-directory/models"
)

const TTL = 5 * time.Minute

// ── Member snapshot cache ────────────────────────────────────────────────────
// Stores the full directory snapshot the facet engine runs over, in the
// canonical order (state, chamber, last name). Every directory request
// reads from this; the importer and the admin cache-clear invalidate it.

type snapshotEntry struct {
	members   []models.Member
	fetchedAt time.Time
}

var (
	snapshotMu    sync.RWMutex
	snapshotCache *snapshotEntry
)

func GetSnapshot() ([]models.Member, bool) {
	snapshotMu.RLock()
	defer snapshotMu.RUnlock()
	if snapshotCache != nil && time.Since(snapshotCache.fetchedAt) < TTL {
		return snapshotCache.members, true
	}
	return nil, false
}

func SetSnapshot(members []models.Member) {
	snapshotMu.Lock()
	defer snapshotMu.Unlock()
	snapshotCache = &snapshotEntry{members: members, fetchedAt: time.Now()}
}

// ── Committee list cache ─────────────────────────────────────────────────────

type committeesEntry struct {
	committees []models.Committee
	fetchedAt  time.Time
}

var (
	committeesMu    sync.RWMutex
	committeesCache *committeesEntry
)

func GetCommittees() ([]models.Committee, bool) {
	committeesMu.RLock()
	defer committeesMu.RUnlock()
	if committeesCache != nil && time.Since(committeesCache.fetchedAt) < TTL {
		return committeesCache.committees, true
	}
	return nil, false
}

func SetCommittees(committees []models.Committee) {
	committeesMu.Lock()
	defer committeesMu.Unlock()
	committeesCache = &committeesEntry{committees: committees, fetchedAt: time.Now()}
}

// ── Invalidate everything (call after any import or admin cache clear) ───────

func Invalidate() {
	snapshotMu.Lock()
	snapshotCache = nil
	snapshotMu.Unlock()

	committeesMu.Lock()
	committeesCache = nil
	committeesMu.Unlock()
}
