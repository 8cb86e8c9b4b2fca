package goalbundle

import (
	"math/rand"
	"sort"
	"sync"
	"time"
)

type GoalBundleService interface {
	BundleForRole(role string) Bundle
}

type goalBundleService struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewService() GoalBundleService {
	return NewServiceWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewServiceWithRand(rnd *rand.Rand) GoalBundleService {
	return &goalBundleService{rnd: rnd}
}

// BundleForRole picks a random variant for the role. Unknown roles draw from
// the pool of all variants; with nothing to draw from, the empty-profile
// placeholder is returned.
func (s *goalBundleService) BundleForRole(role string) Bundle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if variants, ok := bundlesByRole[role]; ok && len(variants) > 0 {
		return variants[s.rnd.Intn(len(variants))]
	}

	pool := allVariants()
	if len(pool) == 0 {
		return EmptyProfileBundle
	}
	return pool[s.rnd.Intn(len(pool))]
}

// allVariants flattens the role table in a stable order so the random draw
// is reproducible under a seeded rand.
func allVariants() []Bundle {
	roles := make([]string, 0, len(bundlesByRole))
	for role := range bundlesByRole {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	var pool []Bundle
	for _, role := range roles {
		pool = append(pool, bundlesByRole[role]...)
	}
	return pool
}
