package memory

import (
	"time"

	"ai-tutoring-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const (
	catalogKey = "catalog"

	summaryPrefix = "summary:"
)

// CatalogCache keeps the ordered learning-objective catalog and computed
// proficiency summaries in process memory. The catalog is immutable at
// runtime so it gets a long TTL; summaries are invalidated through the
// mastery event consumer.
type CatalogCache struct {
	cache *cache.Cache
}

func NewCatalogCache() *CatalogCache {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &CatalogCache{
		cache: c,
	}
}

func (r *CatalogCache) SaveCatalog(objectives []*entity.LearningObjective) {
	r.cache.Set(catalogKey, objectives, 24*time.Hour)
}

func (r *CatalogCache) GetCatalog() ([]*entity.LearningObjective, bool) {
	if x, found := r.cache.Get(catalogKey); found {
		return x.([]*entity.LearningObjective), true
	}
	return nil, false
}

func (r *CatalogCache) SaveSummary(userId string, summary interface{}) {
	r.cache.Set(summaryPrefix+userId, summary, cache.DefaultExpiration)
}

func (r *CatalogCache) GetSummary(userId string) (interface{}, bool) {
	return r.cache.Get(summaryPrefix + userId)
}

func (r *CatalogCache) InvalidateSummary(userId string) {
	r.cache.Delete(summaryPrefix + userId)
}
