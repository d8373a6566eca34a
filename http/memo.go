package http

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"phoneprice/ml"
)

// predictionMemo remembers recent successful predictions. Artifacts never
// change after startup, so an entry can never go stale.
type predictionMemo struct {
	cache *lru.Cache[ml.FeatureVector, ml.PriceCategory]
}

// newPredictionMemo returns nil when size is 0; a nil memo is a no-op.
func newPredictionMemo(size int) (*predictionMemo, error) {
	if size <= 0 {
		return nil, nil
	}
	cache, err := lru.New[ml.FeatureVector, ml.PriceCategory](size)
	if err != nil {
		return nil, err
	}
	return &predictionMemo{cache: cache}, nil
}

func (m *predictionMemo) get(vector ml.FeatureVector) (ml.PriceCategory, bool) {
	if m == nil {
		return ml.PriceCategory{}, false
	}
	return m.cache.Get(vector)
}

func (m *predictionMemo) add(vector ml.FeatureVector, category ml.PriceCategory) {
	if m == nil {
		return
	}
	m.cache.Add(vector, category)
}

func (m *predictionMemo) len() int {
	if m == nil {
		return 0
	}
	return m.cache.Len()
}
