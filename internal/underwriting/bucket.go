package underwriting

import "github.com/cashlens-dev/cashlens/internal/model"

// Partition splits transactions by risk bucket. The partition is stable:
// within each bucket, input order is preserved. Empty input yields an
// empty map, not an error; transactions with an unset category land in
// the OTHER bucket via the error sentinel.
func Partition(txns []model.Transaction) map[model.RiskBucket][]model.Transaction {
	buckets := make(map[model.RiskBucket][]model.Transaction)
	for _, t := range txns {
		b := model.BucketOf(t.EffectiveCategory())
		buckets[b] = append(buckets[b], t)
	}
	return buckets
}
