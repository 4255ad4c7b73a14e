package catalog

import (
	"context"

	"motodesign/pkg/models"
)

// relatedFallbackLimit caps the same-category fallback.
const relatedFallbackLimit = 3

// RecordFetcher is the single-record lookup used for related-listing
// resolution. *Client satisfies it.
type RecordFetcher interface {
	FetchRecord(ctx context.Context, id string) (models.Record, error)
}

// Related resolves the listings shown under a detail page. Explicitly
// linked IDs are fetched one by one; a failed or foreign linked record
// (an inquiry row, for example) silently shrinks the result. When no IDs
// are linked, it falls back to same-category listings from the already
// fetched collection, excluding the record itself, capped at 3.
func Related(ctx context.Context, fetcher RecordFetcher, rec models.Record, collection []models.Record) []models.Record {
	if len(rec.RelatedIDs) == 0 {
		return relatedByCategory(rec, collection)
	}

	out := make([]models.Record, 0, len(rec.RelatedIDs))
	for _, id := range rec.RelatedIDs {
		related, err := fetcher.FetchRecord(ctx, id)
		if err != nil {
			continue
		}
		if !looksLikeListing(related) {
			continue
		}
		out = append(out, related)
	}
	return out
}

func relatedByCategory(rec models.Record, collection []models.Record) []models.Record {
	out := make([]models.Record, 0, relatedFallbackLimit)
	for _, r := range collection {
		if r.ID == rec.ID || r.Category != rec.Category {
			continue
		}
		out = append(out, r)
		if len(out) == relatedFallbackLimit {
			break
		}
	}
	return out
}

// looksLikeListing rejects linked records that are not motorcycle
// listings: no brand, or neither a title nor a brand+model pair.
func looksLikeListing(r models.Record) bool {
	hasTitle := r.TitleEn != "" || r.TitleGr != "" || (r.Brand != "" && r.Model != "")
	return hasTitle && r.Brand != ""
}
