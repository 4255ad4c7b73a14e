package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"motodesign/pkg/models"
)

// stubFetcher resolves records from a map; missing IDs error like a 404.
type stubFetcher struct {
	records map[string]models.Record
	calls   int
}

func (s *stubFetcher) FetchRecord(_ context.Context, id string) (models.Record, error) {
	s.calls++
	rec, ok := s.records[id]
	if !ok {
		return models.Record{}, errors.New("not found")
	}
	return rec, nil
}

func TestRelated_ExplicitIDs(t *testing.T) {
	fetcher := &stubFetcher{records: map[string]models.Record{
		"recA": {ID: "recA", TitleEn: "MT-09", Brand: "Yamaha", Model: "MT-09"},
		"recB": {ID: "recB", TitleEn: "MT-10", Brand: "Yamaha", Model: "MT-10"},
	}}

	rec := models.Record{ID: "self", RelatedIDs: []string{"recA", "recB"}}
	got := Related(context.Background(), fetcher, rec, nil)
	assert.Equal(t, []string{"recA", "recB"}, ids(got))
}

func TestRelated_FailedFetchShrinksSet(t *testing.T) {
	fetcher := &stubFetcher{records: map[string]models.Record{
		"recA": {ID: "recA", TitleEn: "MT-09", Brand: "Yamaha", Model: "MT-09"},
	}}

	rec := models.Record{ID: "self", RelatedIDs: []string{"recA", "gone", "alsoGone"}}
	got := Related(context.Background(), fetcher, rec, nil)
	assert.Equal(t, []string{"recA"}, ids(got))
	assert.Equal(t, 3, fetcher.calls, "every ID is attempted")
}

func TestRelated_ForeignLinkedRecordsExcluded(t *testing.T) {
	// An inquiry row accidentally linked: normalization gave it the
	// default brand but it has no title and no model.
	fetcher := &stubFetcher{records: map[string]models.Record{
		"inquiry": {ID: "inquiry", Brand: "Yamaha"},
		"real":    {ID: "real", Brand: "Yamaha", Model: "XMAX 300"},
	}}

	rec := models.Record{ID: "self", RelatedIDs: []string{"inquiry", "real"}}
	got := Related(context.Background(), fetcher, rec, nil)
	assert.Equal(t, []string{"real"}, ids(got))
}

func TestRelated_CategoryFallback(t *testing.T) {
	collection := []models.Record{
		{ID: "self", Category: "Scooter"},
		{ID: "s1", Category: "Scooter"},
		{ID: "n1", Category: "Naked"},
		{ID: "s2", Category: "Scooter"},
		{ID: "s3", Category: "Scooter"},
		{ID: "s4", Category: "Scooter"},
	}

	fetcher := &stubFetcher{}
	rec := models.Record{ID: "self", Category: "Scooter", RelatedIDs: []string{}}

	got := Related(context.Background(), fetcher, rec, collection)
	assert.Equal(t, []string{"s1", "s2", "s3"}, ids(got), "same category, self excluded, capped at 3")
	assert.Zero(t, fetcher.calls, "fallback uses the fetched collection, no re-fetch")
}
