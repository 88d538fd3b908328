package v1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/learnkeep/learnkeep/app/logic/v1"
	"github.com/learnkeep/learnkeep/pkg/types"
)

func sampleResources() []types.Resource {
	return []types.Resource{
		{ID: "1", Title: "Intro to Rust", Description: "Systems programming from scratch", Type: types.RESOURCE_TYPE_ARTICLE},
		{ID: "2", Title: "Go Basics", Description: "A short course on Go basics", Type: types.RESOURCE_TYPE_TUTORIAL},
		{ID: "3", Title: "Docker Deep Dive", Description: "Containers explained with rust examples", Type: types.RESOURCE_TYPE_VIDEO},
	}
}

func TestFilterResourcesCaseInsensitiveSearch(t *testing.T) {
	got := v1.FilterResources(sampleResources(), "rust", "")

	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestFilterResourcesMatchesDescription(t *testing.T) {
	got := v1.FilterResources(sampleResources(), "short course", "")

	assert.Len(t, got, 1)
	assert.Equal(t, "Go Basics", got[0].Title)
}

func TestFilterResourcesTypeFilter(t *testing.T) {
	got := v1.FilterResources(sampleResources(), "", "Video")

	assert.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestFilterResourcesSearchAndTypeIntersect(t *testing.T) {
	got := v1.FilterResources(sampleResources(), "rust", "Video")

	assert.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestFilterResourcesNoopFilters(t *testing.T) {
	assert.Len(t, v1.FilterResources(sampleResources(), "", ""), 3)
	assert.Len(t, v1.FilterResources(sampleResources(), "", "all"), 3)
	assert.Len(t, v1.FilterResources(sampleResources(), "   ", "all"), 3)
}

func TestFilterResourcesIdempotent(t *testing.T) {
	once := v1.FilterResources(sampleResources(), "rust", "Article")
	twice := v1.FilterResources(once, "rust", "Article")

	assert.Equal(t, once, twice)
}

func TestFilterResourcesNoMatch(t *testing.T) {
	assert.Empty(t, v1.FilterResources(sampleResources(), "kubernetes", ""))
	assert.Empty(t, v1.FilterResources(sampleResources(), "rust", "Tutorial"))
}

func TestFilterResourcesNeverNil(t *testing.T) {
	assert.NotNil(t, v1.FilterResources(nil, "", ""))
	assert.NotNil(t, v1.FilterResources([]types.Resource{}, "", "all"))
	assert.NotNil(t, v1.FilterResources(sampleResources(), "kubernetes", ""))
}
