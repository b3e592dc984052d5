package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyProfile(t *testing.T) {
	c := Company()
	assert.Equal(t, "Viggen Holdings", c.Name)
	assert.Equal(t, "invest@viggen.example", c.InvestorEmail)
	assert.Len(t, c.Leaders, 2)
}

func TestSubsidiaryBySlug(t *testing.T) {
	s, ok := SubsidiaryBySlug("yesindeed")
	require.True(t, ok)
	assert.Equal(t, "YesIndeed", s.Name)
	assert.Len(t, s.Services, 4)
	assert.Len(t, s.Portfolio, 3)

	_, ok = SubsidiaryBySlug("nope")
	assert.False(t, ok)
}

func TestInsightsNewestFirst(t *testing.T) {
	list := Insights()
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].PublishedAt, list[i].PublishedAt)
	}
	assert.Equal(t, "insight-001", list[0].ID)
}

func TestInsightsByTag(t *testing.T) {
	engineering := InsightsByTag("engineering")
	assert.Len(t, engineering, 2)

	assert.Empty(t, InsightsByTag("no-such-tag"))
}
