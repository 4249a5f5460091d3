package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasQuantifiedMetric_Percentage(t *testing.T) {
	assert.True(t, HasQuantifiedMetric("Reduced latency by 45%"))
	assert.True(t, HasQuantifiedMetric("improved throughput 12.5 %"))
}

func TestHasQuantifiedMetric_Currency(t *testing.T) {
	assert.True(t, HasQuantifiedMetric("Saved $1.2M annually"))
	assert.True(t, HasQuantifiedMetric("managed a €500k budget"))
}

func TestHasQuantifiedMetric_NumberWithUnit(t *testing.T) {
	assert.True(t, HasQuantifiedMetric("Served 10,000 users daily"))
	assert.True(t, HasQuantifiedMetric("shipped 15 features per quarter"))
}

func TestHasQuantifiedMetric_NoMetric(t *testing.T) {
	assert.False(t, HasQuantifiedMetric("Worked closely with stakeholders"))
	// A bare number with no unit noun is not a metric.
	assert.False(t, HasQuantifiedMetric("Joined the platform group in spring"))
	assert.False(t, HasQuantifiedMetric("Used Python 3 extensively"))
}

func TestStartsWithActionVerb(t *testing.T) {
	assert.True(t, StartsWithActionVerb("Led a team of five engineers"))
	assert.True(t, StartsWithActionVerb("•Implemented CI pipelines"))
	assert.False(t, StartsWithActionVerb("Responsible for deployments"))
	assert.False(t, StartsWithActionVerb(""))
}

func TestClassifyDate(t *testing.T) {
	assert.Equal(t, FormatMonthName, ClassifyDate("Jan 2020"))
	assert.Equal(t, FormatMonthName, ClassifyDate("September 2019"))
	assert.Equal(t, FormatMonthName, ClassifyDate("Sept. 2019"))
	assert.Equal(t, FormatNumeric, ClassifyDate("01/2020"))
	assert.Equal(t, FormatNumeric, ClassifyDate("1/20"))
	assert.Equal(t, FormatYearOnly, ClassifyDate("2021"))
	assert.Equal(t, FormatUnknown, ClassifyDate("Present"))
	assert.Equal(t, FormatUnknown, ClassifyDate("sometime in 2020"))
}

func TestIsValidDate_CurrentMarkers(t *testing.T) {
	assert.True(t, IsValidDate("Present"))
	assert.True(t, IsValidDate("current"))
	assert.True(t, IsValidDate("Mar 2022"))
	assert.False(t, IsValidDate("spring semester"))
}

func TestContainsPictograph(t *testing.T) {
	assert.True(t, ContainsPictograph("Results-driven engineer 🚀"))
	assert.True(t, ContainsPictograph("☀ sunny disposition"))
	assert.False(t, ContainsPictograph("Plain ASCII text, naturally."))
	assert.False(t, ContainsPictograph("Ünïcödé letters are fine"))
}
