package naukri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	html := `<html><body>
<article class="jobTuple">
  <a class="title" href="https://www.naukri.com/job-listings-data-analyst-intern-1">Data Analyst Intern</a>
  <a class="subTitle">Tata Consultancy Services</a>
  <span class="location">Mumbai</span>
  <span class="job-post-day">3 Days Ago</span>
</article>
<article class="jobTuple">
  <a class="title" href="/relative/ad">Sponsored</a>
</article>
<article class="jobTuple">
  <a class="title" href="https://www.naukri.com/job-listings-bi-analyst-2">BI Analyst Fresher</a>
</article>
</body></html>`

	jobs, err := Parse([]byte(html), 15)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Data Analyst Intern", jobs[0].Title)
	assert.Equal(t, "Tata Consultancy Services", jobs[0].Company)
	assert.Equal(t, "Mumbai", jobs[0].Location)
	assert.Equal(t, "3 Days Ago", jobs[0].PostedDate)
	assert.Equal(t, "Naukri", jobs[0].Source)
	assert.Equal(t, "BI Analyst Fresher", jobs[1].Title)
}

func TestParse_FallsBackToPlainArticles(t *testing.T) {
	html := `<article><a href="https://www.naukri.com/x">Data Analyst</a></article>`
	jobs, err := Parse([]byte(html), 15)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "https://www.naukri.com/x", jobs[0].URL)
}
