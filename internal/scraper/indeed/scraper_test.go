package indeed

import (
	"context"
	"testing"

	"go-internship-agent/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Indeed</title>
<item>
  <title>Data Analyst Intern - Infosys - Pune, Maharashtra</title>
  <link>https://in.indeed.com/viewjob?jk=abc</link>
  <source>Infosys</source>
  <pubDate>Fri, 27 Feb 2026 08:00:00 GMT</pubDate>
  <description>&lt;b&gt;SQL&lt;/b&gt; and Excel &lt;br&gt;Stipend: 12000</description>
</item>
<item>
  <title></title>
  <link>https://in.indeed.com/viewjob?jk=skip</link>
</item>
<item>
  <title>Business Analyst Fresher</title>
  <link> https://in.indeed.com/viewjob?jk=def </link>
</item>
</channel></rss>`

type stubFetcher string

func (s stubFetcher) Fetch(context.Context, string) ([]byte, error) { return []byte(s), nil }

func TestParse(t *testing.T) {
	jobs, err := Parse([]byte(feedXML), 15)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	first := jobs[0]
	assert.Equal(t, "Data Analyst Intern - Infosys - Pune, Maharashtra", first.Title)
	assert.Equal(t, "Infosys", first.Company)
	assert.Equal(t, "https://in.indeed.com/viewjob?jk=abc", first.URL)
	assert.Equal(t, "SQL and Excel Stipend: 12000", first.Description)
	assert.Equal(t, "Fri, 27 Feb 2026 08:00:00 GMT", first.PostedDate)
	assert.Equal(t, "Indeed", first.Source)

	assert.Equal(t, "https://in.indeed.com/viewjob?jk=def", jobs[1].URL)
	assert.Empty(t, jobs[1].Location)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("<rss><channel><item>"), 15)
	assert.Error(t, err)
}

func TestScrape(t *testing.T) {
	s := NewIndeedScraper(stubFetcher(feedXML), config.Source{URL: "https://in.indeed.com/rss"})
	jobs, err := s.Scrape(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}
