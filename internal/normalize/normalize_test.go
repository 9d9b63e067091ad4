package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-engine/internal/csvio"
	"jobboard-engine/internal/domain"
)

const meritmindCSV = "title,link,data_added\n" +
	"Redovisningsekonom,https://meritmind.se/jobb/1001,05/03/24\n" +
	"Business Controller,https://meritmind.se/jobb/1002,06/03/24\n"

const pooliaCSV = "title,job_url,published_date,apply_by_date,data_added\n" +
	"Ekonomiassistent,https://poolia.se/jobb/2001,01/03/24,31/03/24,05/03/24\n"

const platsbankenCSV = "id,email,city,occupation,data_added\n" +
	"29384756,hr@bolaget.se,Stockholm,Revisor,05/03/24\n" +
	"29384757,,Göteborg,,06/03/24\n"

func TestMeritmindNormalize(t *testing.T) {
	jobs := Meritmind{}.Normalize(csvio.Parse(meritmindCSV))

	require.Len(t, jobs, 2)
	assert.Equal(t, "meritmind-0", jobs[0].ID)
	assert.Equal(t, "meritmind-1", jobs[1].ID)
	assert.Equal(t, "Redovisningsekonom", jobs[0].Title)
	assert.Equal(t, "https://meritmind.se/jobb/1001", jobs[0].URL)
	assert.Equal(t, domain.SourceMeritmind, jobs[0].Source)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local), jobs[0].DateAdded)
	assert.Nil(t, jobs[0].PublishedDate)
	assert.Nil(t, jobs[0].ApplyByDate)
}

func TestPooliaNormalize(t *testing.T) {
	jobs := Poolia{}.Normalize(csvio.Parse(pooliaCSV))

	require.Len(t, jobs, 1)
	j := jobs[0]
	assert.Equal(t, "poolia-0", j.ID)
	assert.Equal(t, "https://poolia.se/jobb/2001", j.URL)
	assert.Equal(t, domain.SourcePoolia, j.Source)
	require.NotNil(t, j.PublishedDate)
	require.NotNil(t, j.ApplyByDate)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), *j.PublishedDate)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.Local), *j.ApplyByDate)
}

func TestArbetsformedlingenNormalize(t *testing.T) {
	jobs := Arbetsformedlingen{}.Normalize(csvio.Parse(platsbankenCSV))

	require.Len(t, jobs, 2)
	assert.Equal(t, "arbetsformedlingen-29384756", jobs[0].ID)
	assert.Equal(t, "Revisor", jobs[0].Title)
	assert.Equal(t, "https://arbetsformedlingen.se/platsbanken/annonser/29384756", jobs[0].URL)
	assert.Equal(t, "hr@bolaget.se", jobs[0].Email)
	assert.Equal(t, "Stockholm", jobs[0].City)

	// blank occupation falls back to the generic label
	assert.Equal(t, FallbackTitle, jobs[1].Title)
	assert.Equal(t, "", jobs[1].Occupation)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, n := range []Normalizer{Meritmind{}, Poolia{}, Arbetsformedlingen{}} {
		raw := map[domain.Source]string{
			domain.SourceMeritmind:          meritmindCSV,
			domain.SourcePoolia:             pooliaCSV,
			domain.SourceArbetsformedlingen: platsbankenCSV,
		}[n.Source()]

		first := n.Normalize(csvio.Parse(raw))
		second := n.Normalize(csvio.Parse(raw))
		assert.Equal(t, first, second, "source %s", n.Source())
	}
}

func TestMissingFieldsStillMapped(t *testing.T) {
	// a row with blank required fields is mapped, not excluded; defaults
	// apply per field
	jobs := Meritmind{}.Normalize(csvio.Parse("title,link,data_added\n,,05/03/24\n"))

	require.Len(t, jobs, 1)
	assert.Equal(t, "", jobs[0].Title)
	assert.Equal(t, "", jobs[0].URL)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local), jobs[0].DateAdded)
}

func TestForSource(t *testing.T) {
	for _, s := range domain.Sources() {
		n := ForSource(s)
		require.NotNil(t, n)
		assert.Equal(t, s, n.Source())
	}
	assert.Nil(t, ForSource(domain.Source("linkedin")))
}
