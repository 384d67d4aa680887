package pdf

import (
	"testing"

	"github.com/jobhunt/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResume(t *testing.T) {
	out, err := RenderResume(&models.Resume{
		Name:     "Ada Lovelace",
		Summary:  "Backend engineer with a taste for distributed systems.",
		Email:    "ada@example.com",
		Location: "London",
		Education: []models.Education{
			{InstitutionName: "University of London", Degree: "BSc Mathematics", StartYear: 2015, EndYear: 2019},
		},
		Projects: []models.ResumeProject{
			{Title: "Analytical Engine", Description: "Programs for a mechanical computer.", Link: "https://example.com"},
		},
		Skills: []string{"Go", "MongoDB"},
	})
	require.NoError(t, err)

	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderResumeMinimal(t *testing.T) {
	out, err := RenderResume(&models.Resume{Name: "Ada Lovelace"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
