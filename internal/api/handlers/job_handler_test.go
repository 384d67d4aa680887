package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jobhunt/backend/internal/models"
	mongorepo "github.com/jobhunt/backend/internal/repositories/mongo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/jobs?"+rawQuery, nil)
	return c
}

func TestParseJobQueryFilters(t *testing.T) {
	c := queryContext(t, "q=engineer&jobType=Full%20Time&jobType=Part%20Time&salaryMin=1000&salaryMax=5000&duration=6")
	p := models.Principal{ID: primitive.NewObjectID(), Type: models.TypeApplicant}

	f, sort, err := parseJobQuery(c, p)
	require.NoError(t, err)

	assert.Equal(t, "engineer", f.TitleQuery)
	assert.Equal(t, []string{"Full Time", "Part Time"}, f.JobTypes)
	require.NotNil(t, f.SalaryMin)
	assert.Equal(t, 1000, *f.SalaryMin)
	require.NotNil(t, f.SalaryMax)
	assert.Equal(t, 5000, *f.SalaryMax)
	require.NotNil(t, f.DurationUnder)
	assert.Equal(t, 6, *f.DurationUnder)
	assert.Empty(t, sort)
}

func TestParseJobQueryMyJobs(t *testing.T) {
	recruiter := models.Principal{ID: primitive.NewObjectID(), Type: models.TypeRecruiter}

	f, _, err := parseJobQuery(queryContext(t, "myjobs=1"), recruiter)
	require.NoError(t, err)
	require.NotNil(t, f.OwnerID)
	assert.Equal(t, recruiter.ID, *f.OwnerID)

	// applicants never see an owner filter, whatever they send
	applicant := models.Principal{ID: primitive.NewObjectID(), Type: models.TypeApplicant}
	f, _, err = parseJobQuery(queryContext(t, "myjobs=1"), applicant)
	require.NoError(t, err)
	assert.Nil(t, f.OwnerID)
}

func TestParseJobQueryBadNumber(t *testing.T) {
	p := models.Principal{ID: primitive.NewObjectID(), Type: models.TypeApplicant}

	_, _, err := parseJobQuery(queryContext(t, "salaryMin=lots"), p)
	assert.Error(t, err)
}

func TestParseSortKeys(t *testing.T) {
	c := queryContext(t, "asc=salary&desc=rating&desc=dateOfPosting")

	sort := parseSortKeys(c)
	assert.Equal(t, []mongorepo.SortKey{
		{Field: "salary"},
		{Field: "rating", Desc: true},
		{Field: "dateOfPosting", Desc: true},
	}, sort)
}
