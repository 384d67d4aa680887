package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildJobMatchEmpty(t *testing.T) {
	assert.Empty(t, buildJobMatch(JobFilter{}))
}

func TestBuildJobMatchTitleIsCaseInsensitive(t *testing.T) {
	m := buildJobMatch(JobFilter{TitleQuery: "engineer"})

	title, ok := m["title"].(bson.M)
	require.True(t, ok)
	re, ok := title["$regex"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "engineer", re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestBuildJobMatchSalaryBounds(t *testing.T) {
	lo, hi := 50000, 100000

	m := buildJobMatch(JobFilter{SalaryMin: &lo, SalaryMax: &hi})
	assert.Equal(t, bson.M{"$gte": 50000, "$lte": 100000}, m["salary"])

	m = buildJobMatch(JobFilter{SalaryMin: &lo})
	assert.Equal(t, bson.M{"$gte": 50000}, m["salary"])
}

func TestBuildJobMatchDurationIsStrict(t *testing.T) {
	d := 6
	m := buildJobMatch(JobFilter{DurationUnder: &d})
	assert.Equal(t, bson.M{"$lt": 6}, m["duration"])
}

func TestBuildJobMatchOwnerAndTypes(t *testing.T) {
	owner := primitive.NewObjectID()
	m := buildJobMatch(JobFilter{OwnerID: &owner, JobTypes: []string{"Full Time", "Part Time"}})

	assert.Equal(t, owner, m["userId"])
	assert.Equal(t, bson.M{"$in": []string{"Full Time", "Part Time"}}, m["jobType"])
}

func TestBuildSortOrderPreserved(t *testing.T) {
	d := buildSort([]SortKey{{Field: "salary", Desc: true}, {Field: "title"}})

	require.Len(t, d, 2)
	assert.Equal(t, bson.E{Key: "salary", Value: -1}, d[0])
	assert.Equal(t, bson.E{Key: "title", Value: 1}, d[1])
}

func TestBuildJobPipelineShape(t *testing.T) {
	p := buildJobPipeline(JobFilter{TitleQuery: "go"}, []SortKey{{Field: "salary", Desc: true}})

	// lookup, unwind, match, sort
	require.Len(t, p, 4)
	assert.Equal(t, "$lookup", p[0][0].Key)
	assert.Equal(t, "$unwind", p[1][0].Key)
	assert.Equal(t, "$match", p[2][0].Key)
	assert.Equal(t, "$sort", p[3][0].Key)

	lookup, ok := p[0][0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, "recruiterinfos", lookup["from"])

	p = buildJobPipeline(JobFilter{}, nil)
	require.Len(t, p, 3)
}
