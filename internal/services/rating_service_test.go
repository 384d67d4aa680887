package services

import (
	"context"
	"testing"

	"github.com/jobhunt/backend/internal/models"
	"github.com/jobhunt/backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ratingFixture() (*fakeRatingRepo, *fakeAppRepo, *fakeJobRepo, *fakeProfileRepo, RatingService) {
	ratings := newFakeRatingRepo()
	apps := &fakeAppRepo{}
	jobs := newFakeJobRepo()
	profiles := newFakeProfileRepo()
	return ratings, apps, jobs, profiles, NewRatingService(ratings, apps, jobs, profiles)
}

func TestRatingValueRange(t *testing.T) {
	_, _, _, _, svc := ratingFixture()
	sender := models.Principal{ID: primitive.NewObjectID(), Type: models.TypeRecruiter}

	for _, v := range []float64{0, 0.5, 5.5, 6} {
		_, err := svc.Upsert(context.Background(), sender, primitive.NewObjectID(), v)
		assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument), "value %v", v)
	}
}

func TestRecruiterRatesUnknownApplicant(t *testing.T) {
	_, _, _, _, svc := ratingFixture()
	sender := models.Principal{ID: primitive.NewObjectID(), Type: models.TypeRecruiter}

	_, err := svc.Upsert(context.Background(), sender, primitive.NewObjectID(), 4)
	assert.Equal(t, "Applicant didn't work under you. Hence you cannot give a rating.", appMsg(t, err))
}

func TestApplicantRatesUnknownJob(t *testing.T) {
	_, _, _, _, svc := ratingFixture()
	sender := models.Principal{ID: primitive.NewObjectID(), Type: models.TypeApplicant}

	_, err := svc.Upsert(context.Background(), sender, primitive.NewObjectID(), 4)
	assert.Equal(t, "You haven't worked for this job. Hence you cannot give a rating.", appMsg(t, err))
}

func TestRecruiterRatesApplicant(t *testing.T) {
	ratings, apps, _, profiles, svc := ratingFixture()
	sender := models.Principal{ID: primitive.NewObjectID(), Type: models.TypeRecruiter}
	receiver := primitive.NewObjectID()
	apps.apps = append(apps.apps, &models.Application{
		ID: primitive.NewObjectID(), UserID: receiver, RecruiterID: sender.ID,
		JobID: primitive.NewObjectID(), Status: models.Finished,
	})

	msg, err := svc.Upsert(context.Background(), sender, receiver, 3)
	require.NoError(t, err)
	assert.Equal(t, "Rating added successfully", msg)
	assert.Equal(t, 3.0, profiles.applicantRating[receiver])

	// overwrite replaces the row instead of adding a second one
	msg, err = svc.Upsert(context.Background(), sender, receiver, 5)
	require.NoError(t, err)
	assert.Equal(t, "Rating updated successfully", msg)
	assert.Len(t, ratings.rows, 1)
	assert.Equal(t, 5.0, profiles.applicantRating[receiver])
}

func TestApplicantRatingAveragesAcrossSenders(t *testing.T) {
	_, apps, _, profiles, svc := ratingFixture()
	receiver := primitive.NewObjectID()

	r1 := models.Principal{ID: primitive.NewObjectID(), Type: models.TypeRecruiter}
	r2 := models.Principal{ID: primitive.NewObjectID(), Type: models.TypeRecruiter}
	for _, r := range []models.Principal{r1, r2} {
		apps.apps = append(apps.apps, &models.Application{
			ID: primitive.NewObjectID(), UserID: receiver, RecruiterID: r.ID,
			JobID: primitive.NewObjectID(), Status: models.Accepted,
		})
	}

	_, err := svc.Upsert(context.Background(), r1, receiver, 2)
	require.NoError(t, err)
	_, err = svc.Upsert(context.Background(), r2, receiver, 5)
	require.NoError(t, err)

	assert.Equal(t, 3.5, profiles.applicantRating[receiver])
}

func TestApplicantRatesJob(t *testing.T) {
	_, apps, jobs, _, svc := ratingFixture()
	sender := models.Principal{ID: primitive.NewObjectID(), Type: models.TypeApplicant}
	job := testJob(primitive.NewObjectID(), 5, 1)
	require.NoError(t, jobs.Insert(context.Background(), job))
	apps.apps = append(apps.apps, &models.Application{
		ID: primitive.NewObjectID(), UserID: sender.ID, RecruiterID: job.UserID,
		JobID: job.ID, Status: models.Accepted,
	})

	msg, err := svc.Upsert(context.Background(), sender, job.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, "Rating added successfully", msg)
	assert.Equal(t, 4.0, jobs.ratingSet[job.ID])
}

func TestOverwriteSkipsEligibilityRecheck(t *testing.T) {
	// once a rating exists it can be changed even after the working
	// relationship has gone away
	_, apps, _, _, svc := ratingFixture()
	sender := models.Principal{ID: primitive.NewObjectID(), Type: models.TypeRecruiter}
	receiver := primitive.NewObjectID()
	rel := &models.Application{
		ID: primitive.NewObjectID(), UserID: receiver, RecruiterID: sender.ID,
		JobID: primitive.NewObjectID(), Status: models.Finished,
	}
	apps.apps = append(apps.apps, rel)

	_, err := svc.Upsert(context.Background(), sender, receiver, 3)
	require.NoError(t, err)

	apps.apps = nil

	msg, err := svc.Upsert(context.Background(), sender, receiver, 4)
	require.NoError(t, err)
	assert.Equal(t, "Rating updated successfully", msg)
}

func TestGetRatingSentinel(t *testing.T) {
	_, _, _, _, svc := ratingFixture()
	sender := models.Principal{ID: primitive.NewObjectID(), Type: models.TypeApplicant}

	v, err := svc.Get(context.Background(), sender, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, models.NoRating, v)
}

func TestGetRating(t *testing.T) {
	ratings, _, _, _, svc := ratingFixture()
	sender := models.Principal{ID: primitive.NewObjectID(), Type: models.TypeRecruiter}
	receiver := primitive.NewObjectID()
	require.NoError(t, ratings.Save(context.Background(), &models.Rating{
		Category: models.RatesApplicant, ReceiverID: receiver, SenderID: sender.ID, Rating: 4,
	}))

	v, err := svc.Get(context.Background(), sender, receiver)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}
