package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobhunt/backend/internal/models"
	mongorepo "github.com/jobhunt/backend/internal/repositories/mongo"
	"github.com/jobhunt/backend/internal/services"
	"github.com/jobhunt/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type JobHandler struct {
	svc services.JobService
}

func NewJobHandler(svc services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

type CreateJobRequest struct {
	Title          string     `json:"title" binding:"required"`
	MaxApplicants  int        `json:"maxApplicants" binding:"required"`
	MaxPositions   int        `json:"maxPositions" binding:"required"`
	DateOfPosting  *time.Time `json:"dateOfPosting"`
	Deadline       *time.Time `json:"deadline"`
	Skillsets      []string   `json:"skillsets"`
	JobType        string     `json:"jobType"`
	Duration       int        `json:"duration"`
	Salary         int        `json:"salary"`
	CompanyName    string     `json:"companyName"`
	Responsibility string     `json:"responsibility"`
}

func (h *JobHandler) Create(c *gin.Context) {
	p, ok := requireType(c, models.TypeRecruiter, "You don't have permissions to add jobs")
	if !ok {
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Create", "invalid request body", err))
		return
	}

	job := &models.Job{
		Title:          req.Title,
		MaxApplicants:  req.MaxApplicants,
		MaxPositions:   req.MaxPositions,
		Deadline:       req.Deadline,
		Skillsets:      req.Skillsets,
		JobType:        req.JobType,
		Duration:       req.Duration,
		Salary:         req.Salary,
		CompanyName:    req.CompanyName,
		Responsibility: req.Responsibility,
	}
	if req.DateOfPosting != nil {
		job.DateOfPosting = *req.DateOfPosting
	}

	if err := h.svc.Create(c.Request.Context(), p, job); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, messageResponse{Message: "Job added successfully to the database"})
}

func (h *JobHandler) List(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	filter, sort, err := parseJobQuery(c, p)
	if err != nil {
		writeError(c, err)
		return
	}

	jobs, err := h.svc.List(c.Request.Context(), filter, sort)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// parseJobQuery maps the listing query string onto the repository
// filter. myjobs is only meaningful for recruiters and silently
// ignored otherwise.
func parseJobQuery(c *gin.Context, p models.Principal) (mongorepo.JobFilter, []mongorepo.SortKey, error) {
	const op = "JobHandler.List"
	var f mongorepo.JobFilter

	if p.Type == models.TypeRecruiter && c.Query("myjobs") != "" {
		owner := p.ID
		f.OwnerID = &owner
	}
	f.TitleQuery = c.Query("q")
	f.JobTypes = c.QueryArray("jobType")

	var err error
	if f.SalaryMin, err = intQuery(c, "salaryMin"); err != nil {
		return f, nil, utils.E(utils.CodeInvalidArgument, op, "salaryMin must be a number", err)
	}
	if f.SalaryMax, err = intQuery(c, "salaryMax"); err != nil {
		return f, nil, utils.E(utils.CodeInvalidArgument, op, "salaryMax must be a number", err)
	}
	if f.DurationUnder, err = intQuery(c, "duration"); err != nil {
		return f, nil, utils.E(utils.CodeInvalidArgument, op, "duration must be a number", err)
	}

	return f, parseSortKeys(c), nil
}

func intQuery(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// parseSortKeys collects the repeatable asc/desc query keys; ascending
// keys sort before descending ones when both are present.
func parseSortKeys(c *gin.Context) []mongorepo.SortKey {
	var sort []mongorepo.SortKey
	for _, key := range c.QueryArray("asc") {
		sort = append(sort, mongorepo.SortKey{Field: key})
	}
	for _, key := range c.QueryArray("desc") {
		sort = append(sort, mongorepo.SortKey{Field: key, Desc: true})
	}
	return sort
}

func (h *JobHandler) Get(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		writeError(c, utils.E(utils.CodeNotFound, "JobHandler.Get", "Job does not exist", err))
		return
	}

	job, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

type UpdateJobRequest struct {
	MaxApplicants *int       `json:"maxApplicants"`
	MaxPositions  *int       `json:"maxPositions"`
	Deadline      *time.Time `json:"deadline"`
}

func (h *JobHandler) Update(c *gin.Context) {
	p, ok := requireType(c, models.TypeRecruiter, "You don't have permissions to change the job details")
	if !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		writeError(c, utils.E(utils.CodeNotFound, "JobHandler.Update", "Job does not exist", err))
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Update", "invalid request body", err))
		return
	}

	err = h.svc.Update(c.Request.Context(), p, id, services.JobPatch{
		MaxApplicants: req.MaxApplicants,
		MaxPositions:  req.MaxPositions,
		Deadline:      req.Deadline,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Job details updated successfully"})
}

func (h *JobHandler) Delete(c *gin.Context) {
	p, ok := requireType(c, models.TypeRecruiter, "You don't have permissions to delete the job")
	if !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		writeError(c, utils.E(utils.CodeForbidden, "JobHandler.Delete", "You don't have permissions to delete the job", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), p, id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Job deleted successfully"})
}
