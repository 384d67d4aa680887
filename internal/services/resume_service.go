package services

import (
	"context"
	"errors"

	"github.com/jobhunt/backend/internal/models"
	"github.com/jobhunt/backend/internal/pdf"
	mongorepo "github.com/jobhunt/backend/internal/repositories/mongo"
	"github.com/jobhunt/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ResumeService interface {
	Create(ctx context.Context, rs *models.Resume) error

	// Render loads the stored resume and produces the PDF bytes. The
	// document is rendered on demand rather than kept on disk.
	Render(ctx context.Context, id primitive.ObjectID) (*models.Resume, []byte, error)
}

type resumeService struct {
	resumes mongorepo.ResumeRepository
}

func NewResumeService(resumes mongorepo.ResumeRepository) ResumeService {
	return &resumeService{resumes: resumes}
}

func (s *resumeService) Create(ctx context.Context, rs *models.Resume) error {
	const op = "ResumeService.Create"

	if rs.Name == "" {
		return utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}
	for _, edu := range rs.Education {
		if edu.InstitutionName == "" {
			return utils.E(utils.CodeInvalidArgument, op, "education entries need an institutionName", nil)
		}
	}
	for _, p := range rs.Projects {
		if p.Title == "" {
			return utils.E(utils.CodeInvalidArgument, op, "project entries need a title", nil)
		}
	}

	if err := s.resumes.Insert(ctx, rs); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to save resume", err)
	}
	return nil
}

func (s *resumeService) Render(ctx context.Context, id primitive.ObjectID) (*models.Resume, []byte, error) {
	const op = "ResumeService.Render"

	rs, err := s.resumes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, nil, utils.E(utils.CodeNotFound, op, "PDF file not found", err)
		}
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to load resume", err)
	}

	out, err := pdf.RenderResume(rs)
	if err != nil {
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to render resume", err)
	}
	return rs, out, nil
}
