package services

import (
	"fmt"

	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/internal/repositories"
)

type ProjectEntryService struct {
	projectEntryRepo *repositories.ProjectEntryRepository
}

func NewProjectEntryService(projectEntryRepo *repositories.ProjectEntryRepository) *ProjectEntryService {
	return &ProjectEntryService{
		projectEntryRepo: projectEntryRepo,
	}
}

func (s *ProjectEntryService) CreateProject(project *models.ProjectEntry) error {
	if err := project.Validate(); err != nil {
		return err
	}

	if err := s.projectEntryRepo.Create(project); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (s *ProjectEntryService) GetAllProjects() ([]*models.ProjectEntry, error) {
	projects, err := s.projectEntryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	if projects == nil {
		projects = []*models.ProjectEntry{}
	}
	return projects, nil
}
