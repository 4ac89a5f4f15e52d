package usecase

import (
	"context"

	"medcore-clinic/internal/converter"
	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// CatalogUsecase exposes the read-only reference data behind the
// consultation pickers
type CatalogUsecase interface {
	SearchCIE10(ctx context.Context, query string) (*dto.CIE10ListResponse, error)
	LabExamCategories(ctx context.Context) (*dto.ExamCategoryListResponse, error)
	ImagingExamCategories(ctx context.Context) (*dto.ExamCategoryListResponse, error)
	ListMedications(ctx context.Context, query string) (*dto.MedicationListResponse, error)
}

type catalogUsecase struct {
	log         *logrus.Logger
	catalogRepo repository.CatalogRepository
}

func NewCatalogUsecase(log *logrus.Logger, catalogRepo repository.CatalogRepository) CatalogUsecase {
	return &catalogUsecase{
		log:         log,
		catalogRepo: catalogRepo,
	}
}

// SearchCIE10 matches code or label, case-insensitive. An empty query
// returns the whole catalog.
func (u *catalogUsecase) SearchCIE10(ctx context.Context, query string) (*dto.CIE10ListResponse, error) {
	codes, err := u.catalogRepo.SearchCIE10(query)
	if err != nil {
		u.log.Warnf("Failed to search CIE-10 codes: %+v", err)
		return nil, err
	}
	return &dto.CIE10ListResponse{
		Codes: converter.CIE10ToResponses(codes),
		Total: len(codes),
	}, nil
}

func (u *catalogUsecase) LabExamCategories(ctx context.Context) (*dto.ExamCategoryListResponse, error) {
	categories, err := u.catalogRepo.LabExamCategories()
	if err != nil {
		u.log.Warnf("Failed to list lab exam categories: %+v", err)
		return nil, err
	}
	return &dto.ExamCategoryListResponse{
		Categories: converter.ExamCategoriesToResponses(categories),
		Total:      len(categories),
	}, nil
}

func (u *catalogUsecase) ImagingExamCategories(ctx context.Context) (*dto.ExamCategoryListResponse, error) {
	categories, err := u.catalogRepo.ImagingExamCategories()
	if err != nil {
		u.log.Warnf("Failed to list imaging exam categories: %+v", err)
		return nil, err
	}
	return &dto.ExamCategoryListResponse{
		Categories: converter.ExamCategoriesToResponses(categories),
		Total:      len(categories),
	}, nil
}

// ListMedications returns the medication catalog, filtered by name when
// a query is given
func (u *catalogUsecase) ListMedications(ctx context.Context, query string) (*dto.MedicationListResponse, error) {
	medications, err := u.catalogRepo.SearchMedications(query)
	if err != nil {
		u.log.Warnf("Failed to list medications: %+v", err)
		return nil, err
	}
	return &dto.MedicationListResponse{
		Medications: converter.MedicationsToResponses(medications),
		Total:       len(medications),
	}, nil
}
