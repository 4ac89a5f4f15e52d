package repository

import (
	"errors"
	"testing"

	"medcore-clinic/internal/domain/entity"
	domainRepo "medcore-clinic/internal/domain/repository"

	"github.com/google/uuid"
)

func newVisit(name string, status entity.VisitStatus) *entity.PatientVisit {
	return &entity.PatientVisit{
		ID:     uuid.New(),
		Name:   name,
		Status: status,
	}
}

func TestVisitRepositoryCreateAndFind(t *testing.T) {
	repo := NewVisitRepository()
	visit := newVisit("Ana Martinez", entity.VisitStatusRegistered)

	if err := repo.Create(visit); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if visit.Version != 1 {
		t.Errorf("Version after create = %d, want 1", visit.Version)
	}

	found, err := repo.FindByID(visit.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil || found.Name != "Ana Martinez" {
		t.Fatalf("unexpected visit: %+v", found)
	}

	missing, err := repo.FindByID(uuid.New())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestVisitRepositoryInsertionOrder(t *testing.T) {
	repo := NewVisitRepository()
	names := []string{"first", "second", "third"}
	for _, name := range names {
		if err := repo.Create(newVisit(name, entity.VisitStatusRegistered)); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	visits, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	for i, name := range names {
		if visits[i].Name != name {
			t.Errorf("visits[%d].Name = %s, want %s", i, visits[i].Name, name)
		}
	}
}

func TestVisitRepositoryFindByStatus(t *testing.T) {
	repo := NewVisitRepository()
	repo.Create(newVisit("a", entity.VisitStatusRegistered))
	repo.Create(newVisit("b", entity.VisitStatusInTriage))
	repo.Create(newVisit("c", entity.VisitStatusRegistered))
	repo.Create(newVisit("d", entity.VisitStatusCompleted))

	visits, err := repo.FindByStatus(entity.VisitStatusRegistered, entity.VisitStatusInTriage)
	if err != nil {
		t.Fatalf("FindByStatus: %v", err)
	}
	if len(visits) != 3 {
		t.Fatalf("expected 3 visits, got %d", len(visits))
	}
	if visits[0].Name != "a" || visits[1].Name != "b" || visits[2].Name != "c" {
		t.Errorf("unexpected order: %s %s %s", visits[0].Name, visits[1].Name, visits[2].Name)
	}
}

func TestVisitRepositoryVersionConflict(t *testing.T) {
	repo := NewVisitRepository()
	visit := newVisit("Ana", entity.VisitStatusRegistered)
	repo.Create(visit)

	stale, _ := repo.FindByID(visit.ID)
	fresh, _ := repo.FindByID(visit.ID)

	fresh.Status = entity.VisitStatusInTriage
	if err := repo.Update(fresh); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if fresh.Version != 2 {
		t.Errorf("Version after update = %d, want 2", fresh.Version)
	}

	stale.Priority = entity.PriorityUrgent
	err := repo.Update(stale)
	if !errors.Is(err, domainRepo.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}

	// the losing write must not be visible
	current, _ := repo.FindByID(visit.ID)
	if current.Priority == entity.PriorityUrgent {
		t.Error("stale write leaked into the store")
	}
	if current.Status != entity.VisitStatusInTriage {
		t.Errorf("winning write lost: status = %s", current.Status)
	}
}

func TestVisitRepositoryReturnsCopies(t *testing.T) {
	repo := NewVisitRepository()
	visit := newVisit("Ana", entity.VisitStatusInConsultation)
	visit.Diagnoses = []entity.Diagnosis{{
		ID:        uuid.New(),
		CIE10Code: "I10",
		LabExams:  []entity.ExamOrder{{ID: uuid.New(), ExamID: "hem-01"}},
	}}
	repo.Create(visit)

	first, _ := repo.FindByID(visit.ID)
	first.Diagnoses[0].LabExams[0].ExamID = "mutated"
	first.Name = "mutated"

	second, _ := repo.FindByID(visit.ID)
	if second.Name == "mutated" || second.Diagnoses[0].LabExams[0].ExamID == "mutated" {
		t.Error("repository handed out aliased state")
	}
}
