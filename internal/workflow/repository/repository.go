package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories is the workflow repository collection.
type Repositories struct {
	Stage          *StageRepository
	Task           *TaskRepository
	Checkin        *CheckinRepository
	Feasibility    *FeasibilityRepository
	MassProduction *MassProductionRepository
	Readiness      *ReadinessRepository
	Offer          *OfferRepository
	User           *UserRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Stage:          NewStageRepository(db),
		Task:           NewTaskRepository(db),
		Checkin:        NewCheckinRepository(db),
		Feasibility:    NewFeasibilityRepository(db),
		MassProduction: NewMassProductionRepository(db),
		Readiness:      NewReadinessRepository(db),
		Offer:          NewOfferRepository(db),
		User:           NewUserRepository(db),
	}
}
