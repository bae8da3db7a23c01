package service

import (
	"time"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Services bundles the workflow-side services for handler wiring.
type Services struct {
	Checklist      *ChecklistService
	Checkin        *CheckinService
	Feasibility    *FeasibilityService
	MassProduction *MassProductionService
	Readiness      *ReadinessService
	Offer          *OfferService
	Auth           *AuthService
}

// AuthParams carries the token settings the auth service needs.
type AuthParams struct {
	Secret        string
	Issuer        string
	AccessExpire  time.Duration
	RefreshExpire time.Duration
}

func NewServices(repos *repository.Repositories, db *gorm.DB, rdb *redis.Client, auth AuthParams) *Services {
	return &Services{
		Checklist:      NewChecklistService(repos.Stage, repos.Task, db),
		Checkin:        NewCheckinService(repos.Checkin),
		Feasibility:    NewFeasibilityService(repos.Feasibility, db),
		MassProduction: NewMassProductionService(repos.MassProduction),
		Readiness:      NewReadinessService(repos.Readiness, db),
		Offer:          NewOfferService(repos.Offer, db),
		Auth:           NewAuthService(repos.User, rdb, auth.Secret, auth.Issuer, auth.AccessExpire, auth.RefreshExpire),
	}
}
