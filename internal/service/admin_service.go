package service

import (
	"streamsphere/internal/repository"
	"streamsphere/pkg/logging"
)

type IAdminService interface {
	FetchDbConfigs() error
}

type AdminService struct {
	adminRepo repository.IAdminRepository
}

func NewAdminService(adminRepo repository.IAdminRepository) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
	}
}

//-----------------------------------------
//-----------------------------------------

func (m *AdminService) FetchDbConfigs() error {
	err := m.adminRepo.FetchDbConfigs()
	if err == nil {
		logging.Log.Info("dynamic configs reloaded")
	}
	return err
}
