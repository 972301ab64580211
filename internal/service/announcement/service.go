package announcement

import (
	"context"

	"github.com/erphq/hrm-backend-go/internal/domain/announcement"
	"github.com/erphq/hrm-backend-go/internal/domain/employee"
)

type ServiceImpl struct {
	announcementRepo announcement.Repository
	employeeRepo     employee.Repository
}

func NewAnnouncementService(announcementRepo announcement.Repository, employeeRepo employee.Repository) announcement.Service {
	return &ServiceImpl{announcementRepo: announcementRepo, employeeRepo: employeeRepo}
}

// List implements announcement.Service.
func (s *ServiceImpl) List(ctx context.Context, employeeID int64) ([]announcement.Response, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	items, err := s.announcementRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]announcement.Response, 0, len(items))
	for _, a := range items {
		responses = append(responses, shape(a))
	}
	return responses, nil
}

// MarkRead implements announcement.Service.
func (s *ServiceImpl) MarkRead(ctx context.Context, employeeID, announcementID int64) (announcement.Response, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return announcement.Response{}, err
	}

	a, err := s.announcementRepo.GetByIDAndEmployee(ctx, announcementID, employeeID)
	if err != nil {
		return announcement.Response{}, err
	}

	if a.Status != announcement.StatusRead {
		if err := s.announcementRepo.MarkRead(ctx, a.ID); err != nil {
			return announcement.Response{}, err
		}
		a.Status = announcement.StatusRead
	}

	return shape(a), nil
}

func shape(a announcement.Announcement) announcement.Response {
	return announcement.Response{
		ID:      a.ID,
		Author:  a.Author,
		Date:    a.Date.Format(employee.DateFormat),
		Status:  a.Status,
		Title:   a.Title,
		Content: a.Content,
	}
}

func (s *ServiceImpl) checkEmployee(ctx context.Context, employeeID int64) error {
	ok, err := s.employeeRepo.Exists(ctx, employeeID)
	if err != nil {
		return err
	}
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
