package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "salao/database/repository/appointment"
	catalogRepo "salao/database/repository/catalog"
	userRepo "salao/database/repository/user"
	"salao/models"
	"salao/services/notification"
	"salao/services/scheduling"
	"salao/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAppointmentService is the production implementation of
// AppointmentService.
type DefaultAppointmentService struct {
	Repo     appointmentRepo.AppointmentRepository
	Users    userRepo.UserRepository
	Services catalogRepo.ServiceRepository

	// Optional collaborators; booking still succeeds when they fail.
	Notifier  notification.NotificationService
	Reminders notification.ReminderScheduler

	// Hours before the appointment at which the reminder fires.
	ReminderLeadHours int
}

// Book validates the request, derives the end time from the service
// duration and persists the appointment unless the employee's slot is
// taken. Cancelled appointments still occupy their slot.
func (s *DefaultAppointmentService) Book(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	if req.ClientID == "" || req.EmployeeID == "" || req.ServiceID == "" || req.Date == "" || req.StartTime == "" {
		return nil, fmt.Errorf("%w: all booking fields are required", ErrInvalidInput)
	}

	svc, err := s.Services.GetByID(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("%w: service %s", ErrNotFound, req.ServiceID)
	}

	appt := &models.Appointment{
		ID:         uuid.NewString(),
		ClientID:   req.ClientID,
		EmployeeID: req.EmployeeID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    scheduling.ComputeEndTime(req.StartTime, svc.Duration),
		Status:     models.StatusPending,
	}

	if err := s.Repo.CreateIfFree(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}

	s.notifyBooked(ctx, appt, svc)
	s.scheduleReminder(appt, svc)

	return appt, nil
}

func (s *DefaultAppointmentService) notifyBooked(ctx context.Context, appt *models.Appointment, svc *models.Service) {
	if s.Notifier == nil {
		return
	}
	msg := fmt.Sprintf("Your %s appointment on %s at %s has been received.", svc.Name, appt.Date, appt.StartTime)
	err := s.Notifier.NotifyUser(ctx, appt.ClientID, "Appointment received", msg,
		models.NotifAppointmentConfirmation, models.RelatedRef{Model: "Appointment", ID: appt.ID})
	if err != nil {
		utils.GetLogger().Warn("Book: confirmation notification failed",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}

func (s *DefaultAppointmentService) scheduleReminder(appt *models.Appointment, svc *models.Service) {
	if s.Reminders == nil {
		return
	}

	startsAt, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.StartTime, time.Local)
	if err != nil {
		utils.GetLogger().Warn("Book: cannot schedule reminder for unparseable start",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		return
	}

	lead := s.ReminderLeadHours
	if lead <= 0 {
		lead = 24
	}
	fireAt := startsAt.Add(-time.Duration(lead) * time.Hour)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		UserID:        appt.ClientID,
		Title:         "Appointment reminder",
		Body:          fmt.Sprintf("Reminder: %s on %s at %s.", svc.Name, appt.Date, appt.StartTime),
		FireDate:      fireAt.Format(time.RFC3339),
	}
	if err := s.Reminders.ScheduleAppointmentReminder(payload, fireAt); err != nil {
		utils.GetLogger().Warn("Book: reminder scheduling failed",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}

// AvailableSlots lists free start times for an employee on a date within
// working hours. Slot width is the fixed grid step, independent of any
// particular service's duration.
func (s *DefaultAppointmentService) AvailableSlots(employeeID, date string) ([]string, error) {
	booked, err := s.Repo.IntervalsFor(employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked intervals: %w", err)
	}
	return scheduling.AvailableSlots(booked), nil
}

func (s *DefaultAppointmentService) resolve(appts []models.Appointment) []models.AppointmentDetail {
	details := make([]models.AppointmentDetail, 0, len(appts))
	for _, a := range appts {
		d := models.AppointmentDetail{Appointment: a}
		if client, err := s.Users.GetByID(a.ClientID); err == nil {
			cs := client.Summary()
			d.Client = &cs
		}
		if employee, err := s.Users.GetByID(a.EmployeeID); err == nil {
			es := employee.Summary()
			d.Employee = &es
		}
		if svc, err := s.Services.GetByID(a.ServiceID); err == nil {
			ss := svc.Summary()
			d.Service = &ss
		}
		details = append(details, d)
	}
	return details
}

// ListAll returns every appointment with references resolved.
func (s *DefaultAppointmentService) ListAll() ([]models.AppointmentDetail, error) {
	appts, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.resolve(appts), nil
}

// ListForClient returns a client's appointments with references resolved.
func (s *DefaultAppointmentService) ListForClient(clientID string) ([]models.AppointmentDetail, error) {
	appts, err := s.Repo.GetByClient(clientID)
	if err != nil {
		return nil, err
	}
	return s.resolve(appts), nil
}

// ListForEmployee returns an employee's roster with references resolved.
func (s *DefaultAppointmentService) ListForEmployee(employeeID string) ([]models.AppointmentDetail, error) {
	appts, err := s.Repo.GetByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return s.resolve(appts), nil
}

// GetByID returns one appointment with references resolved.
func (s *DefaultAppointmentService) GetByID(id string) (*models.AppointmentDetail, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: appointment %s", ErrNotFound, id)
	}
	details := s.resolve([]models.Appointment{*appt})
	return &details[0], nil
}

// Update applies date/time/status edits. Status moves are plain field
// assignments: any known status can replace any other, and the end time is
// not recomputed when the start time changes.
func (s *DefaultAppointmentService) Update(id string, req UpdateRequest) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: appointment %s", ErrNotFound, id)
	}

	if req.Status != "" && !models.ValidStatus(req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	statusChanged := req.Status != "" && req.Status != appt.Status
	if req.Date != "" {
		appt.Date = req.Date
	}
	if req.StartTime != "" {
		appt.StartTime = req.StartTime
	}
	if req.Status != "" {
		appt.Status = req.Status
	}

	if err := s.Repo.Update(appt); err != nil {
		return nil, err
	}

	if statusChanged && s.Notifier != nil {
		msg := fmt.Sprintf("Your appointment on %s at %s is now %s.", appt.Date, appt.StartTime, appt.Status)
		err := s.Notifier.NotifyUser(context.Background(), appt.ClientID, "Appointment updated", msg,
			models.NotifAppointmentChange, models.RelatedRef{Model: "Appointment", ID: appt.ID})
		if err != nil {
			utils.GetLogger().Warn("Update: change notification failed",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	return appt, nil
}

// Delete removes an appointment.
func (s *DefaultAppointmentService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("%w: appointment %s", ErrNotFound, id)
	}
	return nil
}
