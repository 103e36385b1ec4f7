package marketplace

import (
	"context"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/api"
)

func (s *Service) Appointments(ctx context.Context) ([]Appointment, error) {
	payload, err := s.api.Get(ctx, "/api/admin/appointments")
	if err != nil {
		return nil, err
	}
	return api.DecodeList[Appointment](payload)
}

func (s *Service) UpdateAppointmentStatus(ctx context.Context, id, status string) error {
	_, err := s.api.Patch(ctx, "/api/admin/appointments/"+id+"/status",
		map[string]string{"status": status})
	return err
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) error {
	_, err := s.api.Delete(ctx, "/api/admin/appointments/"+id)
	return err
}

// BulkUpdateAppointmentStatus moves every listed appointment to status in
// one call.
func (s *Service) BulkUpdateAppointmentStatus(ctx context.Context, ids []string, status string) error {
	_, err := s.api.Post(ctx, "/api/admin/appointments/bulk-update-status",
		map[string]any{"appointmentIds": ids, "status": status})
	return err
}
