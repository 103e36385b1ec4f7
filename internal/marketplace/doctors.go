package marketplace

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/api"
)

func (s *Service) Doctors(ctx context.Context) ([]Doctor, error) {
	payload, err := s.api.Get(ctx, "/api/admin/doctors")
	if err != nil {
		return nil, err
	}
	return api.DecodeList[Doctor](payload)
}

func (s *Service) Doctor(ctx context.Context, id string) (Doctor, error) {
	payload, err := s.api.Get(ctx, "/api/admin/doctors/"+id)
	if err != nil {
		return Doctor{}, err
	}
	return api.Decode[Doctor](api.ExtractRecord(payload))
}

// DoctorUpdate carries the editable doctor fields; zero values are omitted
// so partial updates leave the rest untouched.
type DoctorUpdate struct {
	Name           string           `json:"name,omitempty"`
	Email          string           `json:"email,omitempty"`
	Specialization string           `json:"specialization,omitempty"`
	Status         string           `json:"status,omitempty"`
	Fee            *decimal.Decimal `json:"consultationFee,omitempty"`
}

func (s *Service) UpdateDoctor(ctx context.Context, id string, update DoctorUpdate) error {
	_, err := s.api.Put(ctx, "/api/admin/doctors/"+id, update)
	return err
}

// ToggleDoctorStatus flips the doctor between active and suspended.
func (s *Service) ToggleDoctorStatus(ctx context.Context, id string) error {
	_, err := s.api.Patch(ctx, "/api/admin/doctors/"+id+"/toggle-status", nil)
	return err
}

func (s *Service) TopDoctors(ctx context.Context, limit int) ([]TopDoctor, error) {
	payload, err := s.api.Get(ctx, "/api/doctors/top?limit="+strconv.Itoa(limit))
	if err != nil {
		return nil, err
	}
	return api.DecodeList[TopDoctor](payload)
}
