package marketplace

import (
	"context"
	"net/url"
	"strconv"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/api"
)

// VerificationQuery filters the verification list. Zero values are omitted
// from the query string.
type VerificationQuery struct {
	Type   string // "doctor" or "pharmacy"
	Status string // "pending", "approved", "rejected"
	Limit  int
	Page   int
}

func (q VerificationQuery) encode() string {
	v := url.Values{}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (s *Service) Verifications(ctx context.Context, q VerificationQuery) ([]Verification, error) {
	payload, err := s.api.Get(ctx, "/api/admin/verifications"+q.encode())
	if err != nil {
		return nil, err
	}
	return api.DecodeList[Verification](payload)
}

// UpdateVerificationStatus moves a verification to status; rejectionReason
// accompanies a rejection and is ignored otherwise.
func (s *Service) UpdateVerificationStatus(ctx context.Context, id, status, rejectionReason string) error {
	_, err := s.api.Patch(ctx, "/api/admin/verifications/"+id+"/status",
		map[string]string{"status": status, "rejectionReason": rejectionReason})
	return err
}

// ApproveDoctorVerification is the dedicated approval shortcut for doctor
// applications.
func (s *Service) ApproveDoctorVerification(ctx context.Context, id string) error {
	_, err := s.api.Patch(ctx, "/api/admin/doctors/verification/"+id+"/approve", nil)
	return err
}

// RejectDoctorVerification rejects a doctor application with a reason.
func (s *Service) RejectDoctorVerification(ctx context.Context, id, reason string) error {
	_, err := s.api.Patch(ctx, "/api/admin/doctors/verification/"+id+"/reject",
		map[string]string{"rejectionReason": reason})
	return err
}
