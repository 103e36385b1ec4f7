package marketplace

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/api"
)

func (s *Service) Pharmacy(ctx context.Context, id string) (Pharmacy, error) {
	payload, err := s.api.Get(ctx, "/api/admin/pharmacies/"+id)
	if err != nil {
		return Pharmacy{}, err
	}
	return api.Decode[Pharmacy](api.ExtractRecord(payload))
}

func (s *Service) Products(ctx context.Context) ([]Product, error) {
	payload, err := s.api.Get(ctx, "/api/admin/pharmacy/products")
	if err != nil {
		return nil, err
	}
	return api.DecodeList[Product](payload)
}

// ProductInput carries the product form fields. ImagePath, when set, is a
// local file attached to the multipart request.
type ProductInput struct {
	Name      string
	Category  string
	Price     decimal.Decimal
	Stock     int
	ImagePath string
}

// CreateProduct submits the product form. The endpoint takes multipart form
// data because of the optional image upload, so the body bypasses the JSON
// path.
func (s *Service) CreateProduct(ctx context.Context, input ProductInput) error {
	body, contentType, err := encodeProductForm(input)
	if err != nil {
		return err
	}
	_, err = s.api.Request(ctx, http.MethodPost, "/api/pharmacy/products",
		&api.Options{Raw: body, ContentType: contentType})
	return err
}

func (s *Service) UpdateProduct(ctx context.Context, id string, input ProductInput) error {
	body, contentType, err := encodeProductForm(input)
	if err != nil {
		return err
	}
	_, err = s.api.Request(ctx, http.MethodPut, "/api/pharmacy/products/"+id,
		&api.Options{Raw: body, ContentType: contentType})
	return err
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	_, err := s.api.Delete(ctx, "/api/pharmacy/products/"+id)
	return err
}

func encodeProductForm(input ProductInput) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":     input.Name,
		"category": input.Category,
		"price":    input.Price.String(),
		"stock":    fmt.Sprintf("%d", input.Stock),
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("failed to encode product form: %w", err)
		}
	}

	if input.ImagePath != "" {
		f, err := os.Open(input.ImagePath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open product image: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()

		part, err := w.CreateFormFile("image", filepath.Base(input.ImagePath))
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode product image: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, "", fmt.Errorf("failed to encode product image: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to encode product form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func (s *Service) Orders(ctx context.Context) ([]Order, error) {
	payload, err := s.api.Get(ctx, "/api/admin/pharmacy/orders")
	if err != nil {
		return nil, err
	}
	return api.DecodeList[Order](payload)
}

func (s *Service) UpdateOrderStatus(ctx context.Context, id, status string) error {
	_, err := s.api.Patch(ctx, "/api/admin/pharmacy/orders/"+id+"/status",
		map[string]string{"status": status})
	return err
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	_, err := s.api.Delete(ctx, "/api/admin/pharmacy/orders/"+id)
	return err
}

// BulkUpdateOrderStatus moves every listed order to status in one call.
// Note: this endpoint is not under the /api prefix on the backend.
func (s *Service) BulkUpdateOrderStatus(ctx context.Context, ids []string, status string) error {
	_, err := s.api.Post(ctx, "/admin/pharmacy/orders/bulk-update-status",
		map[string]any{"orderIds": ids, "status": status})
	return err
}
