package marketplace

import (
	"context"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/api"
)

func (s *Service) Articles(ctx context.Context) ([]Article, error) {
	payload, err := s.api.Get(ctx, "/api/admin/content/articles")
	if err != nil {
		return nil, err
	}
	return api.DecodeList[Article](payload)
}

// HealthArticles lists the curated health-information articles, a separate
// collection from the admin content.
func (s *Service) HealthArticles(ctx context.Context) ([]Article, error) {
	payload, err := s.api.Get(ctx, "/api/admin/health-articles")
	if err != nil {
		return nil, err
	}
	return api.DecodeList[Article](payload)
}

// ArticleInput carries the editable article fields.
type ArticleInput struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Status   string `json:"status,omitempty"`
	Body     string `json:"body,omitempty"`
}

func (s *Service) CreateArticle(ctx context.Context, input ArticleInput) error {
	_, err := s.api.Post(ctx, "/api/admin/content/articles", input)
	return err
}

func (s *Service) UpdateArticle(ctx context.Context, id string, input ArticleInput) error {
	_, err := s.api.Put(ctx, "/api/admin/content/articles/"+id, input)
	return err
}

func (s *Service) DeleteArticle(ctx context.Context, id string) error {
	_, err := s.api.Delete(ctx, "/api/admin/content/articles/"+id)
	return err
}

func (s *Service) FAQs(ctx context.Context) ([]FAQ, error) {
	payload, err := s.api.Get(ctx, "/api/admin/content/faqs")
	if err != nil {
		return nil, err
	}
	return api.DecodeList[FAQ](payload)
}

type FAQInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
}

func (s *Service) CreateFAQ(ctx context.Context, input FAQInput) error {
	_, err := s.api.Post(ctx, "/api/admin/content/faqs", input)
	return err
}

func (s *Service) UpdateFAQ(ctx context.Context, id string, input FAQInput) error {
	_, err := s.api.Put(ctx, "/api/admin/content/faqs/"+id, input)
	return err
}

func (s *Service) DeleteFAQ(ctx context.Context, id string) error {
	_, err := s.api.Delete(ctx, "/api/admin/content/faqs/"+id)
	return err
}
