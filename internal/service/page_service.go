package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/repository"
)

// PageService は公開ページと管理ダッシュボードの表示データを組み立てる。
// 取得に失敗した場合はログに残して既定コンテンツで埋める
type PageService struct {
	slides   repository.HeroSlideRepository
	catalog  CatalogService
	services repository.ServiceRepository
	team     repository.TeamMemberRepository
	messages repository.ContactRepository
}

// NewPageService は PageService を生成する
func NewPageService(
	slides repository.HeroSlideRepository,
	services repository.ServiceRepository,
	catalog CatalogService,
	team repository.TeamMemberRepository,
	messages repository.ContactRepository,
) *PageService {
	return &PageService{
		slides:   slides,
		catalog:  catalog,
		services: services,
		team:     team,
		messages: messages,
	}
}

// Home returns the active hero slides and service cards, each falling back to defaults.
func (p *PageService) Home(ctx context.Context) *model.HomePage {
	page := &model.HomePage{}
	var g errgroup.Group
	g.Go(func() error {
		page.Slides = p.heroSlides(ctx)
		return nil
	})
	g.Go(func() error {
		page.Services = p.ServiceCards(ctx)
		return nil
	})
	_ = g.Wait()
	return page
}

func (p *PageService) heroSlides(ctx context.Context) []*model.HeroSlide {
	slides, err := p.slides.List(ctx, true)
	if err != nil {
		slog.Error("load hero slides failed", "error", err)
		return defaultHeroSlides()
	}
	if len(slides) == 0 {
		return defaultHeroSlides()
	}
	return slides
}

// ServiceCards returns a card per active service, or the five default cards.
func (p *PageService) ServiceCards(ctx context.Context) []model.ServiceCard {
	services, err := p.services.List(ctx, true)
	if err != nil {
		slog.Error("load services failed", "error", err)
		return defaultServiceCards()
	}
	if len(services) == 0 {
		return defaultServiceCards()
	}
	cards := make([]model.ServiceCard, 0, len(services))
	for _, s := range services {
		cards = append(cards, model.ServiceCard{
			Title:       s.Name,
			Description: s.Description,
			Icon:        s.Icon.Resolved(),
			Href:        "/services/" + s.Slug,
			Color:       model.ServiceColor(s.Slug),
		})
	}
	return cards
}

// About returns active team members, or the default leadership team when none are stored.
func (p *PageService) About(ctx context.Context) *model.AboutPage {
	team, err := p.team.List(ctx, true)
	if err != nil {
		slog.Error("load team members failed", "error", err)
	}
	if len(team) == 0 {
		team = defaultTeamMembers()
	}
	return &model.AboutPage{Team: team}
}

// ServiceDetail builds the detail page for slug. The five built-in services
// always render, using DB content where present. Other slugs need an active
// DB row, otherwise repository.ErrNotFound is returned.
func (p *PageService) ServiceDetail(ctx context.Context, slug string) (*model.ServiceDetail, error) {
	static, hasStatic := staticServicePages[slug]

	svc, err := p.catalog.GetPublishedService(ctx, slug)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNotFound):
		if !hasStatic {
			return nil, repository.ErrNotFound
		}
		svc = nil
	default:
		if !hasStatic {
			return nil, fmt.Errorf("load service %q: %w", slug, err)
		}
		slog.Error("load service failed, using built-in page", "slug", slug, "error", err)
		svc = nil
	}

	if hasStatic {
		return staticDetail(slug, static, svc), nil
	}
	return dynamicDetail(svc), nil
}

func staticDetail(slug string, static staticServicePage, svc *model.Service) *model.ServiceDetail {
	d := &model.ServiceDetail{
		Service: &model.Service{
			Name:        static.Title,
			Slug:        slug,
			Description: static.Description,
			Icon:        static.Icon,
			IsActive:    true,
		},
		Subtitle:        static.Subtitle,
		Features:        static.Features,
		Benefits:        static.Benefits,
		Color:           static.Color,
		BackgroundImage: static.BackgroundImage,
		ServiceImage:    static.ServiceImage,
	}
	if svc == nil {
		return d
	}

	d.Service = svc
	if svc.Name == "" {
		svc.Name = static.Title
	}
	if svc.Description == "" {
		svc.Description = static.Description
	}
	if f := featuresOf(svc.Items); len(f) > 0 {
		d.Features = f
	}
	if b := benefitsOf(svc.Benefits); len(b) > 0 {
		d.Benefits = b
	}
	if svc.Image != "" {
		d.ServiceImage = svc.Image
	}
	return d
}

func dynamicDetail(svc *model.Service) *model.ServiceDetail {
	d := &model.ServiceDetail{
		Service:         svc,
		Features:        featuresOf(svc.Items),
		Benefits:        benefitsOf(svc.Benefits),
		Color:           defaultDynamicColor,
		BackgroundImage: genericBackgroundImage,
		ServiceImage:    genericServiceImage,
	}
	if len(d.Features) == 0 {
		d.Features = []model.Feature{{Title: comingSoonTitle, Description: comingSoonDescription}}
	}
	if len(d.Benefits) == 0 {
		d.Benefits = genericBenefits
	}
	if svc.Image != "" {
		d.ServiceImage = svc.Image
	}
	return d
}

func featuresOf(items []*model.ServiceItem) []model.Feature {
	out := make([]model.Feature, 0, len(items))
	for _, it := range items {
		if !it.IsActive {
			continue
		}
		out = append(out, model.Feature{Title: it.Name, Description: it.Description, Image: it.Image})
	}
	return out
}

func benefitsOf(benefits []*model.ServiceBenefit) []string {
	out := make([]string, 0, len(benefits))
	for _, b := range benefits {
		if !b.IsActive {
			continue
		}
		out = append(out, b.Text)
	}
	return out
}

// Dashboard counts active content and unread messages concurrently.
func (p *PageService) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.HeroSlides, err = p.slides.CountActive(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Services, err = p.services.CountActive(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TeamMembers, err = p.team.CountActive(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.NewMessages, err = p.messages.CountByStatus(gctx, model.MessageNew)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	return &stats, nil
}
