package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/repository"
	"github.com/targetgroup/backend/internal/service"
)

const (
	seedAdminEmail    = "admin@targetgroup.com"
	seedAdminName     = "Admin"
	seedAdminPassword = "admin123"
)

type seedSlide struct {
	title, subtitle, image, buttonText, buttonLink string
	order                                          int
}

type seedService struct {
	name, slug, description, image string
	icon                           model.ServiceIcon
	order                          int
}

type seedMember struct {
	name, role, image string
	order             int
}

var seedSlides = []seedSlide{
	{"Building Ethiopia's Future", "Your trusted partner in construction materials, agriculture, and trade", "/images/hero/construction.jpg", "Our Services", "/services", 1},
	{"Agricultural Excellence", "Supporting Ethiopia's agricultural growth with quality products", "/images/hero/agro.jpg", "Learn More", "/services/agro-industry", 2},
	{"Global Trade Partners", "Connecting Ethiopian businesses to the world", "/images/hero/trade.jpg", "Import & Export", "/services/import-export", 3},
}

var seedServices = []seedService{
	{"Construction Materials", "construction-materials", "Premium quality construction materials imported from trusted global suppliers.", "/images/services/construction.jpg", model.IconBuilding2, 1},
	{"Agro Industry", "agro-industry", "Supporting Ethiopia's agricultural sector with processing and export services.", "/images/services/agro.jpg", model.IconFactory, 2},
	{"Import & Export", "import-export", "Facilitating international trade with reliable logistics and partnerships.", "/images/services/trade.jpg", model.IconShip, 3},
	{"Education", "education", "Investing in Ethiopia's future through quality educational initiatives.", "/images/services/education.jpg", model.IconGraduationCap, 4},
	{"IT Services", "it-services", "Modern technology solutions for businesses across Ethiopia.", "/images/services/it.jpg", model.IconMonitor, 5},
}

var seedMembers = []seedMember{
	{"Abebe Kebede", "CEO & Founder", "/images/team/ceo.jpg", 1},
	{"Tigist Haile", "Operations Director", "/images/team/director.jpg", 2},
	{"Dawit Mengistu", "Finance Manager", "/images/team/finance.jpg", 3},
}

// runSeed は初期データを投入する。既存行は slug / email / title / name で照合して上書きする
func runSeed(ctx context.Context, pool *pgxpool.Pool) error {
	users := service.NewAuthService(repository.NewPgUserRepository(pool))
	_, err := users.CreateUser(ctx, seedAdminEmail, seedAdminName, seedAdminPassword)
	switch {
	case errors.Is(err, repository.ErrConflict):
		slog.Info("admin user already exists", "email", seedAdminEmail)
	case err != nil:
		return fmt.Errorf("seed admin: %w", err)
	default:
		slog.Info("created admin user", "email", seedAdminEmail)
	}

	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, s := range seedSlides {
			if err := upsertSlide(ctx, tx, s); err != nil {
				return fmt.Errorf("slide %q: %w", s.title, err)
			}
		}
		for _, s := range seedServices {
			if _, err := tx.Exec(ctx,
				`INSERT INTO services (name, slug, description, image, icon, sort_order)
				 VALUES ($1, $2, $3, $4, $5, $6)
				 ON CONFLICT (slug) DO UPDATE SET
				   name = EXCLUDED.name, description = EXCLUDED.description, image = EXCLUDED.image,
				   icon = EXCLUDED.icon, sort_order = EXCLUDED.sort_order, updated_at = NOW()`,
				s.name, s.slug, s.description, s.image, string(s.icon), s.order); err != nil {
				return fmt.Errorf("service %q: %w", s.slug, err)
			}
		}
		for _, m := range seedMembers {
			if err := upsertMember(ctx, tx, m); err != nil {
				return fmt.Errorf("team member %q: %w", m.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed content: %w", err)
	}
	slog.Info("seed completed",
		"hero_slides", len(seedSlides), "services", len(seedServices), "team_members", len(seedMembers))
	return nil
}

func upsertSlide(ctx context.Context, tx pgx.Tx, s seedSlide) error {
	tag, err := tx.Exec(ctx,
		`UPDATE hero_slides SET subtitle=$2, image=$3, button_text=$4, button_link=$5, sort_order=$6, updated_at=NOW()
		 WHERE title=$1`,
		s.title, s.subtitle, s.image, s.buttonText, s.buttonLink, s.order)
	if err != nil || tag.RowsAffected() > 0 {
		return err
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO hero_slides (title, subtitle, image, button_text, button_link, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.title, s.subtitle, s.image, s.buttonText, s.buttonLink, s.order)
	return err
}

func upsertMember(ctx context.Context, tx pgx.Tx, m seedMember) error {
	tag, err := tx.Exec(ctx,
		`UPDATE team_members SET role=$2, image=$3, sort_order=$4, updated_at=NOW() WHERE name=$1`,
		m.name, m.role, m.image, m.order)
	if err != nil || tag.RowsAffected() > 0 {
		return err
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO team_members (name, role, image, sort_order) VALUES ($1, $2, $3, $4)`,
		m.name, m.role, m.image, m.order)
	return err
}

// createAdmin は管理者を作成する。メールが登録済みならパスワードを更新し、既存のセッションを無効にする
func createAdmin(ctx context.Context, repo repository.UserRepository, sessions repository.SessionRepository, email, name, plain string) error {
	users := service.NewAuthService(repo)

	u, err := users.CreateUser(ctx, email, name, plain)
	if err == nil {
		slog.Info("admin user created", "email", u.Email)
		return nil
	}
	if !errors.Is(err, repository.ErrConflict) {
		if code := service.ValidationCode(err); code != "" {
			return fmt.Errorf("create admin: %s", code)
		}
		return fmt.Errorf("create admin: %w", err)
	}

	existing, err := repo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("find admin: %w", err)
	}
	if err := users.ChangePassword(ctx, existing.ID, plain); err != nil {
		if code := service.ValidationCode(err); code != "" {
			return fmt.Errorf("update admin password: %s", code)
		}
		return fmt.Errorf("update admin password: %w", err)
	}
	if err := service.NewSessionService(sessions, 0).DeleteAllSessions(ctx, existing.ID); err != nil {
		return fmt.Errorf("revoke admin sessions: %w", err)
	}
	slog.Info("admin user already existed, password updated and sessions revoked", "email", existing.Email)
	return nil
}
