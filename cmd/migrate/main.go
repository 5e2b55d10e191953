package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/targetgroup/backend/internal/config"
	"github.com/targetgroup/backend/internal/logging"
	"github.com/targetgroup/backend/internal/repository"
)

var cfgFile string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "差分マイグレーションを適用 (up と同じ)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, _ *config.Config, pool *pgxpool.Pool) error {
				return runIncremental(ctx, pool, findMigrationDir())
			})
		},
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	cmd.AddCommand(
		newUpCommand(),
		newFreshCommand(),
		newResetCommand(),
		newSeedCommand(),
		newCreateAdminCommand(),
	)
	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "差分マイグレーションを適用",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, _ *config.Config, pool *pgxpool.Pool) error {
				return runIncremental(ctx, pool, findMigrationDir())
			})
		},
	}
}

func newFreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fresh",
		Short: "全テーブルを DROP し、全マイグレーションを順番に適用",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, _ *config.Config, pool *pgxpool.Pool) error {
				dir := findMigrationDir()
				if err := runDropAll(ctx, pool, dir); err != nil {
					return err
				}
				return runIncremental(ctx, pool, dir)
			})
		},
	}
}

func newResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "fresh の後に初期データを投入",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, _ *config.Config, pool *pgxpool.Pool) error {
				dir := findMigrationDir()
				if err := runDropAll(ctx, pool, dir); err != nil {
					return err
				}
				if err := runIncremental(ctx, pool, dir); err != nil {
					return err
				}
				return runSeed(ctx, pool)
			})
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "管理者・スライド・サービス・チームの初期データを投入 (再実行可)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, _ *config.Config, pool *pgxpool.Pool) error {
				return runSeed(ctx, pool)
			})
		},
	}
}

func newCreateAdminCommand() *cobra.Command {
	var email, name, plain string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "管理者ユーザーを作成",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
				sessions, err := repository.NewSessionStore(ctx, cfg.Redis, pool)
				if err != nil {
					return err
				}
				defer sessions.Close()
				return createAdmin(ctx, repository.NewPgUserRepository(pool), sessions.SessionRepository, email, name, plain)
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&name, "name", "Admin", "display name")
	cmd.Flags().StringVar(&plain, "password", "", "initial password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// withPool は設定を読み込み、DB 接続を開いて fn を実行する
func withPool(ctx context.Context, fn func(context.Context, *config.Config, *pgxpool.Pool) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	logging.Setup(cfg.Log, cfg.Env)

	pool, err := repository.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("connect failed: %w", err)
	}
	defer pool.Close()
	return fn(ctx, cfg, pool)
}
