// Command migrate-relationships moves follower and like references from the
// legacy array columns into the membership tables, then recomputes the
// denormalized counters. Run it with the API stopped.
//
// Usage:
//
//	migrate-relationships [-relation community_follow] [-reconcile-only]
//
// Without -relation every relation from MIGRATION_RELATIONS is processed,
// concurrently. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/stride-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/stride-backend/internal/adapter/postgres/audit"
	communityrepo "github.com/heartmarshall/stride-backend/internal/adapter/postgres/community"
	membershiprepo "github.com/heartmarshall/stride-backend/internal/adapter/postgres/membership"
	postrepo "github.com/heartmarshall/stride-backend/internal/adapter/postgres/post"
	userrepo "github.com/heartmarshall/stride-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/stride-backend/internal/app"
	"github.com/heartmarshall/stride-backend/internal/config"
	"github.com/heartmarshall/stride-backend/internal/domain"
	"github.com/heartmarshall/stride-backend/internal/metrics"
	"github.com/heartmarshall/stride-backend/internal/service/identity"
	"github.com/heartmarshall/stride-backend/internal/service/relationship"
)

type result struct {
	report    *domain.MigrationReport
	recounted int64
}

func main() {
	only := flag.String("relation", "", "process a single relation (community_follow or post_like)")
	reconcileOnly := flag.Bool("reconcile-only", false, "skip the migration and only recompute counters")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	relations, err := selectRelations(*only, cfg.Migration.RelationNames())
	if err != nil {
		logger.Error("invalid relation", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Migration.Timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	resolver := identity.NewResolver(logger, userrepo.New(pool), communityrepo.New(pool), postrepo.New(pool))
	svc := relationship.NewService(logger, resolver, membershiprepo.New(pool), auditrepo.New(pool),
		postgres.NewTxManager(pool), metrics.NewCollector(false))

	var (
		mu      sync.Mutex
		results = make(map[domain.Relation]result, len(relations))
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, rel := range relations {
		g.Go(func() error {
			var res result
			if !*reconcileOnly {
				report, err := svc.Migrate(gctx, rel)
				if err != nil {
					return fmt.Errorf("migrate %s: %w", rel, err)
				}
				res.report = &report
			}

			updated, err := svc.RecomputeCounters(gctx, rel)
			if err != nil {
				return fmt.Errorf("reconcile %s: %w", rel, err)
			}
			res.recounted = updated

			mu.Lock()
			results[rel] = res
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, rel := range relations {
		printResult(rel, results[rel])
	}
}

func selectRelations(only string, configured []string) ([]domain.Relation, error) {
	names := configured
	if only != "" {
		names = []string{only}
	}

	out := make([]domain.Relation, 0, len(names))
	for _, n := range names {
		rel := domain.Relation(n)
		if !rel.IsValid() {
			return nil, fmt.Errorf("unknown relation %q", n)
		}
		out = append(out, rel)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no relations selected")
	}
	return out, nil
}

func printResult(rel domain.Relation, res result) {
	fmt.Printf("== %s ==\n", rel)
	if r := res.report; r != nil {
		fmt.Printf("inserted:        %d\n", r.InsertedCount)
		fmt.Printf("already present: %d\n", r.AlreadyPresentCount)
		fmt.Printf("skipped:         %d\n", r.SkippedCount)
		for _, s := range r.SkippedReasons {
			fmt.Printf("  object %s subject %q: %s\n", s.ObjectID, s.SubjectIdentifier, s.Reason)
		}
	}
	fmt.Printf("counters updated: %d\n", res.recounted)
	fmt.Println(strings.Repeat("-", 20))
}
