package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hustlehub/hustle-api/internal/bootstrap"
	"github.com/hustlehub/hustle-api/internal/core"
)

const defaultScanBatch = 100

type clearCacheOptions struct {
	DryRun  bool
	Batch   int
	Timeout time.Duration
}

type cacheDeleteStats struct {
	matched  int64
	deleted  int64
	failures int
}

type cacheDeleteRequest struct {
	Ctx     context.Context
	Redis   redis.UniversalClient
	Logger  *slog.Logger
	Options clearCacheOptions
}

func runClearJobCache(cmdCtx *commandContext, args []string) error {
	opts, err := parseClearCacheFlags(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	client, err := bootstrap.ConnectRedis(ctx, bootstrap.DatabaseConfig{
		RedisConfig: cmdCtx.Config.Redis,
		Logger:      cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			cmdCtx.Logger.Warn("redis close failed", "error", cerr)
		}
	}()

	req := &cacheDeleteRequest{Ctx: ctx, Redis: client, Logger: cmdCtx.Logger, Options: opts}
	pattern := cmdCtx.Config.Cache.Prefix + core.JobCacheKeyPrefix + "*"
	stats, err := req.deleteMatching(pattern)
	if err != nil {
		return err
	}

	verb := "Deleted"
	if opts.DryRun {
		verb = "Would delete"
	}
	if err := writef(os.Stdout, "%s %d of %d cached jobs (%d failed batches)\n", verb, stats.deleted, stats.matched, stats.failures); err != nil {
		return err
	}
	if stats.failures > 0 {
		return fmt.Errorf("%d delete batches failed", stats.failures)
	}
	return nil
}

func (req *cacheDeleteRequest) deleteMatching(pattern string) (cacheDeleteStats, error) {
	var stats cacheDeleteStats
	req.Logger.Info("scanning redis", "pattern", pattern, "dry_run", req.Options.DryRun)

	iter := req.Redis.Scan(req.Ctx, 0, pattern, int64(req.Options.Batch)).Iterator()
	batch := make([]string, 0, req.Options.Batch)
	for iter.Next(req.Ctx) {
		stats.matched++
		batch = append(batch, iter.Val())
		if len(batch) == req.Options.Batch {
			req.flush(batch, &stats)
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return stats, fmt.Errorf("redis scan: %w", err)
	}
	req.flush(batch, &stats)
	return stats, nil
}

func (req *cacheDeleteRequest) flush(batch []string, stats *cacheDeleteStats) {
	if len(batch) == 0 {
		return
	}
	if req.Options.DryRun {
		stats.deleted += int64(len(batch))
		return
	}
	n, err := req.Redis.Del(req.Ctx, batch...).Result()
	if err != nil {
		stats.failures++
		req.Logger.Error("failed to delete cached jobs", "count", len(batch), "error", err)
		return
	}
	stats.deleted += n
}

func parseClearCacheFlags(args []string) (clearCacheOptions, error) {
	fs := flag.NewFlagSet("clear-job-cache", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := clearCacheOptions{}
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Report matching keys without deleting them")
	fs.IntVar(&opts.Batch, "batch", defaultScanBatch, "Keys per SCAN page and DEL call")
	fs.DurationVar(&opts.Timeout, "timeout", time.Minute, "Maximum duration for the whole scan")

	if err := fs.Parse(args); err != nil {
		return clearCacheOptions{}, err
	}
	if opts.Batch <= 0 {
		return clearCacheOptions{}, errors.New("--batch must be greater than zero")
	}
	if opts.Timeout <= 0 {
		return clearCacheOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}
