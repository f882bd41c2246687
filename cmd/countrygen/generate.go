package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/countrygen/compiler/gen"
	"github.com/syssam/countrygen/compiler/watch"
)

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	_, err := a.generate(cmd.Context())
	return err
}

// graph loads the dataset and builds the graph of the configured run.
func (a *app) graph() (*gen.Graph, error) {
	d, err := a.opts.dataset()
	if err != nil {
		return nil, err
	}
	cfg, err := a.opts.config(a.log)
	if err != nil {
		return nil, err
	}
	return gen.NewGraph(cfg, d)
}

func (a *app) generate(ctx context.Context) (*gen.Manifest, error) {
	g, err := a.graph()
	if err != nil {
		return nil, err
	}
	m, err := gen.Generate(ctx, g)
	if err != nil {
		return nil, err
	}
	if len(g.Dropped) > 0 {
		a.log.Info("left out unnamed subdivisions", zap.Int("count", len(g.Dropped)))
	}
	return m, nil
}

func (a *app) runCheck(cmd *cobra.Command, _ []string) error {
	g, err := a.graph()
	if err != nil {
		return err
	}
	drifts, err := gen.Check(g)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, d := range drifts {
		fmt.Fprintf(out, "%s: %s\n", d.Path, d.Reason)
	}
	if len(drifts) > 0 {
		return fmt.Errorf("%d generated files differ from the dataset", len(drifts))
	}
	fmt.Fprintln(out, "generated files are up to date")
	return nil
}

func (a *app) runWatch(cmd *cobra.Command, _ []string) error {
	if a.opts.Data == "" {
		return errors.New("watch requires --data: the embedded dataset cannot change")
	}
	ctx := cmd.Context()
	regenerate := func(ctx context.Context) error {
		_, err := a.generate(ctx)
		return err
	}
	if err := regenerate(ctx); err != nil {
		a.log.Error("initial generation failed", zap.Error(err))
	}
	w, err := watch.New(a.opts.Data, regenerate, watch.WithLogger(a.log))
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return err
	}
	<-w.Done()
	w.Stop()
	stats := w.Stats()
	a.log.Info("stopped watching", zap.Int("runs", stats.Runs), zap.Int("errors", stats.Errors))
	return nil
}
