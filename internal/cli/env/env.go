// Package env carries the loaded configuration through cobra command
// contexts and opens the collaborators commands share.
package env

import (
	"context"
	"fmt"
	"strconv"

	"oai-dc-mapper/internal/config"
	"oai-dc-mapper/internal/dublincore"
	"oai-dc-mapper/internal/index"
	"oai-dc-mapper/internal/mapping"
	"oai-dc-mapper/internal/oaipmh"
	"oai-dc-mapper/internal/resolve"
	"oai-dc-mapper/internal/store"
)

type envKey struct{}

// Env is the per-invocation environment of a command.
type Env struct {
	Config *config.Config
}

// WithEnv returns a copy of ctx carrying e.
func WithEnv(ctx context.Context, e *Env) context.Context {
	return context.WithValue(ctx, envKey{}, e)
}

// FromContext returns the environment stored in ctx.
func FromContext(ctx context.Context) (*Env, bool) {
	e, ok := ctx.Value(envKey{}).(*Env)

	return e, ok && e != nil
}

// Derivatives returns the derivative resolver for configured files URL.
func (e *Env) Derivatives() (*resolve.Derivatives, error) {
	d, err := resolve.NewDerivatives(e.Config.FilesURL)
	if err != nil {
		return nil, fmt.Errorf("files_url: %w", err)
	}

	return d, nil
}

// OpenStore opens the configured item store.
func (e *Env) OpenStore() (*store.Store, error) {
	d, err := e.Derivatives()
	if err != nil {
		return nil, err
	}

	return store.Open(e.Config.Database, d)
}

// OpenIndex opens the configured search index.
func (e *Env) OpenIndex() (*index.Index, error) {
	return index.Open(e.Config.Index)
}

// Crosswalk returns the configured crosswalk, or the built-in one.
func (e *Env) Crosswalk() (*mapping.Crosswalk, error) {
	if e.Config.Crosswalk == "" {
		return mapping.DefaultCrosswalk(), nil
	}

	return mapping.LoadFile(e.Config.Crosswalk)
}

// Engine builds the Dublin Core engine for the configured crosswalk.
func (e *Env) Engine() (*dublincore.Engine, error) {
	urls, err := resolve.NewURLs(e.Config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("base_url: %w", err)
	}

	cw, err := e.Crosswalk()
	if err != nil {
		return nil, err
	}

	return dublincore.NewWithCrosswalk(urls, cw)
}

// Repository returns the OAI-PMH repository publishing through engine.
func (e *Env) Repository(engine *dublincore.Engine) *oaipmh.Repository {
	return &oaipmh.Repository{
		ID:       e.Config.RepositoryID,
		BaseURL:  e.Config.BaseURL,
		Format:   oaipmh.Format(dublincore.Describe()),
		Metadata: engine,
	}
}

// WithTimeout bounds ctx by the configured timeout. A zero timeout leaves ctx
// unbounded.
func (e *Env) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.Config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, e.Config.Timeout)
}

// ParseIDs parses item id arguments.
func ParseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))

	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid item id %q", arg)
		}

		ids = append(ids, id)
	}

	return ids, nil
}
