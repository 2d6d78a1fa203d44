// Package resolver selects the workspace a snapshot is built for.
package resolver

import (
	"context"
	"errors"

	"talentdeck/internal/sentinel"
	"talentdeck/internal/workspace/models"
	dErrors "talentdeck/pkg/domain-errors"
)

// Store is the workspace lookup contract the resolver depends on.
type Store interface {
	FindByID(ctx context.Context, id int64) (*models.Workspace, error)
	FindCurrent(ctx context.Context) (*models.Workspace, error)
	ListEligible(ctx context.Context) ([]*models.Workspace, error)
}

// Resolver resolves the target workspace, with fallback to the
// most-recently-updated active agency/recruiter workspace.
type Resolver struct {
	store Store
}

// New creates a workspace resolver.
func New(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve loads the requested workspace, or falls back to the current one
// when no id was supplied. Lookup failures surface as not_found domain errors
// and are never retried.
func (r *Resolver) Resolve(ctx context.Context, requested *int64) (*models.Workspace, error) {
	if requested != nil {
		w, err := r.store.FindByID(ctx, *requested)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil, dErrors.New(dErrors.CodeNotFound, "workspace not found")
			}
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load workspace")
		}
		return w, nil
	}

	w, err := r.store.FindCurrent(ctx)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "no eligible workspace exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve current workspace")
	}
	return w, nil
}

// ListEligible returns the workspaces a dashboard caller could switch to.
func (r *Resolver) ListEligible(ctx context.Context) ([]*models.Workspace, error) {
	ws, err := r.store.ListEligible(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list workspaces")
	}
	return ws, nil
}
