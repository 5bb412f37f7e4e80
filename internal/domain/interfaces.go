package domain

import "context"

// Scanner lists candidate drafts in an input directory
type Scanner interface {
	Scan(ctx context.Context, dir string) ([]Draft, error)
}

// Planner turns drafts into an ordered set of posts without touching the filesystem
type Planner interface {
	Plan(ctx context.Context, drafts []Draft) (*Plan, error)
}

// Publisher writes published documents and the manifest for a plan
type Publisher interface {
	Publish(ctx context.Context, plan *Plan) (string, error)
}

// IndexPatcher regenerates the marker region of the index document
type IndexPatcher interface {
	// Prepare reads the index document at path and patches it in memory
	Prepare(path string, posts []Post) (*IndexUpdate, error)
	// Apply writes a prepared update
	Apply(update *IndexUpdate) error
}
