package api

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lee777maker/Job-Applier-sub000/internal/types"
)

// Session is the post-login bootstrap payload.
type Session struct {
	Profile *types.UserProfile
	Jobs    []types.Job
}

// LoadSession fetches the profile and job recommendations concurrently.
// Either call failing fails the whole load; the caller then decides what
// to surface and nothing is written to the store.
func (c *Client) LoadSession(ctx context.Context, userID string) (*Session, error) {
	var session Session

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, err := c.GetProfile(ctx, userID)
		if err != nil {
			return err
		}
		session.Profile = profile
		return nil
	})
	g.Go(func() error {
		jobs, err := c.GetJobRecommendations(ctx, userID, DefaultJobLimit)
		if err != nil {
			return err
		}
		session.Jobs = jobs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &session, nil
}
