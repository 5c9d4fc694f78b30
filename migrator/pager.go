// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// PageFunc fetches one 1-based page and returns its items along with the
// total number of items the collection holds.
type PageFunc[T any] func(ctx context.Context, page, pageSize int) ([]T, int, error)

// Pager reads a paginated collection by requesting every page concurrently.
type Pager[T any] struct {
	PageSize int
	Fetch    PageFunc[T]
}

// Total requests the first page to learn the size of the collection.
func (p *Pager[T]) Total(ctx context.Context) (int, error) {
	_, total, err := p.Fetch(ctx, 1, p.PageSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to fetch the first page")
	}
	return total, nil
}

// PageCount is the number of pages needed to hold total items.
func (p *Pager[T]) PageCount(total int) int {
	if total <= 0 || p.PageSize <= 0 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}

// FetchPages requests pages 1 through PageCount(total) at once and returns
// their items concatenated in page order, whatever order the responses
// arrive in. A single failed page fails the whole fetch.
func (p *Pager[T]) FetchPages(ctx context.Context, total int) ([]T, error) {
	count := p.PageCount(total)
	if count == 0 {
		return []T{}, nil
	}

	pages := make([][]T, count)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			items, _, err := p.Fetch(gctx, i+1, p.PageSize)
			if err != nil {
				return errors.Wrapf(err, "failed to fetch page %d", i+1)
			}
			pages[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]T, 0, total)
	for _, page := range pages {
		items = append(items, page...)
	}
	return items, nil
}

// FetchAll learns the total and then fetches every page.
func (p *Pager[T]) FetchAll(ctx context.Context) ([]T, error) {
	total, err := p.Total(ctx)
	if err != nil {
		return nil, err
	}
	return p.FetchPages(ctx, total)
}
