package app

import (
	"context"
	"fmt"
	"math"

	"github.com/oshokin/recordkit/internal/logger"
	"github.com/oshokin/recordkit/internal/render"
	"github.com/oshokin/recordkit/pkg/collection"
	"github.com/oshokin/recordkit/pkg/record"
)

// Group prints the records of path grouped by key.
func (a *App) Group(ctx context.Context, path, key string) error {
	list, err := a.loadRecords(ctx, path)
	if err != nil {
		return err
	}

	groups, err := record.GroupBy(list, key)
	if err != nil {
		return err
	}

	logger.DebugKV(ctx, "Records grouped", "key", key, "groups", groups.Len())

	return render.RenderGroups(a.renderer, groups)
}

// Order prints the dataset of path sorted by key in the given direction.
// Lists of primitive values are sorted without a key.
func (a *App) Order(ctx context.Context, path, key, direction string) error {
	dir, err := collection.ParseDirection(direction)
	if err != nil {
		return err
	}

	data, err := a.loader.Load(ctx, path)
	if err != nil {
		return err
	}

	ordered, err := record.OrderBy(data, key, dir)
	if err != nil {
		return err
	}

	if ordered.IsRecords() {
		return a.renderer.Render(ordered.Records)
	}

	return a.renderer.Render(ordered.Scalars)
}

// Dedupe prints the records of path keeping the first one for every distinct key value.
func (a *App) Dedupe(ctx context.Context, path, key string) error {
	list, err := a.loadRecords(ctx, path)
	if err != nil {
		return err
	}

	result := record.RemoveDuplicates(list, key)
	logger.DebugKV(ctx, "Duplicates removed", "key", key, "removed", len(list)-len(result))

	return a.renderer.Render(result)
}

// Sum prints the sum of key over the records of path.
func (a *App) Sum(ctx context.Context, path, key string) error {
	list, err := a.loadRecords(ctx, path)
	if err != nil {
		return err
	}

	sum := record.Sum(list, key)
	if math.IsNaN(sum) {
		logger.WarnKV(ctx, "Sum is not a number, some values are not numeric", "key", key)
	}

	return a.renderer.Render(record.NumberValue(sum))
}

// HasDuplicates prints whether two records of path share a value of key.
func (a *App) HasDuplicates(ctx context.Context, path, key string) error {
	list, err := a.loadRecords(ctx, path)
	if err != nil {
		return err
	}

	return a.renderer.Render(record.HasDuplicateKey(list, key))
}

// Search prints the records of path whose key equals value, according to mode.
func (a *App) Search(ctx context.Context, path, key, value, mode string) error {
	searchMode, err := collection.ParseSearchMode(mode)
	if err != nil {
		return err
	}

	list, err := a.loadRecords(ctx, path)
	if err != nil {
		return err
	}

	result, err := record.Search(list, key, record.ParseValue(value), searchMode)
	if err != nil {
		return err
	}

	if !result.Found() {
		logger.InfoKV(ctx, "Nothing found", "key", key, "value", value, "mode", searchMode.String())
	}

	return a.renderer.RenderSearch(result)
}

// Includes prints whether any record of path has key equal to value.
func (a *App) Includes(ctx context.Context, path, key, value string) error {
	list, err := a.loadRecords(ctx, path)
	if err != nil {
		return err
	}

	return a.renderer.Render(record.Includes(list, key, record.ParseValue(value)))
}

// Remove prints the records of path whose key is not equal to value.
func (a *App) Remove(ctx context.Context, path, key, value string) error {
	list, err := a.loadRecords(ctx, path)
	if err != nil {
		return err
	}

	return a.renderer.Render(record.Remove(list, key, record.ParseValue(value)))
}

// loadRecords loads path and requires it to hold records. An empty file is an empty list.
func (a *App) loadRecords(ctx context.Context, path string) (record.List, error) {
	data, err := a.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	if !data.IsRecords() {
		if data.Len() > 0 {
			return nil, fmt.Errorf("%w: '%s' holds primitive values", ErrRecordsRequired, path)
		}

		return record.List{}, nil
	}

	return data.Records, nil
}
