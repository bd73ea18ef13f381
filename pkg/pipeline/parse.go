package pipeline

import (
	"context"
	"errors"

	"github.com/beevik/etree"
	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/rimealogy/pkg/errors"
	"github.com/matzehuels/rimealogy/pkg/save"
	"github.com/matzehuels/rimealogy/pkg/world"
)

// Parse reads the save document at path.
// A missing file is FILE_NOT_FOUND; unreadable XML or a document without
// a game element is INVALID_SAVE.
func Parse(ctx context.Context, path string) (*etree.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := apperr.ValidateInputFile(path); err != nil {
		return nil, err
	}

	doc, err := save.Load(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidSave, err, "read %s", path)
	}
	if _, err := save.Game(doc); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidSave, err, "read %s", path)
	}
	return doc, nil
}

// Extract converts the records of doc and builds the world model.
//
// When extraction fails on a record whose id had already been read, an
// error line naming it is logged before the error is returned. Records
// sharing an id are reduced to the last one, with a warning.
func Extract(ctx context.Context, doc *etree.Document, logger *log.Logger) (*world.World, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	recs, err := save.Extract(doc)
	if err != nil {
		return nil, extractError(err, logger)
	}

	factions := keepLast(recs.Factions, (*world.Faction).Key, "faction", logger)
	persons := keepLast(recs.Persons, func(p *world.Person) string { return p.ID }, "person", logger)

	w, err := world.New(factions, persons)
	switch {
	case err == nil:
		return w, nil
	case errors.Is(err, world.ErrNoPlayerFaction):
		return nil, apperr.Wrap(apperr.ErrCodeNoPlayerFaction, err, "build world")
	case errors.Is(err, world.ErrAmbiguousPlayerFaction):
		return nil, apperr.Wrap(apperr.ErrCodeAmbiguousPlayerFaction, err, "build world")
	default:
		return nil, apperr.Wrap(apperr.ErrCodeExtractionFailed, err, "build world")
	}
}

func extractError(err error, logger *log.Logger) error {
	if errors.Is(err, save.ErrNoGame) {
		return apperr.Wrap(apperr.ErrCodeInvalidSave, err, "extract records")
	}

	var xerr *save.ExtractError
	if errors.As(err, &xerr) && xerr.IDKnown() {
		logger.Errorf("Error occurred while processing %s %s", xerr.Kind, xerr.ID)
	}

	code := apperr.ErrCodeExtractionFailed
	if errors.Is(err, save.ErrNotNameNode) || errors.Is(err, save.ErrUnknownNameClass) {
		code = apperr.ErrCodeInvalidName
	}
	return apperr.Wrap(code, err, "extract records")
}

// keepLast drops all but the last record of each id. Kept records stay at
// the position of their first occurrence.
func keepLast[T any](recs []T, id func(T) string, kind string, logger *log.Logger) []T {
	index := make(map[string]int, len(recs))
	out := make([]T, 0, len(recs))
	for _, r := range recs {
		key := id(r)
		if i, dup := index[key]; dup {
			logger.Warnf("Duplicate %s %s, keeping the last record", kind, key)
			out[i] = r
			continue
		}
		index[key] = len(out)
		out = append(out, r)
	}
	return out
}
