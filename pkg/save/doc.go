// Package save reads colony save documents and extracts typed entities.
//
// Documents are parsed into a navigable element tree with
// [github.com/beevik/etree]; [Extract] then walks the tree and converts
// faction, person and name records into [world] entities:
//
//	doc, err := save.Load("Colony.rws")
//	if err != nil {
//	    return err
//	}
//	recs, err := save.Extract(doc)
//	if err != nil {
//	    var xe *save.ExtractError
//	    if errors.As(err, &xe) && xe.IDKnown() {
//	        log.Printf("error occurred while processing %s %s", xe.Kind, xe.ID)
//	    }
//	    return err
//	}
//	w, err := world.New(recs.Factions, recs.Persons)
//
// Extraction is fail-fast: the first malformed record aborts the batch.
// Missing optional fields fall back to documented defaults (goodwill 0,
// gender [world.DefaultGender], alive unless the health state is "Dead").
//
// [world]: github.com/matzehuels/rimealogy/pkg/world
package save
